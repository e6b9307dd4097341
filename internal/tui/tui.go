// File internal/tui/tui.go
package tui

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/menezesd/othello/internal/board"
	"github.com/menezesd/othello/internal/search"
)

// Options terminal frontend configuration
type Options struct {
	Human     int8
	MaxDepth  int
	MoveTime  time.Duration
	ShowMoves bool
}

func pieceSymbol(piece int8) string {
	switch piece {
	case board.Black:
		return " ⚫ "
	case board.White:
		return " ⚪ "
	default:
		return "    "
	}
}

func playerName(p int8) string {
	if p == board.Black {
		return "Black"
	}
	return "White"
}

// Run starts the terminal UI and blocks until the user quits.
func Run(bd *board.Board, eng *search.Engine, opts Options) {
	app := tview.NewApplication()

	human := opts.Human
	showMoves := opts.ShowMoves
	current := board.Black

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		form := tview.NewForm()
		form.
			AddDropDown("Choose your color", []string{"Black", "White"}, colorIndex(human), func(option string, _ int) {
				if option == "Black" {
					human = board.Black
				} else {
					human = board.White
				}
			}).
			AddCheckbox("Show valid moves", showMoves, func(checked bool) {
				showMoves = checked
			}).
			AddButton("Start Game", func() {
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Othello").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		*bd = *board.New()
		current = board.Black

		boardTable := tview.NewTable()
		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetTitleColor(tcell.ColorGreen)
		boardTable.SetBorderColor(tcell.ColorGreen)
		boardTable.SetBorders(true)

		scoreBox := tview.NewTextView()
		scoreBox.SetBorder(true)
		scoreBox.SetTitle("Score")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(scoreBox, 24, 1, false)

		updateBoard := func() {
			for r := 1; r <= board.Dim; r++ {
				for c := 1; c <= board.Dim; c++ {
					sq := board.Sq(r, c)
					cell := tview.NewTableCell(pieceSymbol(bd[sq]))
					cell.SetAlign(tview.AlignCenter)

					if bd[sq] == board.Empty && showMoves && current == human && bd.Legal(sq, current) {
						cell = tview.NewTableCell(" · ")
						cell.SetAlign(tview.AlignCenter)
						cell.SetTextColor(tcell.ColorGreen)
					}
					boardTable.SetCell(r-1, c-1, cell)
				}
			}

			boardTable.SetTitle(fmt.Sprintf(" Othello - %s's turn ", playerName(current)))
			scoreBox.SetText(fmt.Sprintf("Black: %d\nWhite: %d",
				bd.Discs(board.Black), bd.Discs(board.White)))
		}

		updateBoard()

		var (
			thinking     int32 // 引擎计算中，屏蔽输入
			spinnerIndex int
			spinners     = []string{"|", "/", "-", "\\"}
		)

		var processNextTurn func()

		processNextTurn = func() {
			if bd.Terminal() {
				blacks := bd.Discs(board.Black)
				whites := bd.Discs(board.White)
				result := "Draw!"
				if blacks > whites {
					result = "Black wins!"
				} else if whites > blacks {
					result = "White wins!"
				}

				modal := tview.NewModal().
					SetText(fmt.Sprintf("Game Over!\n%s\nBlack: %d  White: %d", result, blacks, whites)).
					AddButtons([]string{"New Game", "Quit"}).
					SetDoneFunc(func(_ int, buttonLabel string) {
						if buttonLabel == "New Game" {
							showStartScreen()
						} else {
							app.Stop()
						}
					})

				app.SetRoot(modal, false).SetFocus(modal)
				return
			}

			// 当前方无着：让手
			if !bd.HasLegal(current) {
				current = board.Opponent(current)
				updateBoard()
				processNextTurn()
				return
			}

			if current != human {
				atomic.StoreInt32(&thinking, 1)
				spinnerIndex = 0

				ticker := time.NewTicker(100 * time.Millisecond)
				go func() {
					for range ticker.C {
						if atomic.LoadInt32(&thinking) == 0 {
							ticker.Stop()
							return
						}
						spinner := spinners[spinnerIndex%len(spinners)]
						spinnerIndex++
						app.QueueUpdateDraw(func() {
							boardTable.SetTitle(fmt.Sprintf(" Othello - %s's turn %s ", playerName(current), spinner))
						})
					}
				}()

				go func() {
					eng.Clock().SetLimit(search.PhaseLimit(opts.MoveTime, 64-bd.Empties()))
					mv, ok := eng.IterativeDeepening(current, opts.MaxDepth)
					if !ok {
						mv = bd.FirstLegal(current)
					}
					if mv >= 0 {
						bd.MakeMove(mv, current)
					}

					atomic.StoreInt32(&thinking, 0)

					app.QueueUpdateDraw(func() {
						current = board.Opponent(current)
						updateBoard()
						processNextTurn()
					})
				}()
			} else {
				updateBoard()
			}
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			if atomic.LoadInt32(&thinking) == 1 {
				return
			}
			sq := board.Sq(row+1, column+1)
			if sq < 0 || current != human || !bd.Legal(sq, current) {
				return
			}
			bd.MakeMove(sq, current)
			current = board.Opponent(current)
			updateBoard()
			processNextTurn()
		})

		if current != human {
			processNextTurn()
		}

		app.SetRoot(flex, true)
	}

	showStartScreen()

	if err := app.Run(); err != nil {
		panic(err)
	}
}

func colorIndex(p int8) int {
	if p == board.White {
		return 1
	}
	return 0
}
