// File: internal/ui/gameloop.go
package ui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/menezesd/othello/internal/board"
	"github.com/menezesd/othello/internal/search"
)

const (
	maxFPS  = 30
	screenW = 640
	screenH = 480

	squareW = screenH / board.Dim
	tlx     = (screenW - board.Dim*squareW) / 2
	tly     = 0
)

type GameLoop struct {
	bd   *board.Board
	eng  *search.Engine
	rend *renderer
	inp  *inputHandler
	head *headerUI

	human     int8
	current   int8
	maxDepth  int
	baseLimit time.Duration
	showMoves bool

	gameOver bool
	passed   int8 // 上一回合被迫让手的一方；0 表示无
	legal    []int8

	animating []*discAnim
}

func NewGameLoop(b *board.Board, eng *search.Engine, human int8, maxDepth int, baseLimit time.Duration, showMoves bool) *GameLoop {
	gl := &GameLoop{
		bd:        b,
		eng:       eng,
		rend:      newRenderer(),
		inp:       &inputHandler{},
		head:      newHeaderUI(),
		human:     human,
		current:   board.Black,
		maxDepth:  maxDepth,
		baseLimit: baseLimit,
		showMoves: showMoves,
	}
	if gl.current == human {
		gl.legal = b.Moves(human)
	}
	return gl
}

func (gl *GameLoop) Update() error {
	// ① Esc 退出
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// ② 翻子动画阶段 ────────────────────────
	if len(gl.animating) > 0 {
		allDone := true
		for _, a := range gl.animating {
			if _, _, done := a.frame(); !done {
				allDone = false
			}
		}
		if allDone {
			gl.animating = nil
		}
		return nil
	}

	if gl.gameOver {
		return nil
	}

	// ③ 轮到引擎 ─────────────────────────────
	if gl.current != gl.human {
		discs := 64 - gl.bd.Empties()
		gl.eng.Clock().SetLimit(search.PhaseLimit(gl.baseLimit, discs))
		mv, ok := gl.eng.IterativeDeepening(gl.current, gl.maxDepth)
		if !ok {
			// 一层都没搜完：线性扫描兜底，绝不卡死对局
			mv = gl.bd.FirstLegal(gl.current)
		}
		if mv >= 0 {
			gl.play(mv)
		}
		return nil
	}

	// ④ 玩家点击 ─────────────────────────────
	if sq := gl.inp.handleMouse(); sq >= 0 && gl.bd.Legal(sq, gl.human) {
		gl.play(sq)
	}
	return nil
}

// play 落子、启动动画、推进回合（含让手判定）
func (gl *GameLoop) play(sq int8) {
	u := gl.bd.MakeMove(sq, gl.current)
	gl.startFlipAnims(u, gl.current)

	gl.passed = 0
	next := board.Opponent(gl.current)
	switch {
	case gl.bd.HasLegal(next):
		gl.current = next
	case gl.bd.HasLegal(gl.current):
		gl.passed = next // 对方无着，自己继续走
	default:
		gl.gameOver = true
	}

	gl.legal = nil
	if !gl.gameOver && gl.current == gl.human {
		gl.legal = gl.bd.Moves(gl.human)
	}
}

func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.rend.drawBoard(screen, gl)
	gl.head.draw(screen, gl)
}

func (gl *GameLoop) Layout(_, _ int) (int, int) { return screenW, screenH }

func Run(gl *GameLoop) {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Othello")
	ebiten.SetTPS(maxFPS)
	if err := ebiten.RunGame(gl); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
