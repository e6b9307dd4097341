package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/menezesd/othello/internal/board"
	"github.com/menezesd/othello/internal/search"
	"github.com/menezesd/othello/internal/tui"
	"github.com/menezesd/othello/internal/ui"
)

func main() {
	// ──────── 命令行参数 ────────
	var (
		maxDepth  = flag.Int("depth", 9, "maximum search depth")
		moveTime  = flag.Duration("time", 3*time.Second, "base time per engine move (0 = unlimited)")
		color     = flag.String("color", "black", "human color: black or white")
		frontend  = flag.String("ui", "gui", "frontend: gui or tui")
		showMoves = flag.Bool("showmoves", true, "highlight legal moves")
	)
	flag.Parse()

	human := board.Black
	if *color == "white" {
		human = board.White
	}

	// ──────── 初始化棋局 ────────
	bd := board.New()
	eng := search.NewEngine(bd, *moveTime)

	fmt.Printf("Othello started: human=%s  |  ui=%s  |  depth=%d  |  time=%v\n",
		*color, *frontend, *maxDepth, *moveTime)

	// ──────── 启动主循环 ────────
	if *frontend == "tui" {
		tui.Run(bd, eng, tui.Options{
			Human:     human,
			MaxDepth:  *maxDepth,
			MoveTime:  *moveTime,
			ShowMoves: *showMoves,
		})
		return
	}
	ui.Run(ui.NewGameLoop(bd, eng, human, *maxDepth, *moveTime, *showMoves))
}
