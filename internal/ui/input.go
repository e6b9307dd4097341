package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/menezesd/othello/internal/board"
)

type inputHandler struct{}

// handleMouse 点击时返回对应格子索引，否则 -1；
// 合法性由调用方检查（非法点击只是被忽略）。
func (h *inputHandler) handleMouse() int8 {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return -1
	}
	x, y := ebiten.CursorPosition()
	return pixelToSquare(x, y)
}

/* ---------- 像素坐标 -> 格子索引 ---------- */

func pixelToSquare(x, y int) int8 {
	if x < tlx || y < tly {
		return -1
	}
	col := (x-tlx)/squareW + 1
	row := (y-tly)/squareW + 1
	return board.Sq(row, col)
}
