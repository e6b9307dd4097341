// internal/ui/renderer.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/menezesd/othello/internal/board"
)

var (
	colBoard     = color.RGBA{0, 128, 0, 255}
	colGrid      = color.RGBA{0, 0, 0, 255}
	colBlack     = color.RGBA{0, 0, 0, 255}
	colWhite     = color.RGBA{255, 255, 255, 255}
	colHighlight = color.RGBA{255, 255, 0, 128}
)

const (
	discRadius      = squareW/2 - 5
	highlightRadius = squareW / 4
)

type renderer struct{}

func newRenderer() *renderer { return &renderer{} }

// squareCenter 格子索引 → 屏幕像素中心
func squareCenter(sq int8) (float32, float32) {
	r, c := board.RowCol(sq)
	x := tlx + (c-1)*squareW + squareW/2
	y := tly + (r-1)*squareW + squareW/2
	return float32(x), float32(y)
}

func (r *renderer) drawBoard(screen *ebiten.Image, gl *GameLoop) {
	// 1) 背景与网格
	screen.Fill(colBoard)
	for i := 0; i <= board.Dim; i++ {
		x := float32(tlx + i*squareW)
		vector.StrokeLine(screen, x, tly, x, tly+board.Dim*squareW, 1, colGrid, false)
		y := float32(tly + i*squareW)
		vector.StrokeLine(screen, tlx, y, tlx+board.Dim*squareW, y, 1, colGrid, false)
	}

	// 2) 静止棋子（跳过动画中的格子）
	moving := make(map[int8]struct{}, len(gl.animating))
	for _, a := range gl.animating {
		moving[a.sq] = struct{}{}
	}
	for sq := int8(11); sq <= 88; sq++ {
		token := gl.bd[sq]
		if token != board.Black && token != board.White {
			continue
		}
		if _, busy := moving[sq]; busy {
			continue
		}
		r.drawDisc(screen, sq, token, 1)
	}

	// 3) 动画棋子
	for _, a := range gl.animating {
		piece, scale, _ := a.frame()
		r.drawDisc(screen, a.sq, piece, scale)
	}

	// 4) 合法落点提示（仅人类回合）
	if gl.showMoves && !gl.gameOver && gl.current == gl.human && len(gl.animating) == 0 {
		for _, sq := range gl.legal {
			cx, cy := squareCenter(sq)
			vector.DrawFilledCircle(screen, cx, cy, highlightRadius, colHighlight, true)
		}
	}
}

func (r *renderer) drawDisc(screen *ebiten.Image, sq, piece int8, scale float64) {
	cx, cy := squareCenter(sq)
	col := colBlack
	if piece == board.White {
		col = colWhite
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(float64(discRadius)*scale), col, true)
}
