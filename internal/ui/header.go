package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/menezesd/othello/internal/board"
)

type headerUI struct{}

func newHeaderUI() *headerUI { return &headerUI{} }

var (
	colText = color.White
	colGold = color.RGBA{255, 215, 0, 255}
)

func playerName(p int8) string {
	if p == board.Black {
		return "Black"
	}
	return "White"
}

func (h *headerUI) draw(screen *ebiten.Image, gl *GameLoop) {
	blacks := gl.bd.Discs(board.Black)
	whites := gl.bd.Discs(board.White)

	s := fmt.Sprintf("Black: %d  White: %d", blacks, whites)
	text.Draw(screen, s, basicfont.Face7x13, 10, screenH-10, colText)

	switch {
	case gl.gameOver:
		result := "Draw!"
		if blacks > whites {
			result = "Black Wins!"
		} else if whites > blacks {
			result = "White Wins!"
		}
		text.Draw(screen, result, basicfont.Face7x13, screenW/2-40, screenH-10, colGold)
	case gl.passed != 0:
		s := fmt.Sprintf("%s passes - %s again", playerName(gl.passed), playerName(gl.current))
		text.Draw(screen, s, basicfont.Face7x13, screenW/2-80, screenH-10, colGold)
	default:
		text.Draw(screen, playerName(gl.current)+" to move", basicfont.Face7x13, screenW-150, screenH-10, colText)
	}
}
