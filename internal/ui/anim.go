// File internal/ui/anim.go
package ui

import (
	"time"

	"github.com/menezesd/othello/internal/board"
)

const flipDur = 250 * time.Millisecond // 动画时长

// discAnim 一颗棋子的落下/翻面动画
type discAnim struct {
	sq    int8
	from  int8 // 原色；Empty 表示新落子
	to    int8
	start time.Time
}

// frame 返回当前应画的颜色和半径缩放；翻面时先缩到 0 再换色放大
func (a *discAnim) frame() (piece int8, scale float64, done bool) {
	t := float64(time.Since(a.start)) / float64(flipDur)
	if t >= 1 {
		return a.to, 1, true
	}
	if a.from == board.Empty {
		return a.to, t, false
	}
	if t < 0.5 {
		return a.from, 1 - 2*t, false
	}
	return a.to, 2*t - 1, false
}

// startFlipAnims 为刚落的子和每颗被翻的子各开一条动画
func (gl *GameLoop) startFlipAnims(u board.Undo, mover int8) {
	now := time.Now()
	opp := board.Opponent(mover)
	anims := make([]*discAnim, 0, len(u.Flips)+1)
	anims = append(anims, &discAnim{sq: u.Square, from: board.Empty, to: mover, start: now})
	for _, s := range u.Flips {
		anims = append(anims, &discAnim{sq: s, from: opp, to: mover, start: now})
	}
	gl.animating = anims
}
