// internal/eval/eval.go
package eval

import "github.com/menezesd/othello/internal/board"

/*
   启发指标
   ─────────
   mobility   行动力差 ×10
   corner     每角 ±100
   edge       非角边格 ±5
   stability  稳定子 ±10
   danger     X 位（角未控住时）±25，占者为负
   parity     空格奇偶 ±3
   discDiff   子数差（残局才用）

   按总子数分三段加权混合。
*/

// 阶段阈值（按盘上总子数）
const (
	openingMax = 20
	midgameMax = 50
)

// Weights 固定 10×10 位置权重表：角 120，X 位 -40。
// 只用于着法排序的静态权重，不参与 Advanced 评估。
var Weights = [board.Size]int32{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Weight 单格静态权重
func Weight(sq int8) int32 { return Weights[sq] }

// Positional 位置权重差（己方加、敌方减）
func Positional(b *board.Board, p int8) int32 {
	opp := board.Opponent(p)
	var sum int32
	for sq := int8(11); sq <= 88; sq++ {
		switch b[sq] {
		case p:
			sum += Weights[sq]
		case opp:
			sum -= Weights[sq]
		}
	}
	return sum
}

// Advanced 计算 p 视角的阶段加权静态分
func Advanced(b *board.Board, p int8) int32 {
	opp := board.Opponent(p)
	n := b.Discs(board.Black) + b.Discs(board.White)

	mobility := 10 * int32(b.MobilityCount(p)-b.MobilityCount(opp))
	corner := 100 * int32(b.Corners(p)-b.Corners(opp))
	danger := 25 * int32(b.DangerousSquares(opp)-b.DangerousSquares(p))

	switch {
	case n <= openingMax:
		return 4*mobility + 3*corner + 2*danger
	case n <= midgameMax:
		edge := 5 * int32(b.EdgeCells(p)-b.EdgeCells(opp))
		stability := 10 * int32(b.Stability(p)-b.Stability(opp))
		return 2*mobility + stability + 2*corner + edge + danger
	default:
		discDiff := int32(b.DiscDiff(p))
		stability := 10 * int32(b.Stability(p)-b.Stability(opp))
		parity := 3 * int32(b.Parity())
		return 3*discDiff + 3*corner + stability + parity
	}
}
