// File internal/board/board.go
package board

const (
	Size   = 100 // 10×10，含哨兵边框
	Dim    = 8   // 可落子区域 8×8
	Stride = 10  // 行步长

	Empty = int8(0)
	Black = int8(1)
	White = int8(2)
	Outer = int8(3) // 哨兵，初始化后永不改变
)

// 终局评分
const (
	WinningValue = int32(32767)
	LosingValue  = int32(-32767)
)

// Directions 八个罗盘方向（10 宽步长上的偏移）
var Directions = [8]int8{-11, -10, -9, -1, 1, 9, 10, 11}

// Board 一维 100 格棋盘；可下子格为行列 1‥8
type Board [Size]int8

// --------------------- 构造 & 初始化 ------------------------

func New() *Board {
	b := &Board{}
	for i := 0; i < Size; i++ {
		if onBoard(int8(i)) {
			b[i] = Empty
		} else {
			b[i] = Outer
		}
	}
	// 标准开局：中央四子
	b[44], b[55] = White, White
	b[45], b[54] = Black, Black
	return b
}

func onBoard(sq int8) bool {
	r, c := sq/Stride, sq%Stride
	return r >= 1 && r <= Dim && c >= 1 && c <= Dim
}

// -------------------- 公共工具 -----------------------------

func Opponent(p int8) int8 {
	if p == Black {
		return White
	}
	return Black
}

// Sq 把 1 基行列映射到格子索引；越界返回 -1
func Sq(row, col int) int8 {
	if row < 1 || row > Dim || col < 1 || col > Dim {
		return -1
	}
	return int8(row*Stride + col)
}

// RowCol 反向映射（调用方保证 sq 在棋盘内）
func RowCol(sq int8) (int, int) { return int(sq) / Stride, int(sq) % Stride }

// Valid 报告 sq 是否为可下子格
func Valid(sq int8) bool { return sq >= 0 && sq < Size && onBoard(sq) }
