// File internal/board/metrics.go
package board

// 评估用的盘面统计，全部只扫 64 个可下子格。

var corners = [4]int8{11, 18, 81, 88}

// xSquares[i] 与 corners[i] 斜对角相邻
var xSquares = [4]int8{22, 27, 72, 77}

// 四条轴：横、竖、两条对角线（正方向步长）
var axes = [4]int8{1, Stride, Stride - 1, Stride + 1}

func IsCorner(sq int8) bool {
	return sq == 11 || sq == 18 || sq == 81 || sq == 88
}

func isEdge(sq int8) bool {
	r, c := sq/Stride, sq%Stride
	return r == 1 || r == Dim || c == 1 || c == Dim
}

// Discs 数 p 的棋子
func (b *Board) Discs(p int8) int {
	n := 0
	for sq := int8(11); sq <= 88; sq++ {
		if b[sq] == p {
			n++
		}
	}
	return n
}

// DiscDiff 己方减敌方子数
func (b *Board) DiscDiff(p int8) int {
	return b.Discs(p) - b.Discs(Opponent(p))
}

// Empties 剩余空格数
func (b *Board) Empties() int {
	n := 0
	for sq := int8(11); sq <= 88; sq++ {
		if b[sq] == Empty {
			n++
		}
	}
	return n
}

// MobilityCount 合法着法数
func (b *Board) MobilityCount(p int8) int {
	n := 0
	for sq := int8(11); sq <= 88; sq++ {
		if b.Legal(sq, p) {
			n++
		}
	}
	return n
}

// Corners 已占角数
func (b *Board) Corners(p int8) int {
	n := 0
	for _, sq := range corners {
		if b[sq] == p {
			n++
		}
	}
	return n
}

// EdgeCells 非角边格占子数
func (b *Board) EdgeCells(p int8) int {
	n := 0
	for sq := int8(11); sq <= 88; sq++ {
		if b[sq] == p && isEdge(sq) && !IsCorner(sq) {
			n++
		}
	}
	return n
}

// DangerousSquares 占住的 X 位数，只在对应角没被自己控住时计入
func (b *Board) DangerousSquares(p int8) int {
	n := 0
	for i, sq := range xSquares {
		if b[sq] == p && b[corners[i]] != p {
			n++
		}
	}
	return n
}

// Parity 空格数为奇返回 +1，否则 -1（残局抢最后一手）
func (b *Board) Parity() int {
	if b.Empties()%2 == 1 {
		return 1
	}
	return -1
}

// Stability 按保守判据数稳定子：是角，或四条轴上都卡死
// （某一方向同色连到棋盘边即该轴安全）。
func (b *Board) Stability(p int8) int {
	n := 0
	for sq := int8(11); sq <= 88; sq++ {
		if b[sq] != p {
			continue
		}
		if IsCorner(sq) || b.stableAllAxes(sq, p) {
			n++
		}
	}
	return n
}

func (b *Board) stableAllAxes(sq, p int8) bool {
	for _, d := range axes {
		if !b.runToEdge(sq, d, p) && !b.runToEdge(sq, -d, p) {
			return false
		}
	}
	return true
}

// runToEdge 沿 dir 的同色连排是否一直顶到哨兵
func (b *Board) runToEdge(sq, dir, p int8) bool {
	for s := sq + dir; ; s += dir {
		switch b[s] {
		case p:
			// 同色继续
		case Outer:
			return true
		default:
			return false
		}
	}
}
