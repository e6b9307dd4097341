// File: internal/zobrist/zobrist.go
package zobrist

import "math/rand"

const (
	Pieces    = 3   // Empty 行全 0，Black / White
	Positions = 100 // 含哨兵的全盘格数（哨兵键恒 0）
)

// 固定种子，整次搜索可复现；换随机种子不影响正确性。
// 取黄金比例常数 0x9e3779b97f4a7c15 的 int64 位型（最高位为 1，
// 直接写无符号字面量会溢出 rand.NewSource 的参数）。
const seed int64 = -0x61c8864680b583eb

var (
	Keys [Pieces][Positions]uint64
	Side [Pieces]uint64 // 按执子方下标，[0] 不用
)

func init() {
	rng := rand.New(rand.NewSource(seed))
	for p := 1; p < Pieces; p++ {
		for sq := 0; sq < Positions; sq++ {
			r, c := sq/10, sq%10
			if r < 1 || r > 8 || c < 1 || c > 8 {
				continue
			}
			// 避免生成 0（XOR 不起作用）
			v := rng.Uint64()
			for v == 0 {
				v = rng.Uint64()
			}
			Keys[p][sq] = v
		}
		v := rng.Uint64()
		for v == 0 {
			v = rng.Uint64()
		}
		Side[p] = v
	}
}

// Hash 全盘重算：黑白子逐格 XOR，再混入执子方
func Hash(cells []int8, side int8) uint64 {
	var h uint64
	for sq, token := range cells {
		if token == 1 || token == 2 {
			h ^= Keys[token][sq]
		}
	}
	return h ^ Side[side]
}

// Toggle 对 (piece, sq) 的键做一次 XOR；可做增量更新用
func Toggle(h uint64, piece, sq int8) uint64 {
	return h ^ Keys[piece][sq]
}
