// File internal/board/rules.go
package board

// Undo 一次落子的还原记录：落点 + 被翻转的格子。
// 只属于产生它的搜索栈帧，配对的 Unmake 用完即弃。
type Undo struct {
	Square int8
	Flips  []int8
}

// bracketing 从 sq 起沿 dir 越过至少一个敌子寻找己方夹子；
// 无夹击返回 0（0 号格永远是哨兵，可安全充当"无"）。
func (b *Board) bracketing(sq, p, dir int8) int8 {
	if b[sq] != Opponent(p) {
		return 0
	}
	for s := sq + dir; ; s += dir {
		switch b[s] {
		case p:
			return s
		case Opponent(p):
			// 继续扫描，哨兵保证终止
		default:
			return 0
		}
	}
}

// Legal 落点为空且至少一个方向存在夹击
func (b *Board) Legal(sq, p int8) bool {
	if b[sq] != Empty {
		return false
	}
	for _, dir := range Directions {
		if b.bracketing(sq+dir, p, dir) != 0 {
			return true
		}
	}
	return false
}

func (b *Board) HasLegal(p int8) bool {
	for sq := int8(11); sq <= 88; sq++ {
		if b.Legal(sq, p) {
			return true
		}
	}
	return false
}

// Moves 升序枚举全部合法落点
func (b *Board) Moves(p int8) []int8 {
	out := make([]int8, 0, 16)
	for sq := int8(11); sq <= 88; sq++ {
		if b.Legal(sq, p) {
			out = append(out, sq)
		}
	}
	return out
}

// FirstLegal 线性扫描兜底；无子可下返回 -1
func (b *Board) FirstLegal(p int8) int8 {
	for sq := int8(11); sq <= 88; sq++ {
		if b.Legal(sq, p) {
			return sq
		}
	}
	return -1
}

// Terminal 双方均无合法着法
func (b *Board) Terminal() bool {
	return !b.HasLegal(Black) && !b.HasLegal(White)
}

// MakeMove 落子并翻转所有被夹敌子，返回还原记录。
// 调用方保证 Legal(sq, p) 为真。
func (b *Board) MakeMove(sq, p int8) Undo {
	u := Undo{Square: sq, Flips: make([]int8, 0, 8)}
	b[sq] = p
	for _, dir := range Directions {
		br := b.bracketing(sq+dir, p, dir)
		if br == 0 {
			continue
		}
		for s := sq + dir; s != br; s += dir {
			b[s] = p
			u.Flips = append(u.Flips, s)
		}
	}
	return u
}

// Unmake 与 MakeMove 严格互逆：清空落点，翻回所有记录格
func (b *Board) Unmake(u Undo, p int8) {
	b[u.Square] = Empty
	opp := Opponent(p)
	for _, s := range u.Flips {
		b[s] = opp
	}
}

// FlipCount 不改盘面地数一手棋会翻多少子（用于着法排序）
func (b *Board) FlipCount(sq, p int8) int {
	if b[sq] != Empty {
		return 0
	}
	n := 0
	for _, dir := range Directions {
		br := b.bracketing(sq+dir, p, dir)
		if br == 0 {
			continue
		}
		for s := sq + dir; s != br; s += dir {
			n++
		}
	}
	return n
}
