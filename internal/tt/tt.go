// File: internal/tt/tt.go
package tt

// Flag 表示评分类型：Exact(0)、Lower(1)、Upper(2)
type Flag uint8

const (
	Exact Flag = iota
	Lower
	Upper
)

// Entry 是 TT 中的一条记录
type Entry struct {
	Hash  uint64 // zobrist 哈希；用于碰撞校验
	Depth int8   // 搜索深度
	Score int32  // 节点评分
	Flag  Flag   // 精确/下界/上界
	Best  int8   // 最佳落点；-1 表示无
}

// 默认大小：2²⁰ = 1 M 槽
const defaultPow = 20

// Table 定长开式寻址表；每次顶层搜索前 Clear
type Table struct {
	slots []Entry
	mask  uint64
}

// New 创建 TT，容量 = 2^pow 个槽
func New(pow uint8) *Table {
	size := 1 << pow
	return &Table{slots: make([]Entry, size), mask: uint64(size - 1)}
}

func NewDefault() *Table { return New(defaultPow) }

// Clear 把所有槽标记为空（Hash=0 视为"槽空"，zobrist 键绝不生成 0）
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = Entry{Best: -1}
	}
}

// Probe 查表。命中同一局面时无论深度如何都返回缓存的最佳着
// （供排序用）；score 只在条目深度 ≥ 需求深度、且界型允许截断时
// 才可用：Exact 恒可用，Lower 需 score ≥ beta，Upper 需 score ≤ alpha。
func (t *Table) Probe(hash uint64, depth int8, alpha, beta int32) (score int32, best int8, usable bool) {
	e := &t.slots[hash&t.mask]
	if e.Hash != hash {
		return 0, -1, false
	}
	best = e.Best
	if e.Depth < depth {
		return 0, best, false
	}
	switch e.Flag {
	case Exact:
		return e.Score, best, true
	case Lower:
		if e.Score >= beta {
			return e.Score, best, true
		}
	case Upper:
		if e.Score <= alpha {
			return e.Score, best, true
		}
	}
	return 0, best, false
}

// Best 只取缓存着法
func (t *Table) Best(hash uint64) int8 {
	e := &t.slots[hash&t.mask]
	if e.Hash == hash {
		return e.Best
	}
	return -1
}

// Store 写回；替换策略：槽空或深度不低于旧条目才覆盖（绝不退回浅层分析）
func (t *Table) Store(hash uint64, depth int8, score int32, flag Flag, best int8) {
	e := &t.slots[hash&t.mask]
	if e.Hash == 0 || depth >= e.Depth {
		*e = Entry{Hash: hash, Depth: depth, Score: score, Flag: flag, Best: best}
	}
}
