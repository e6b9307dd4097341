// internal/search/search.go
package search

import (
	"math"
	"sort"
	"time"

	"github.com/menezesd/othello/internal/board"
	"github.com/menezesd/othello/internal/eval"
	"github.com/menezesd/othello/internal/tt"
	"github.com/menezesd/othello/internal/zobrist"
)

// UseTT 关掉后退化为裸 αβ（对照测试用）
var UseTT = true

const (
	// 剩余时间低于此值不再加深一层
	minIterTime = 100 * time.Millisecond

	// 期望窗初始半宽；超过上限后改用全宽重搜
	aspHalfWidth = 64
	aspMaxHalf   = 4096
)

/* ──────────────── Engine ──────────────── */

// Engine 持有一次对局期间的全部搜索状态：
// 置换表每次顶层搜索清空，历史表跨整局累积。
type Engine struct {
	bd      *board.Board
	table   *tt.Table
	history [board.Size]int64
	clock   *Clock
	cancel  cancelToken

	// 统计
	Nodes  uint64
	TTHits uint64
}

func NewEngine(b *board.Board, limit time.Duration) *Engine {
	return &Engine{bd: b, table: tt.NewDefault(), clock: NewClock(limit)}
}

func (e *Engine) Clock() *Clock { return e.clock }

// IterativeDeepening 迭代加深到 maxDepth 或时间耗尽，
// 返回最后一个完整层的最佳着；一层都没完成时 ok=false，
// 调用方应退回 board.FirstLegal 兜底。
func (e *Engine) IterativeDeepening(player int8, maxDepth int) (int8, bool) {
	e.table.Clear()
	e.cancel.Reset()
	e.clock.Start()
	e.Nodes, e.TTHits = 0, 0

	bestMove := int8(-1)
	var prev int32
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && e.clock.Remaining() < minIterTime {
			break
		}
		score, move, done := e.aspirate(player, prev, depth)
		if !done {
			break // 超时层作废，保留上一层结果
		}
		bestMove, prev = move, score
	}
	return bestMove, bestMove >= 0
}

// aspirate 以上一层得分为中心开期望窗；失高/失低就把对应
// 半宽翻倍重搜，超过 aspMaxHalf 退为全宽。
func (e *Engine) aspirate(player int8, prev int32, depth int) (int32, int8, bool) {
	fullAlpha := board.LosingValue - 1
	fullBeta := board.WinningValue + 1
	if depth == 1 {
		score, move := e.searchRoot(player, fullAlpha, fullBeta, depth)
		return score, move, !e.cancel.IsAborted()
	}

	lo, hi := int32(aspHalfWidth), int32(aspHalfWidth)
	for {
		alpha, beta := prev-lo, prev+hi
		if lo > aspMaxHalf || alpha < fullAlpha {
			alpha = fullAlpha
		}
		if hi > aspMaxHalf || beta > fullBeta {
			beta = fullBeta
		}
		score, move := e.searchRoot(player, alpha, beta, depth)
		if e.cancel.IsAborted() {
			return 0, -1, false
		}
		if score <= alpha && alpha > fullAlpha {
			lo *= 2
			continue
		}
		if score >= beta && beta < fullBeta {
			hi *= 2
			continue
		}
		return score, move, true
	}
}

/* ──────────────── 根层 ──────────────── */

func (e *Engine) searchRoot(player int8, alpha, beta int32, depth int) (int32, int8) {
	moves := e.bd.Moves(player)
	if len(moves) == 0 {
		return 0, -1
	}

	h := zobrist.Hash(e.bd[:], player)
	ttBest := int8(-1)
	if UseTT {
		ttBest = e.table.Best(h)
	}
	e.orderMoves(moves, player, ttBest)

	alphaOrig := alpha
	best := int32(math.MinInt32)
	bestMove := int8(-1)
	opp := board.Opponent(player)
	for _, m := range moves {
		u := e.bd.MakeMove(m, player)
		val := -e.alphabeta(opp, -beta, -alpha, depth-1)
		e.bd.Unmake(u, player)
		if e.cancel.IsAborted() {
			return alpha, bestMove
		}
		if val > best {
			best, bestMove = val, m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			e.history[m] += int64(depth * depth)
			break
		}
	}

	if UseTT {
		flag := tt.Exact
		if best <= alphaOrig {
			flag = tt.Upper
		} else if best >= beta {
			flag = tt.Lower
		}
		e.table.Store(h, int8(depth), best, flag, bestMove)
	}
	return best, bestMove
}

/* ──────────────── negamax + αβ ──────────────── */

func (e *Engine) alphabeta(player int8, alpha, beta int32, ply int) int32 {
	// 时间耗尽：置标志立即返回，上层看标志不信任该值
	if e.cancel.IsAborted() {
		return alpha
	}
	if e.clock.Expired() {
		e.cancel.Abort()
		return alpha
	}
	e.Nodes++

	h := zobrist.Hash(e.bd[:], player)
	ttBest := int8(-1)
	if UseTT {
		score, best, usable := e.table.Probe(h, int8(ply), alpha, beta)
		if usable {
			e.TTHits++
			return score
		}
		ttBest = best
	}

	if ply == 0 {
		v := eval.Advanced(e.bd, player)
		if UseTT {
			e.table.Store(h, 0, v, tt.Exact, -1)
		}
		return v
	}

	opp := board.Opponent(player)
	moves := e.bd.Moves(player)
	if len(moves) == 0 {
		if e.bd.HasLegal(opp) {
			// 让一手
			return -e.alphabeta(opp, -beta, -alpha, ply-1)
		}
		// 双方无着：终局按子数差定胜负
		switch diff := e.bd.DiscDiff(player); {
		case diff > 0:
			return board.WinningValue
		case diff < 0:
			return board.LosingValue
		default:
			return 0
		}
	}

	e.orderMoves(moves, player, ttBest)

	alphaOrig := alpha
	best := int32(math.MinInt32)
	bestMove := int8(-1)
	for _, m := range moves {
		u := e.bd.MakeMove(m, player)
		val := -e.alphabeta(opp, -beta, -alpha, ply-1)
		e.bd.Unmake(u, player)
		if e.cancel.IsAborted() {
			return alpha
		}
		if val > best {
			best, bestMove = val, m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			// β 剪；历史计数按剩余深度平方加权
			e.history[m] += int64(ply * ply)
			break
		}
	}

	if UseTT {
		flag := tt.Exact
		if best <= alphaOrig {
			flag = tt.Upper
		} else if best >= beta {
			flag = tt.Lower
		}
		e.table.Store(h, int8(ply), best, flag, bestMove)
	}
	return best
}

/* ──────────────── 着法排序 ──────────────── */

// orderMoves 优先级：TT 着 > 角 > 历史分 > 翻子数 > 位置权重
func (e *Engine) orderMoves(moves []int8, player int8, ttBest int8) {
	if ttBest >= 0 && !e.bd.Legal(ttBest, player) {
		ttBest = -1
	}
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a == ttBest || b == ttBest {
			return a == ttBest
		}
		ca, cb := board.IsCorner(a), board.IsCorner(b)
		if ca != cb {
			return ca
		}
		if e.history[a] != e.history[b] {
			return e.history[a] > e.history[b]
		}
		fa, fb := e.bd.FlipCount(a, player), e.bd.FlipCount(b, player)
		if fa != fb {
			return fa > fb
		}
		return eval.Weight(a) > eval.Weight(b)
	})
}
