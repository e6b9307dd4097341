package search

import (
	"testing"
	"time"

	"github.com/menezesd/othello/internal/board"
	"github.com/menezesd/othello/internal/eval"
)

const (
	fullAlpha = board.LosingValue - 1
	fullBeta  = board.WinningValue + 1
)

// emptyBoard 只留哨兵边框，测试摆子用
func emptyBoard() *board.Board {
	b := board.New()
	for sq := int8(0); sq < board.Size; sq++ {
		if board.Valid(sq) {
			b[sq] = board.Empty
		}
	}
	return b
}

func TestDepthZeroMatchesEval(t *testing.T) {
	b := board.New()
	e := NewEngine(b, 0)
	got := e.alphabeta(board.Black, fullAlpha, fullBeta, 0)
	if want := eval.Advanced(b, board.Black); got != want {
		t.Fatalf("leaf value = %d, want static eval %d", got, want)
	}
}

func TestOpeningMoveDepthOne(t *testing.T) {
	e := NewEngine(board.New(), 0)
	score, mv := e.searchRoot(board.Black, fullAlpha, fullBeta, 1)
	switch mv {
	case 34, 43, 56, 65:
	default:
		t.Fatalf("depth-1 move = %d, want one of the four openings", mv)
	}
	if score < 0 {
		t.Fatalf("depth-1 score = %d, opening is not losing", score)
	}
}

func TestIterativeDeepeningPlaysLegal(t *testing.T) {
	b := board.New()
	e := NewEngine(b, 0)
	mv, ok := e.IterativeDeepening(board.Black, 5)
	if !ok {
		t.Fatalf("no move found with unlimited time")
	}
	if !b.Legal(mv, board.Black) {
		t.Fatalf("illegal move %d", mv)
	}
	if e.Nodes == 0 {
		t.Fatalf("node counter never incremented")
	}
}

func TestPassConsumesPly(t *testing.T) {
	// 白方无着、黑方有着：让一手应等价于直接轮到黑、深度减一
	mk := func() *board.Board {
		b := emptyBoard()
		b[11], b[31] = board.Black, board.Black
		b[12], b[32] = board.White, board.White
		return b
	}
	e1 := NewEngine(mk(), 0)
	v := e1.alphabeta(board.White, fullAlpha, fullBeta, 2)

	e2 := NewEngine(mk(), 0)
	w := e2.alphabeta(board.Black, fullAlpha, fullBeta, 1)
	if v != -w {
		t.Fatalf("pass node = %d, direct search negated = %d", v, -w)
	}
}

func TestForcedWinIsFound(t *testing.T) {
	// 黑 13 → 白停着 → 黑 33 吃光白子
	b := emptyBoard()
	b[11], b[31] = board.Black, board.Black
	b[12], b[32] = board.White, board.White

	e := NewEngine(b, 0)
	if got := e.alphabeta(board.Black, fullAlpha, fullBeta, 4); got != board.WinningValue {
		t.Fatalf("forced wipe-out scored %d, want %d", got, board.WinningValue)
	}
}

func TestTerminalScores(t *testing.T) {
	win := emptyBoard()
	win[11] = board.Black
	e := NewEngine(win, 0)
	if got := e.alphabeta(board.Black, fullAlpha, fullBeta, 3); got != board.WinningValue {
		t.Fatalf("sole survivor scored %d, want %d", got, board.WinningValue)
	}
	e = NewEngine(win, 0)
	if got := e.alphabeta(board.White, fullAlpha, fullBeta, 3); got != board.LosingValue {
		t.Fatalf("wiped-out side scored %d, want %d", got, board.LosingValue)
	}

	draw := emptyBoard()
	draw[11], draw[88] = board.Black, board.White
	e = NewEngine(draw, 0)
	if got := e.alphabeta(board.Black, fullAlpha, fullBeta, 3); got != 0 {
		t.Fatalf("dead draw scored %d, want 0", got)
	}
}

func TestTimeoutKeepsCompletedDepth(t *testing.T) {
	b := board.New()
	e := NewEngine(b, 500*time.Millisecond)

	// 假时钟第 7 次查询起跳到一小时后：Start 占 1 次，
	// 第 1 层四个叶子占 4 次，加深检查占 1 次，
	// 于是第 1 层恰好完整、第 2 层首个节点即超时。
	base := time.Unix(0, 0)
	calls := 0
	e.clock.nowFn = func() time.Time {
		calls++
		if calls > 6 {
			return base.Add(time.Hour)
		}
		return base
	}

	mv, ok := e.IterativeDeepening(board.Black, 10)
	if !ok {
		t.Fatalf("completed depth discarded on timeout")
	}

	ref := NewEngine(board.New(), 0)
	want, _ := ref.IterativeDeepening(board.Black, 1)
	if mv != want {
		t.Fatalf("timeout move = %d, depth-1 move = %d", mv, want)
	}
}

func TestNoCompletedDepthReportsNone(t *testing.T) {
	b := board.New()
	e := NewEngine(b, time.Millisecond)

	base := time.Unix(0, 0)
	calls := 0
	e.clock.nowFn = func() time.Time {
		calls++
		if calls > 1 {
			return base.Add(time.Hour)
		}
		return base
	}

	mv, ok := e.IterativeDeepening(board.Black, 5)
	if ok || mv != -1 {
		t.Fatalf("instant timeout returned mv=%d ok=%v", mv, ok)
	}
	// 调用方兜底
	if fb := b.FirstLegal(board.Black); fb != 34 {
		t.Fatalf("FirstLegal fallback = %d, want 34", fb)
	}
}

func TestTableDoesNotChangeScores(t *testing.T) {
	defer func() { UseTT = true }()

	pos := board.New()
	player := board.Black
	for step := 0; step < 8; step++ {
		if step > 0 {
			if mv := pos.FirstLegal(player); mv >= 0 {
				pos.MakeMove(mv, player)
			}
			player = board.Opponent(player)
		}

		b1 := *pos
		UseTT = true
		e1 := NewEngine(&b1, 0)
		s1, _ := e1.searchRoot(player, fullAlpha, fullBeta, 3)

		b2 := *pos
		UseTT = false
		e2 := NewEngine(&b2, 0)
		s2, _ := e2.searchRoot(player, fullAlpha, fullBeta, 3)

		if s1 != s2 {
			t.Fatalf("step %d: score with table %d, without %d", step, s1, s2)
		}
	}
}

func TestAspirationMatchesFullWindow(t *testing.T) {
	e1 := NewEngine(board.New(), 0)
	prev, _ := e1.searchRoot(board.Black, fullAlpha, fullBeta, 1)
	s1, m1, done := e1.aspirate(board.Black, prev, 3)
	if !done {
		t.Fatalf("aspiration aborted with unlimited time")
	}

	e2 := NewEngine(board.New(), 0)
	s2, m2 := e2.searchRoot(board.Black, fullAlpha, fullBeta, 3)
	if s1 != s2 {
		t.Fatalf("aspirated score %d, full-window score %d", s1, s2)
	}
	if !board.New().Legal(m1, board.Black) || !board.New().Legal(m2, board.Black) {
		t.Fatalf("illegal best moves %d/%d", m1, m2)
	}
}

func TestMoveOrderingPrefersCorner(t *testing.T) {
	b := emptyBoard()
	// 黑可下 22 和 88；枚举序 22 在前，排序后角 88 应领先
	b[23] = board.White
	b[24] = board.Black
	b[86], b[87] = board.White, board.White
	b[85] = board.Black

	e := NewEngine(b, 0)
	moves := b.Moves(board.Black)
	if len(moves) != 2 || moves[0] != 22 || moves[1] != 88 {
		t.Fatalf("setup broken, moves = %v", moves)
	}
	e.orderMoves(moves, board.Black, -1)
	if moves[0] != 88 {
		t.Fatalf("ordered moves = %v, corner 88 should lead", moves)
	}
}
