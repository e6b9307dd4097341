package tt

import "testing"

const h = uint64(0x9e3779b97f4a7c15)

func newTable() *Table {
	t := New(8)
	t.Clear()
	return t
}

func TestProbeMiss(t *testing.T) {
	tab := newTable()
	score, best, usable := tab.Probe(h, 3, -100, 100)
	if usable || best != -1 || score != 0 {
		t.Fatalf("probe on empty table: score=%d best=%d usable=%v", score, best, usable)
	}
}

func TestExactHit(t *testing.T) {
	tab := newTable()
	tab.Store(h, 5, 42, Exact, 34)
	score, best, usable := tab.Probe(h, 3, -100, 100)
	if !usable || score != 42 || best != 34 {
		t.Fatalf("exact hit: score=%d best=%d usable=%v", score, best, usable)
	}
}

func TestDepthGate(t *testing.T) {
	tab := newTable()
	tab.Store(h, 2, 42, Exact, 34)
	// 深度不够：分数不可用，但排序仍能拿到着法
	score, best, usable := tab.Probe(h, 5, -100, 100)
	if usable {
		t.Fatalf("shallow entry usable at depth 5 (score=%d)", score)
	}
	if best != 34 {
		t.Fatalf("best move lost on depth miss: %d", best)
	}
	if tab.Best(h) != 34 {
		t.Fatalf("Best() = %d, want 34", tab.Best(h))
	}
}

func TestBoundGating(t *testing.T) {
	tab := newTable()

	tab.Store(h, 4, 50, Lower, 34)
	if _, _, usable := tab.Probe(h, 4, -100, 40); !usable {
		t.Fatalf("lower bound 50 should cut at beta=40")
	}
	if _, best, usable := tab.Probe(h, 4, -100, 60); usable || best != 34 {
		t.Fatalf("lower bound 50 must not cut at beta=60")
	}

	tab.Store(h, 4, 50, Upper, 43)
	if _, _, usable := tab.Probe(h, 4, 60, 100); !usable {
		t.Fatalf("upper bound 50 should cut at alpha=60")
	}
	if _, best, usable := tab.Probe(h, 4, 40, 100); usable || best != 43 {
		t.Fatalf("upper bound 50 must not cut at alpha=40")
	}
}

func TestDepthPreferredReplacement(t *testing.T) {
	tab := newTable()
	tab.Store(h, 5, 100, Exact, 34)

	// 浅层结果不得覆盖深层条目
	tab.Store(h, 3, -7, Exact, 43)
	if score, best, _ := tab.Probe(h, 3, -1000, 1000); score != 100 || best != 34 {
		t.Fatalf("deep entry overwritten by shallow store: score=%d best=%d", score, best)
	}

	tab.Store(h, 5, 60, Exact, 45)
	if score, _, _ := tab.Probe(h, 5, -1000, 1000); score != 60 {
		t.Fatalf("equal-depth store did not replace: score=%d", score)
	}
}

func TestClearEmptiesSlots(t *testing.T) {
	tab := newTable()
	tab.Store(h, 5, 100, Exact, 34)
	tab.Clear()
	if best := tab.Best(h); best != -1 {
		t.Fatalf("Best after Clear = %d, want -1", best)
	}
}
