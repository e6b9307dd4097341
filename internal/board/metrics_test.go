package board

import "testing"

func TestCornerAndEdgeCounts(t *testing.T) {
	b := New()
	b[11] = Black
	b[12] = Black
	b[18] = White

	if got := b.Corners(Black); got != 1 {
		t.Fatalf("Corners(Black) = %d, want 1", got)
	}
	if got := b.Corners(White); got != 1 {
		t.Fatalf("Corners(White) = %d, want 1", got)
	}
	// 12 是边格但不是角
	if got := b.EdgeCells(Black); got != 1 {
		t.Fatalf("EdgeCells(Black) = %d, want 1", got)
	}
}

func TestDangerousSquares(t *testing.T) {
	b := New()
	b[22] = Black
	if got := b.DangerousSquares(Black); got != 1 {
		t.Fatalf("X square with open corner: got %d, want 1", got)
	}
	// 占住配对角后 X 位不再算险
	b[11] = Black
	if got := b.DangerousSquares(Black); got != 0 {
		t.Fatalf("X square with own corner: got %d, want 0", got)
	}
}

func TestStability(t *testing.T) {
	b := New()
	b[11] = Black
	b[12] = Black
	if got := b.Stability(Black); got != 2 {
		t.Fatalf("corner plus adjacent edge disc: got %d, want 2", got)
	}
	// 中腹孤子四轴皆空，不稳定
	if got := b.Stability(White); got != 0 {
		t.Fatalf("interior discs counted stable: got %d", got)
	}
}

func TestParity(t *testing.T) {
	b := New()
	if got := b.Parity(); got != -1 {
		t.Fatalf("60 empties (even): got %d, want -1", got)
	}
	b.MakeMove(34, Black)
	if got := b.Parity(); got != 1 {
		t.Fatalf("59 empties (odd): got %d, want 1", got)
	}
}

func TestDiscCounts(t *testing.T) {
	b := New()
	if b.Discs(Black) != 2 || b.Discs(White) != 2 {
		t.Fatalf("start counts = %d/%d, want 2/2", b.Discs(Black), b.Discs(White))
	}
	b.MakeMove(34, Black)
	if got := b.DiscDiff(Black); got != 3 {
		t.Fatalf("DiscDiff after first move = %d, want 3", got)
	}
	if got := b.DiscDiff(White); got != -3 {
		t.Fatalf("DiscDiff(White) = %d, want -3", got)
	}
}

func TestMobilityCount(t *testing.T) {
	b := New()
	if got := b.MobilityCount(Black); got != 4 {
		t.Fatalf("opening mobility = %d, want 4", got)
	}
	if got := b.MobilityCount(White); got != 4 {
		t.Fatalf("opening mobility (white) = %d, want 4", got)
	}
}
