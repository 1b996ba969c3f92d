package origami

import (
	"math"
	"testing"
)

func TestSimulate_ZeroFolds(t *testing.T) {
	tr := DeriveTraits(42)
	res := Simulate(42, tr, 0, CanvasSize, CanvasSize)
	if len(res.Creases) != 0 {
		t.Errorf("crease count = %d, want 0", len(res.Creases))
	}
	if res.HasTarget {
		t.Error("no fold applied, but HasTarget is set")
	}
	want := Rect(CanvasMargin, CanvasMargin, InnerSize, InnerSize)
	if len(res.Polygon) != 4 {
		t.Fatalf("polygon has %d vertices, want 4", len(res.Polygon))
	}
	for i := range want {
		if !res.Polygon[i].Approx(want[i], 1e-12) {
			t.Errorf("vertex %d = %v, want %v", i, res.Polygon[i], want[i])
		}
	}
}

func TestSimulate_InvalidDimensions(t *testing.T) {
	tr := DeriveTraits(42)
	for _, dims := range [][2]int{{0, 800}, {800, 0}, {-1, -1}} {
		res := Simulate(42, tr, 15, dims[0], dims[1])
		if len(res.Creases) != 0 || len(res.Polygon) != 0 {
			t.Errorf("dims %v: want empty result, got %d creases, %d vertices",
				dims, len(res.Creases), len(res.Polygon))
		}
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	for _, seed := range []int64{1, 42, -42, 987654321} {
		tr := DeriveTraits(seed)
		a := Simulate(seed, tr, 25, CanvasSize, CanvasSize)
		b := Simulate(seed, tr, 25, CanvasSize, CanvasSize)

		if len(a.Creases) != len(b.Creases) {
			t.Fatalf("seed %d: crease counts differ: %d vs %d", seed, len(a.Creases), len(b.Creases))
		}
		for i := range a.Creases {
			if a.Creases[i] != b.Creases[i] {
				t.Errorf("seed %d: crease %d differs:\n%+v\n%+v", seed, i, a.Creases[i], b.Creases[i])
			}
		}
		if len(a.Polygon) != len(b.Polygon) {
			t.Fatalf("seed %d: polygon sizes differ", seed)
		}
		for i := range a.Polygon {
			if a.Polygon[i] != b.Polygon[i] {
				t.Errorf("seed %d: vertex %d differs", seed, i)
			}
		}
	}
}

func TestSimulate_Golden42(t *testing.T) {
	// Reference scenario: seed 42 is a horizontal folder; 15 folds must
	// produce a non-empty, reproducible crease list.
	tr := DeriveTraits(42)
	if tr.FoldStrategy.Kind != FoldHorizontal {
		t.Fatalf("strategy = %v, want horizontal", tr.FoldStrategy.Kind)
	}
	res := Simulate(42, tr, 15, CanvasSize, CanvasSize)
	if len(res.Creases) == 0 {
		t.Fatal("15 folds produced no creases")
	}
	if res.Applied+res.Skipped != 15 {
		t.Errorf("applied %d + skipped %d != 15", res.Applied, res.Skipped)
	}
	if !res.HasTarget {
		t.Error("applied folds but no last target")
	}
}

func TestSimulate_PolygonStaysValid(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, -7, 555} {
		tr := DeriveTraits(seed)
		for _, folds := range []int{1, 5, 20, 80} {
			res := Simulate(seed, tr, folds, CanvasSize, CanvasSize)
			if len(res.Polygon) < 3 {
				t.Errorf("seed %d folds %d: polygon has %d vertices", seed, folds, len(res.Polygon))
				continue
			}
			if !res.Polygon.IsCCW() {
				t.Errorf("seed %d folds %d: polygon is not CCW", seed, folds)
			}
		}
	}
}

func TestSimulate_CreaseInvariants(t *testing.T) {
	for _, seed := range []int64{3, 42, 1001} {
		tr := DeriveTraits(seed)
		res := Simulate(seed, tr, 60, CanvasSize, CanvasSize)

		lastDepth := -1
		for i, c := range res.Creases {
			if c.Depth <= lastDepth {
				t.Errorf("seed %d: crease %d depth %d not increasing", seed, i, c.Depth)
			}
			lastDepth = c.Depth
			if c.Weight <= 0 {
				t.Errorf("seed %d: crease %d weight %v not positive", seed, i, c.Weight)
			}
			if c.CyclePos != c.Depth%tr.MaxFolds {
				t.Errorf("seed %d: crease %d cyclePos %d, want %d", seed, i, c.CyclePos, c.Depth%tr.MaxFolds)
			}
			if c.Reduction < reductionFloor || c.Reduction > reductionFloor+reductionSpan {
				t.Errorf("seed %d: crease %d reduction %v out of range", seed, i, c.Reduction)
			}
			inCanvas := func(p Point) bool {
				return p.X >= -1e-9 && p.X <= CanvasSize+1e-9 && p.Y >= -1e-9 && p.Y <= CanvasSize+1e-9
			}
			if !inCanvas(c.P1) || !inCanvas(c.P2) {
				t.Errorf("seed %d: crease %d not clipped to canvas: %v %v", seed, i, c.P1, c.P2)
			}
		}
	}
}

// Extending a run across a breathing-cycle boundary must only ever decrease
// the weights of already-recorded creases, by exactly their own Reduction.
func TestSimulate_BreathingDecay(t *testing.T) {
	for _, seed := range []int64{2, 42, 77} {
		tr := DeriveTraits(seed)
		n := tr.MaxFolds

		before := Simulate(seed, tr, n, CanvasSize, CanvasSize)
		after := Simulate(seed, tr, n+1, CanvasSize, CanvasSize)

		if len(before.Creases) == 0 {
			t.Fatalf("seed %d: no creases in %d folds", seed, n)
		}
		for i, c := range before.Creases {
			d := after.Creases[i]
			if d.Weight > c.Weight {
				t.Errorf("seed %d: crease %d weight grew across exhale: %v -> %v", seed, i, c.Weight, d.Weight)
			}
			if want := c.Weight * c.Reduction; math.Abs(d.Weight-want) > 1e-12 {
				t.Errorf("seed %d: crease %d weight = %v, want %v", seed, i, d.Weight, want)
			}
			if d.Reduction != c.Reduction {
				t.Errorf("seed %d: crease %d reduction changed: %v -> %v", seed, i, c.Reduction, d.Reduction)
			}
		}
	}
}

func TestBreathingTable(t *testing.T) {
	got := breathingTable(42, 50)
	if len(got) != 50 {
		t.Fatalf("table length = %d, want 50", len(got))
	}
	for k, m := range got {
		if m < reductionFloor || m > reductionFloor+reductionSpan {
			t.Errorf("multiplier %d = %v out of range", k, m)
		}
	}
	again := breathingTable(42, 50)
	for k := range got {
		if got[k] != again[k] {
			t.Fatalf("multiplier %d differs across builds", k)
		}
	}
}

// The hull-union contract: after a split, both halves carry points on the
// crease line, so their union is a convex hull over a shared edge.
func TestSplitHalvesShareCreasePoints(t *testing.T) {
	poly := Rect(100, 100, 600, 600)
	l := line{origin: Pt(400, 400), dir: Pt(1, 0.3).Normalize()}
	pos, neg := poly.splitByLine(l)
	if len(pos) < 3 || len(neg) < 3 {
		t.Fatalf("split degenerate: %d/%d vertices", len(pos), len(neg))
	}

	onLine := func(pg Polygon) int {
		n := 0
		for _, p := range pg {
			if math.Abs(l.side(p)) < 1e-6 {
				n++
			}
		}
		return n
	}
	if onLine(pos) < 2 || onLine(neg) < 2 {
		t.Errorf("halves share too few crease points: %d and %d", onLine(pos), onLine(neg))
	}
}

func TestFoldUnion_ConvexAndShared(t *testing.T) {
	poly := Rect(100, 100, 600, 600)
	l := line{origin: Pt(400, 400), dir: Pt(0, 1)}
	pos, neg := poly.splitByLine(l)

	// side() is positive left of the line, so neg is the right half; fold
	// it onto the left.
	folded := foldUnion(neg, pos, l)
	if len(folded) < 3 {
		t.Fatalf("union degenerate: %d vertices", len(folded))
	}
	if !folded.IsCCW() {
		t.Error("union is not CCW")
	}
	// Folding the right half of a square onto the left must land inside the
	// left half's bounds.
	min, max := folded.Bounds()
	if min.X < 100-1e-9 || max.X > 400+1e-9 {
		t.Errorf("folded square out of expected bounds: %v..%v", min, max)
	}
}
