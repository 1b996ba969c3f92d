package origami

import "sort"

// Intersection is one crossing of two creases. Weight is the sum of both
// crease weights; Gap is the distance between their creation depths, a proxy
// for how many folds apart the two layers of paper are.
type Intersection struct {
	P      Point
	D1, D2 int
	Gap    int
	Weight float64
}

// FindIntersections tests every crease pair and returns their crossings.
// Parallel and near-parallel pairs are skipped rather than intersected at an
// unstable point. Quadratic in the crease count, which is bounded by
// numFolds.
func FindIntersections(creases []Crease) []Intersection {
	var out []Intersection
	for i := 0; i < len(creases); i++ {
		for j := i + 1; j < len(creases); j++ {
			a, b := creases[i], creases[j]
			p, ok := segmentIntersection(a.P1, a.P2, b.P1, b.P2)
			if !ok {
				continue
			}
			out = append(out, Intersection{
				P:      p,
				D1:     a.Depth,
				D2:     b.Depth,
				Gap:    absInt(a.Depth - b.Depth),
				Weight: a.Weight + b.Weight,
			})
		}
	}
	return out
}

// CellStat is the aggregate of all intersections landing in one grid cell.
type CellStat struct {
	Weight float64
	MaxGap int
	Count  int
}

// Grid is the dense per-cell aggregation of an intersection list, in
// row-major order. Cells outside the margin-inset area are not represented;
// intersections falling outside the grid are discarded.
type Grid struct {
	Cols, Rows int
	CellW      int
	CellH      int
	OriginX    float64
	OriginY    float64
	Cells      []CellStat
}

// Aggregate buckets intersections into cells of dims size over the
// margin-inset area of a width x height canvas. Non-positive dimensions
// yield an empty grid.
func Aggregate(ints []Intersection, dims CellDims, width, height int) *Grid {
	if width <= 0 || height <= 0 || dims.W <= 0 || dims.H <= 0 {
		return &Grid{}
	}
	w := float64(width)
	h := float64(height)
	margin := marginFrac * minFloat(w, h)

	cols := int((w - 2*margin)) / dims.W
	rows := int((h - 2*margin)) / dims.H
	if cols <= 0 || rows <= 0 {
		return &Grid{}
	}

	g := &Grid{
		Cols:    cols,
		Rows:    rows,
		CellW:   dims.W,
		CellH:   dims.H,
		OriginX: margin,
		OriginY: margin,
		Cells:   make([]CellStat, cols*rows),
	}
	for _, in := range ints {
		col, row, ok := g.CellAt(in.P)
		if !ok {
			continue
		}
		c := &g.Cells[row*cols+col]
		c.Weight += in.Weight
		c.Count++
		if in.Gap > c.MaxGap {
			c.MaxGap = in.Gap
		}
	}
	return g
}

// CellAt maps a canvas point to its grid cell; ok is false outside the grid.
func (g *Grid) CellAt(p Point) (col, row int, ok bool) {
	if g.Cols == 0 || g.Rows == 0 {
		return 0, 0, false
	}
	x := p.X - g.OriginX
	y := p.Y - g.OriginY
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x) / g.CellW
	row = int(y) / g.CellH
	if col >= g.Cols || row >= g.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// Cell returns the aggregate for (col,row). Out-of-range lookups return the
// zero stat.
func (g *Grid) Cell(col, row int) CellStat {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return CellStat{}
	}
	return g.Cells[row*g.Cols+col]
}

// MaxGapCell returns the cell with the largest generation gap, the
// renderer's first highlight. Row-major order breaks ties; ok is false when
// no cell has any intersection.
func (g *Grid) MaxGapCell() (col, row int, ok bool) {
	best := -1
	for i, c := range g.Cells {
		if c.Count == 0 {
			continue
		}
		if best < 0 || c.MaxGap > g.Cells[best].MaxGap {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best % g.Cols, best / g.Cols, true
}

// Thresholds quantize aggregated cell weights into the four density levels.
type Thresholds struct {
	T1, T2, T3 float64
	Extreme    float64
}

// Fallback thresholds for an empty weight distribution.
var fallbackThresholds = Thresholds{T1: 1, T2: 2, T3: 3, Extreme: 999}

// thresholdEpsilon forces strict ordering between adjacent thresholds.
const thresholdEpsilon = 1e-6

// Percentile ranks for T1..T3, in tenths of a percent so the rank index
// stays integer math.
var percentileRanks = [3]int{700, 940, 985}

// ComputeThresholds takes the adaptive percentiles of a grid's non-zero
// cell weights: the 70th, 94th and 98.5th percentiles become T1..T3 and
// Extreme sits just above the maximum. Each threshold is forced strictly
// above its predecessor. An empty distribution yields the fixed fallback.
func ComputeThresholds(g *Grid) Thresholds {
	var weights []float64
	for _, c := range g.Cells {
		if c.Weight > 0 {
			weights = append(weights, c.Weight)
		}
	}
	if len(weights) == 0 {
		return fallbackThresholds
	}
	sort.Float64s(weights)

	n := len(weights)
	pick := func(rankTenths int) float64 {
		idx := n * rankTenths / 1000
		if idx >= n {
			idx = n - 1
		}
		return weights[idx]
	}

	t := Thresholds{
		T1:      pick(percentileRanks[0]),
		T2:      pick(percentileRanks[1]),
		T3:      pick(percentileRanks[2]),
		Extreme: weights[n-1] * 1.001,
	}
	if t.T2 <= t.T1 {
		t.T2 = t.T1 + thresholdEpsilon
	}
	if t.T3 <= t.T2 {
		t.T3 = t.T2 + thresholdEpsilon
	}
	if t.Extreme <= t.T3 {
		t.Extreme = t.T3 + thresholdEpsilon
	}
	return t
}

// Level quantizes one cell weight: 0 for empty, then 1..3 against T1/T2.
// T3 and Extreme do not change the level; renderers use them for peak
// marks on top of level 3.
func (t Thresholds) Level(weight float64) int {
	switch {
	case weight == 0:
		return 0
	case weight <= t.T1:
		return 1
	case weight <= t.T2:
		return 2
	default:
		return 3
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
