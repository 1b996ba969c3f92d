package origami

import "math"

// Crease is one recorded fold line, clipped to the canvas. Depth is the fold
// iteration that created it and only ever increases across the list. Weight
// decays at breathing-cycle boundaries by the crease's own Reduction factor,
// fixed at creation for the life of the artwork.
type Crease struct {
	P1, P2    Point
	Depth     int
	Weight    float64
	CyclePos  int
	Reduction float64
}

// FoldResult is the unconstrained-evaluator output of the simulation.
type FoldResult struct {
	Creases []Crease

	// Polygon is the final silhouette, CCW with at least 3 vertices
	// whenever any fold applied; the untouched start rectangle otherwise.
	Polygon Polygon

	// LastTarget is the target point of the last applied fold, the
	// renderer's second highlight. HasTarget is false when no fold applied.
	LastTarget Point
	HasTarget  bool

	// Applied and Skipped count fold attempts; their sum is numFolds.
	Applied int
	Skipped int
}

// tooCloseFrac rejects source/target pairs closer than this fraction of the
// bounding-box minor axis: a crease through two nearly coincident points has
// no stable direction.
const tooCloseFrac = 0.05

// renormEvery is the applied-fold period of the drift-control renormalize.
const renormEvery = 5

// marginFrac scales the reference margin (40 on the 800x800 canvas) to
// arbitrary output dimensions.
const marginFrac = float64(CanvasMargin) / CanvasSize

// Breathing-cycle multiplier range. Sampled once per cycle position.
const (
	reductionFloor = 0.001
	reductionSpan  = 0.259
)

// Simulate folds the starting rectangle numFolds times and returns the
// crease list and final silhouette. It never returns an error: non-positive
// dimensions yield an empty result, non-positive numFolds yields the
// untouched start rectangle, and every degenerate geometry case inside the
// loop perturbs the working generator and moves on to the next fold index.
func Simulate(seed int64, t Traits, numFolds, width, height int) FoldResult {
	if width <= 0 || height <= 0 {
		return FoldResult{}
	}

	w := float64(width)
	h := float64(height)
	margin := marginFrac * math.Min(w, h)
	poly := Rect(margin, margin, w-2*margin, h-2*margin)

	if numFolds <= 0 {
		return FoldResult{Polygon: poly}
	}

	r := NewChannel(seed, ChannelGeometry)
	reductions := breathingTable(seed, t.MaxFolds)
	diag := math.Hypot(w, h)

	res := FoldResult{
		Creases: make([]Crease, 0, numFolds),
		Polygon: poly,
	}

	log := Logger()
	for i := 0; i < numFolds; i++ {
		// Exhale: flatten the paper at each cycle boundary after the first.
		if i > 0 && i%t.MaxFolds == 0 {
			for k := range res.Creases {
				res.Creases[k].Weight *= res.Creases[k].Reduction
			}
		}

		source := pickSource(r, res.Polygon, t.FoldStrategy)
		target := pickTarget(r, res.Polygon, source, t.FoldStrategy)

		min, max := res.Polygon.Bounds()
		minor := math.Min(max.X-min.X, max.Y-min.Y)
		if source.Distance(target) < tooCloseFrac*minor {
			r.Perturb("fold:too-close")
			res.Skipped++
			continue
		}

		// Crease: through the midpoint, perpendicular to source->target,
		// with a slow sinusoidal drift so long runs do not settle into a
		// static lattice.
		mid := source.Mid(target)
		amp := math.Min(12, float64(i)*0.35)
		mid = mid.Add(Pt(amp*math.Sin(float64(i)*0.7), amp*math.Cos(float64(i)*1.1)))
		dir := target.Sub(source).Perp().Normalize()
		crease := line{origin: mid, dir: dir}

		pos, neg := res.Polygon.splitByLine(crease)
		if len(pos) < 3 || len(neg) < 3 {
			r.Perturb("fold:degenerate-split")
			res.Skipped++
			log.Debug("fold skipped: degenerate split", "fold", i)
			continue
		}

		moving, fixed := pos, neg
		if crease.side(source) < 0 {
			moving, fixed = neg, pos
		}
		folded := foldUnion(moving, fixed, crease)
		if len(folded) < 3 {
			r.Perturb("fold:degenerate-union")
			res.Skipped++
			log.Debug("fold skipped: degenerate union", "fold", i)
			continue
		}
		res.Polygon = folded

		a := mid.Sub(dir.Mul(4 * diag))
		b := mid.Add(dir.Mul(4 * diag))
		if ca, cb, ok := clipSegmentToRect(a, b, 0, 0, w, h); ok {
			cyclePos := i % t.MaxFolds
			res.Creases = append(res.Creases, Crease{
				P1:        ca,
				P2:        cb,
				Depth:     i,
				Weight:    t.WeightRange.Min + r.Float()*(t.WeightRange.Max-t.WeightRange.Min),
				CyclePos:  cyclePos,
				Reduction: reductions[cyclePos],
			})
		}
		res.LastTarget = target
		res.HasTarget = true
		res.Applied++

		if res.Applied%renormEvery == 0 {
			res.Polygon = res.Polygon.fitInto(margin, margin, w-2*margin, h-2*margin, 1)
		}
	}
	return res
}

// breathingTable samples the per-cycle-position reduction multipliers. One
// table per artwork: a crease at cycle position k always decays by the same
// factor, every cycle.
func breathingTable(seed int64, maxFolds int) []float64 {
	r := NewChannel(seed, ChannelBreathing)
	out := make([]float64, maxFolds)
	for k := range out {
		out[k] = reductionFloor + r.Float()*reductionSpan
	}
	return out
}

// pickSource picks the fold's source vertex. The clustered strategy draws
// two candidates and keeps the one nearer the cluster center; everything
// else is a uniform pick.
func pickSource(r *Rand, poly Polygon, s FoldStrategy) Point {
	a := poly[r.Intn(len(poly))]
	if s.Kind != FoldClustered {
		return a
	}
	b := poly[r.Intn(len(poly))]
	if b.Distance(s.Center) < a.Distance(s.Center) {
		return b
	}
	return a
}

// pickTarget picks the fold's target: half the time another vertex, half the
// time a point along an edge, then reshaped by the strategy.
func pickTarget(r *Rand, poly Polygon, source Point, s FoldStrategy) Point {
	n := len(poly)
	var target Point
	if r.Roll() < 50 {
		target = poly[r.Intn(n)]
	} else {
		i := r.Intn(n)
		t := 0.15 + r.Float()*0.70
		target = poly[i].Lerp(poly[(i+1)%n], t)
	}

	switch s.Kind {
	case FoldHorizontal:
		// Collapse the vertical delta: creases end up near-vertical, so
		// the paper folds across the horizontal axis.
		target.Y = source.Y + (target.Y-source.Y)*s.JitterFrac
	case FoldVertical:
		target.X = source.X + (target.X-source.X)*s.JitterFrac
	case FoldDiagonal:
		d := target.Sub(source)
		axis := Pt(1, 1).Normalize()
		if s.AntiDiagonal {
			axis = Pt(1, -1).Normalize()
		}
		along := axis.Mul(d.Dot(axis))
		off := d.Sub(along)
		target = source.Add(along).Add(off.Mul(s.JitterFrac))
	case FoldRadial:
		target = target.Lerp(s.Focal, 0.6)
	case FoldGrid:
		target = Pt(
			math.Round(target.X/s.Spacing)*s.Spacing,
			math.Round(target.Y/s.Spacing)*s.Spacing,
		)
	}
	return target
}

// foldUnion reflects the moving half across the crease and joins it with the
// fixed half.
//
// Precondition: both halves are convex and share at least one point on the
// crease line (splitByLine emits crossing points into both outputs, and
// reflection keeps on-crease points fixed). Under that precondition the
// union of the reflected half and the fixed half is convex, so the convex
// hull of their combined vertices IS the union rather than an
// overapproximation.
func foldUnion(moving, fixed Polygon, crease line) Polygon {
	combined := make([]Point, 0, len(moving)+len(fixed))
	for _, p := range moving {
		combined = append(combined, p.ReflectAcross(crease.origin, crease.dir))
	}
	combined = append(combined, fixed...)
	return convexHull(combined).EnsureCCW()
}
