package origami

// Artwork is everything the engine derives from one seed: the discrete
// traits and palette (the constrained-evaluator surface) plus the concrete
// geometry, density grid and thresholds an unconstrained renderer consumes.
type Artwork struct {
	Seed    int64
	Traits  Traits
	Palette Palette

	Width, Height int

	Creases       []Crease
	Polygon       Polygon
	Intersections []Intersection
	Grid          *Grid
	Thresholds    Thresholds

	// Highlight cells. Ok flags are false when the artwork has no
	// intersections (MaxGap) or no applied fold (LastTarget).
	MaxGapCol, MaxGapRow         int
	MaxGapOk                     bool
	LastTargetCol, LastTargetRow int
	LastTargetOk                 bool
}

// Generate runs the full pipeline for one seed. It never returns an error:
// every degenerate input produces a defined empty value instead (see
// Simulate, Aggregate and ComputeThresholds). Concurrent Generate calls for
// different seeds share nothing but the immutable reference table.
func Generate(seed int64, opts ...Option) *Artwork {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Artwork{
		Seed:    seed,
		Traits:  DeriveTraits(seed),
		Palette: GeneratePalette(seed, cfg.table),
		Width:   cfg.width,
		Height:  cfg.height,
	}

	folds := cfg.folds
	if folds < 0 {
		folds = a.Traits.MaxFolds
	}

	sim := Simulate(seed, a.Traits, folds, cfg.width, cfg.height)
	a.Creases = sim.Creases
	a.Polygon = sim.Polygon

	a.Intersections = FindIntersections(a.Creases)
	a.Grid = Aggregate(a.Intersections, a.Traits.CellDims, cfg.width, cfg.height)
	a.Thresholds = ComputeThresholds(a.Grid)

	a.MaxGapCol, a.MaxGapRow, a.MaxGapOk = a.Grid.MaxGapCell()
	if sim.HasTarget {
		a.LastTargetCol, a.LastTargetRow, a.LastTargetOk = a.Grid.CellAt(sim.LastTarget)
	}

	Logger().Debug("artwork generated",
		"seed", seed,
		"strategy", a.Traits.FoldStrategy.Kind.String(),
		"creases", len(a.Creases),
		"intersections", len(a.Intersections),
		"applied", sim.Applied,
		"skipped", sim.Skipped,
	)
	return a
}

// Level returns the quantized density level of a grid cell after the
// artwork's render mode reinterprets the base level.
func (a *Artwork) Level(col, row int) int {
	return OverrideLevel(a.Traits.RenderMode, a.Thresholds.Level(a.Grid.Cell(col, row).Weight))
}

// OverrideLevel reinterprets a base density level for a render mode. The
// thresholds behind the base level are identical across modes; a mode is
// purely a relabeling layered on top.
func OverrideLevel(mode RenderMode, level int) int {
	switch mode {
	case ModeBinary:
		if level > 0 {
			return 3
		}
		return 0
	case ModeInverted:
		if level > 0 {
			return 4 - level
		}
		return 0
	case ModeSparse:
		if level > 0 {
			return level - 1
		}
		return 0
	case ModeDense:
		if level > 0 && level < 3 {
			return level + 1
		}
		return level
	default:
		return level
	}
}
