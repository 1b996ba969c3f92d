package origami

import "encoding/json"

// Reference canvas geometry. Cell dimensions are drawn from the divisor
// lattice of the inner area, so these are wire constants like the channel
// offsets: every trait derived from them is pinned to this canvas forever.
const (
	CanvasSize   = 800
	CanvasMargin = 40
	InnerSize    = CanvasSize - 2*CanvasMargin // 720 = 2^4 * 3^2 * 5
)

// RenderMode selects how quantized density levels are reinterpreted by a
// renderer. The core computes the same thresholds for every mode; the mode
// only relabels levels downstream.
type RenderMode uint8

const (
	ModeNormal RenderMode = iota
	ModeBinary
	ModeInverted
	ModeSparse
	ModeDense
)

// String returns the metadata label for the mode.
func (m RenderMode) String() string {
	switch m {
	case ModeBinary:
		return "binary"
	case ModeInverted:
		return "inverted"
	case ModeSparse:
		return "sparse"
	case ModeDense:
		return "dense"
	default:
		return "normal"
	}
}

// DeriveRenderMode rolls the five-way mode split: normal 35%, binary 15%,
// inverted 15%, sparse 15%, dense 20%.
func DeriveRenderMode(seed int64) RenderMode {
	switch roll := NewChannel(seed, ChannelRenderMode).Roll(); {
	case roll < 35:
		return ModeNormal
	case roll < 50:
		return ModeBinary
	case roll < 65:
		return ModeInverted
	case roll < 80:
		return ModeSparse
	default:
		return ModeDense
	}
}

// FoldKind is the categorical part of a fold strategy.
type FoldKind uint8

const (
	FoldHorizontal FoldKind = iota
	FoldVertical
	FoldDiagonal
	FoldRadial
	FoldGrid
	FoldClustered
	FoldRandom
)

// String returns the metadata label for the kind.
func (k FoldKind) String() string {
	switch k {
	case FoldHorizontal:
		return "horizontal"
	case FoldVertical:
		return "vertical"
	case FoldDiagonal:
		return "diagonal"
	case FoldRadial:
		return "radial"
	case FoldGrid:
		return "grid"
	case FoldClustered:
		return "clustered"
	default:
		return "random"
	}
}

// FoldStrategy is a categorical bias on fold target selection plus the
// parameters specific to the chosen kind. The parameter draws happen on the
// same channel immediately after the categorical roll, with a fixed draw
// count per kind, so the label itself is always decided by the first draw.
type FoldStrategy struct {
	Kind FoldKind

	// JitterFrac perturbs axis-aligned and diagonal folds off their axis.
	// 0..0.25, meaningful for horizontal, vertical and diagonal kinds.
	JitterFrac float64

	// AntiDiagonal selects the secondary diagonal for FoldDiagonal.
	AntiDiagonal bool

	// Focal is the attraction point for FoldRadial, in canvas coordinates.
	Focal Point

	// Spacing is the snap lattice pitch for FoldGrid, in pixels.
	Spacing float64

	// Center and Spread shape the source-vertex bias for FoldClustered.
	Center Point
	Spread float64
}

// DeriveFoldStrategy rolls the seven-way strategy split (horizontal 16%,
// vertical 16%, diagonal 12%, radial 12%, grid 12%, clustered 12%,
// random 20%) and then draws the kind's parameters from the same channel.
func DeriveFoldStrategy(seed int64) FoldStrategy {
	r := NewChannel(seed, ChannelFoldStrategy)
	var s FoldStrategy
	switch roll := r.Roll(); {
	case roll < 16:
		s.Kind = FoldHorizontal
	case roll < 32:
		s.Kind = FoldVertical
	case roll < 44:
		s.Kind = FoldDiagonal
	case roll < 56:
		s.Kind = FoldRadial
	case roll < 68:
		s.Kind = FoldGrid
	case roll < 80:
		s.Kind = FoldClustered
	default:
		s.Kind = FoldRandom
	}

	switch s.Kind {
	case FoldHorizontal, FoldVertical:
		s.JitterFrac = float64(r.Roll()) / 400
	case FoldDiagonal:
		s.AntiDiagonal = r.Roll() < 50
		s.JitterFrac = float64(r.Roll()) / 400
	case FoldRadial:
		s.Focal = innerFraction(r.Roll(), r.Roll())
	case FoldGrid:
		s.Spacing = float64(40 + r.Roll()*140/100)
	case FoldClustered:
		s.Center = innerFraction(r.Roll(), r.Roll())
		s.Spread = float64(60 + r.Roll()*180/100)
	}
	return s
}

// innerFraction maps two percentage rolls onto a point inside the inner
// canvas rectangle.
func innerFraction(px, py int) Point {
	return Pt(
		CanvasMargin+float64(px)*InnerSize/100,
		CanvasMargin+float64(py)*InnerSize/100,
	)
}

// WeightStyle names the crease-weight sampling interval.
type WeightStyle uint8

const (
	WeightLight WeightStyle = iota
	WeightHeavy
	WeightHighContrast
	WeightBalanced
)

// String returns the metadata label for the style.
func (s WeightStyle) String() string {
	switch s {
	case WeightLight:
		return "light"
	case WeightHeavy:
		return "heavy"
	case WeightHighContrast:
		return "high-contrast"
	default:
		return "balanced"
	}
}

// WeightRange is the interval per-crease weights are sampled from.
type WeightRange struct {
	Style WeightStyle
	Min   float64
	Max   float64
}

// DeriveWeightRange rolls the four-way weight split, 25% each.
func DeriveWeightRange(seed int64) WeightRange {
	switch roll := NewChannel(seed, ChannelWeightRange).Roll(); {
	case roll < 25:
		return WeightRange{Style: WeightLight, Min: 0.5, Max: 2.0}
	case roll < 50:
		return WeightRange{Style: WeightHeavy, Min: 2.0, Max: 6.0}
	case roll < 75:
		return WeightRange{Style: WeightHighContrast, Min: 0.2, Max: 8.0}
	default:
		return WeightRange{Style: WeightBalanced, Min: 1.0, Max: 4.0}
	}
}

// DeriveMaxFolds returns the breathing-cycle period in [4,69].
func DeriveMaxFolds(seed int64) int {
	return 4 + NewChannel(seed, ChannelMaxFolds).Intn(66)
}

// CellDims is the grid cell size in pixels. Both axes divide the inner
// canvas exactly.
type CellDims struct {
	W, H int
}

// Cell-dimension candidate classes, by cell area.
const (
	smallCellMaxArea = 1200
	largeCellMinArea = 8100
)

// cellCandidates is the fixed, ordered list of (w,h) pairs with both axes
// dividing the inner area, each between 8 and 240, and aspect ratio at most
// 3:1 either way. Order is w-major ascending; constrained evaluators
// regenerate the identical list from the same rules.
var cellCandidates = buildCellCandidates()

// cellSmall and cellLarge are index lists into cellCandidates.
var cellSmall, cellLarge = classifyCellCandidates()

func buildCellCandidates() []CellDims {
	var divs []int
	for d := 8; d <= 240; d++ {
		if InnerSize%d == 0 {
			divs = append(divs, d)
		}
	}
	var out []CellDims
	for _, w := range divs {
		for _, h := range divs {
			if w <= 3*h && h <= 3*w {
				out = append(out, CellDims{W: w, H: h})
			}
		}
	}
	return out
}

func classifyCellCandidates() (small, large []int) {
	for i, c := range cellCandidates {
		area := c.W * c.H
		if area <= smallCellMaxArea {
			small = append(small, i)
		}
		if area >= largeCellMinArea {
			large = append(large, i)
		}
	}
	return small, large
}

// DeriveCellDims picks a size class (25% small, 50% mixed, 25% large) and
// then a candidate within it.
func DeriveCellDims(seed int64) CellDims {
	r := NewChannel(seed, ChannelCellDims)
	switch roll := r.Roll(); {
	case roll < 25:
		return cellCandidates[cellSmall[r.Intn(len(cellSmall))]]
	case roll < 75:
		return cellCandidates[r.Intn(len(cellCandidates))]
	default:
		return cellCandidates[cellLarge[r.Intn(len(cellLarge))]]
	}
}

// DeriveMultiColor rolls the 25% multi-color flag.
func DeriveMultiColor(seed int64) bool {
	return NewChannel(seed, ChannelMultiColor).Roll() < 25
}

// PaperKind is the simulated paper texture, used by renderers to scale
// grain amplitude. It is a label trait and is always derived, whether or
// not the grain flag is set.
type PaperKind uint8

const (
	PaperSmooth PaperKind = iota
	PaperVellum
	PaperRough
)

// String returns the metadata label for the paper kind.
func (p PaperKind) String() string {
	switch p {
	case PaperVellum:
		return "vellum"
	case PaperRough:
		return "rough"
	default:
		return "smooth"
	}
}

// Rarity flag thresholds, in per-mille.
const (
	showCreasesPerMille = 80  // 8%
	hitCountsPerMille   = 40  // 4%
	grainPerMille       = 400 // 40%
	monochromePerMille  = 8   // 0.8%
)

// DeriveShowCreases rolls the 8% crease-line overlay flag.
func DeriveShowCreases(seed int64) bool {
	return NewChannel(seed, ChannelShowCreases).Roll1000() < showCreasesPerMille
}

// DeriveHitCounts rolls the 4% hit-count overlay flag.
func DeriveHitCounts(seed int64) bool {
	return NewChannel(seed, ChannelHitCounts).Roll1000() < hitCountsPerMille
}

// DeriveGrain rolls the 40% paper-grain flag and the paper kind. The kind
// draw always happens, so the second draw position on this channel is fixed
// whether or not grain is enabled.
func DeriveGrain(seed int64) (enabled bool, kind PaperKind) {
	r := NewChannel(seed, ChannelGrain)
	enabled = r.Roll1000() < grainPerMille
	switch roll := r.Roll(); {
	case roll < 60:
		kind = PaperSmooth
	case roll < 85:
		kind = PaperVellum
	default:
		kind = PaperRough
	}
	return enabled, kind
}

// DeriveMonochrome rolls the 0.8% monochrome flag.
func DeriveMonochrome(seed int64) bool {
	return NewChannel(seed, ChannelMonochrome).Roll1000() < monochromePerMille
}

// Traits is the full discrete trait set of one seed. Everything in it is
// integer-derived from channel generators and reproducible by an evaluator
// that can only afford the LCG, never the geometry.
type Traits struct {
	Seed         int64
	RenderMode   RenderMode
	FoldStrategy FoldStrategy
	WeightRange  WeightRange
	MaxFolds     int
	CellDims     CellDims
	MultiColor   bool
	ShowCreases  bool
	HitCounts    bool
	Grain        bool
	PaperKind    PaperKind
	Monochrome   bool
}

// DeriveTraits derives every trait of a seed. It is the constrained
// evaluator entry point: no geometry is simulated and no float enters any
// label decision.
func DeriveTraits(seed int64) Traits {
	grain, kind := DeriveGrain(seed)
	return Traits{
		Seed:         seed,
		RenderMode:   DeriveRenderMode(seed),
		FoldStrategy: DeriveFoldStrategy(seed),
		WeightRange:  DeriveWeightRange(seed),
		MaxFolds:     DeriveMaxFolds(seed),
		CellDims:     DeriveCellDims(seed),
		MultiColor:   DeriveMultiColor(seed),
		ShowCreases:  DeriveShowCreases(seed),
		HitCounts:    DeriveHitCounts(seed),
		Grain:        grain,
		PaperKind:    kind,
		Monochrome:   DeriveMonochrome(seed),
	}
}

// Label is one name/value metadata pair.
type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Labels returns the trait metadata in a fixed order.
func (t Traits) Labels() []Label {
	b := func(v bool) string {
		if v {
			return "yes"
		}
		return "no"
	}
	return []Label{
		{"Fold Strategy", t.FoldStrategy.Kind.String()},
		{"Render Mode", t.RenderMode.String()},
		{"Weight Range", t.WeightRange.Style.String()},
		{"Paper", t.PaperKind.String()},
		{"Multi Color", b(t.MultiColor)},
		{"Crease Lines", b(t.ShowCreases)},
		{"Hit Counts", b(t.HitCounts)},
		{"Paper Grain", b(t.Grain)},
		{"Monochrome", b(t.Monochrome)},
	}
}

// traitsJSON is the stable wire form of Traits.
type traitsJSON struct {
	Seed         int64  `json:"seed"`
	FoldStrategy string `json:"foldStrategy"`
	RenderMode   string `json:"renderMode"`
	WeightRange  string `json:"weightRange"`
	MaxFolds     int    `json:"maxFolds"`
	CellWidth    int    `json:"cellWidth"`
	CellHeight   int    `json:"cellHeight"`
	MultiColor   bool   `json:"multiColor"`
	ShowCreases  bool   `json:"showCreases"`
	HitCounts    bool   `json:"hitCounts"`
	Grain        bool   `json:"grain"`
	Paper        string `json:"paper"`
	Monochrome   bool   `json:"monochrome"`
}

// MarshalJSON emits the stable string-labeled form used by the CLI's
// -traits mode.
func (t Traits) MarshalJSON() ([]byte, error) {
	return json.Marshal(traitsJSON{
		Seed:         t.Seed,
		FoldStrategy: t.FoldStrategy.Kind.String(),
		RenderMode:   t.RenderMode.String(),
		WeightRange:  t.WeightRange.Style.String(),
		MaxFolds:     t.MaxFolds,
		CellWidth:    t.CellDims.W,
		CellHeight:   t.CellDims.H,
		MultiColor:   t.MultiColor,
		ShowCreases:  t.ShowCreases,
		HitCounts:    t.HitCounts,
		Grain:        t.Grain,
		Paper:        t.PaperKind.String(),
		Monochrome:   t.Monochrome,
	})
}
