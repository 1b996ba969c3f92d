package origami

import (
	"fmt"
	"sync"
)

// Temperature is the perceptual warmth class of a table entry.
type Temperature uint8

const (
	Neutral Temperature = iota
	Warm
	Cool
)

// String returns the metadata label for the temperature.
func (t Temperature) String() string {
	switch t {
	case Warm:
		return "warm"
	case Cool:
		return "cool"
	default:
		return "neutral"
	}
}

// SatTier buckets entries by channel spread, from achromatic to saturated.
type SatTier uint8

const (
	SatGray SatTier = iota
	SatMuted
	SatChromatic
	SatVivid
)

// String returns the metadata label for the saturation tier.
func (s SatTier) String() string {
	switch s {
	case SatMuted:
		return "muted"
	case SatChromatic:
		return "chromatic"
	case SatVivid:
		return "vivid"
	default:
		return "gray"
	}
}

// Category records which sub-table an entry came from.
type Category uint8

const (
	CategoryWebsafe Category = iota
	CategoryCGA
	CategoryGrayscale
)

// ColorEntry is one immutable row of the reference table.
type ColorEntry struct {
	Hex  string
	R    uint8
	G    uint8
	B    uint8
	Luma int // 0..100, BT.709-weighted, integer arithmetic
	Temp Temperature
	Sat  SatTier

	// Cube position within the 6x6x6 web-safe lattice.
	// Valid only when Category == CategoryWebsafe.
	Ri, Gi, Bi int

	Category Category
}

// Table is the 256-entry reference color table: the 216-color web-safe cube,
// the 16 CGA colors and a 24-step gray ramp. It is built once and never
// mutated; every component that needs color state receives a *Table rather
// than reaching for a package global, so tests can construct fresh instances.
type Table struct {
	Entries []ColorEntry

	// chromatic holds the indices of all entries whose Sat tier is not
	// gray, in table order. The palette engine draws mother colors from
	// this list, which is how "bias against gray" is implemented: grays
	// simply are not in the pool.
	chromatic []int
}

// Table layout constants. These are wire-level: entry order and counts are
// fixed forever because constrained evaluators hardcode them.
const (
	WebsafeCount   = 216
	CGACount       = 16
	GrayscaleCount = 24
	TableSize      = WebsafeCount + CGACount + GrayscaleCount

	// ChromaticCount is the number of non-gray entries: 216 web-safe minus
	// the 6 cube diagonals, 16 CGA minus its 4 grays, and none of the ramp.
	ChromaticCount = TableSize - 6 - 4 - GrayscaleCount
)

// websafeLevels are the six channel values of the web-safe cube.
var websafeLevels = [6]uint8{0, 51, 102, 153, 204, 255}

// cgaColors is the classic 16-color CGA palette, including the brown
// half-intensity special case.
var cgaColors = [CGACount][3]uint8{
	{0x00, 0x00, 0x00}, {0x00, 0x00, 0xaa}, {0x00, 0xaa, 0x00}, {0x00, 0xaa, 0xaa},
	{0xaa, 0x00, 0x00}, {0xaa, 0x00, 0xaa}, {0xaa, 0x55, 0x00}, {0xaa, 0xaa, 0xaa},
	{0x55, 0x55, 0x55}, {0x55, 0x55, 0xff}, {0x55, 0xff, 0x55}, {0x55, 0xff, 0xff},
	{0xff, 0x55, 0x55}, {0xff, 0x55, 0xff}, {0xff, 0xff, 0x55}, {0xff, 0xff, 0xff},
}

// NewTable builds the reference table. Construction is deterministic and
// order-independent of everything else in the engine: entry i is the same in
// every process that will ever run this code.
func NewTable() *Table {
	t := &Table{Entries: make([]ColorEntry, 0, TableSize)}

	for ri := 0; ri < 6; ri++ {
		for gi := 0; gi < 6; gi++ {
			for bi := 0; bi < 6; bi++ {
				e := classify(websafeLevels[ri], websafeLevels[gi], websafeLevels[bi])
				e.Category = CategoryWebsafe
				e.Ri, e.Gi, e.Bi = ri, gi, bi
				t.Entries = append(t.Entries, e)
			}
		}
	}
	for _, c := range cgaColors {
		e := classify(c[0], c[1], c[2])
		e.Category = CategoryCGA
		t.Entries = append(t.Entries, e)
	}
	for i := 0; i < GrayscaleCount; i++ {
		v := uint8(10 + i*10)
		e := classify(v, v, v)
		e.Category = CategoryGrayscale
		t.Entries = append(t.Entries, e)
	}

	t.chromatic = make([]int, 0, ChromaticCount)
	for i, e := range t.Entries {
		if e.Sat != SatGray {
			t.chromatic = append(t.chromatic, i)
		}
	}
	return t
}

var (
	refTableOnce sync.Once
	refTable     *Table
)

// ReferenceTable returns the process-wide shared table, building it on first
// use. The build is idempotent, so racing first calls would only waste work,
// not produce different tables; sync.Once removes even that.
func ReferenceTable() *Table {
	refTableOnce.Do(func() {
		refTable = NewTable()
	})
	return refTable
}

// classify fills in the derived fields for an RGB triple.
func classify(r, g, b uint8) ColorEntry {
	e := ColorEntry{
		Hex:  fmt.Sprintf("#%02x%02x%02x", r, g, b),
		R:    r,
		G:    g,
		B:    b,
		Luma: bt709Luma(r, g, b),
	}

	max := maxU8(r, maxU8(g, b))
	min := minU8(r, minU8(g, b))
	spread := int(max) - int(min)
	switch {
	case spread < 16:
		e.Sat = SatGray
	case spread < 80:
		e.Sat = SatMuted
	case spread < 160:
		e.Sat = SatChromatic
	default:
		e.Sat = SatVivid
	}

	// Grays carry no temperature. Otherwise red-vs-blue dominance decides,
	// with green-heavy entries leaning cool.
	if e.Sat == SatGray {
		e.Temp = Neutral
	} else {
		ri, bi := int(r), int(b)
		switch {
		case ri > bi+16:
			e.Temp = Warm
		case bi > ri+16:
			e.Temp = Cool
		case int(g) > maxInt(ri, bi)+16:
			e.Temp = Cool
		default:
			e.Temp = Neutral
		}
	}
	return e
}

// bt709Luma maps an RGB triple to 0..100 with the ITU-R BT.709 weights,
// using integer arithmetic so every platform lands on the same value.
func bt709Luma(r, g, b uint8) int {
	return (2126*int(r) + 7152*int(g) + 722*int(b) + 12750) / 25500
}

// Chromatic returns the entry index for the i-th chromatic color. The
// palette engine picks mothers as Chromatic(rand.Intn(ChromaticCount)).
func (t *Table) Chromatic(i int) int {
	return t.chromatic[i]
}

// contrastRatio is the WCAG-style ratio between two luma values, computed on
// 0..1 normalized luminance. Float math here is internal-only: it filters
// candidate colors but never decides a trait label.
func contrastRatio(lumaA, lumaB int) float64 {
	la := float64(lumaA) / 100
	lb := float64(lumaB) / 100
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
