package origami

// Palette is the three-color output of the palette engine plus the archetype
// label that produced it. In every non-glitch palette BG and Text pass the
// 4.5:1 contrast floor; glitch archetypes deliberately do not.
type Palette struct {
	BG       ColorEntry
	Text     ColorEntry
	Accent   ColorEntry
	Strategy string
}

// Palette draw-order constants. The glitch roll is first and the archetype
// label is fully decided within the first four draws, so a constrained
// evaluator can stop there; only the concrete color picks that follow need
// the reference table.
const (
	glitchPerMille        = 30 // 3%
	destabilizePercent    = 20
	minContrast           = 4.5
	glitchKindCount       = 5
	destabilizeLumaWindow = 12
)

// glitchPalettes are the five intentionally degenerate palettes. They bypass
// the archetype machinery entirely; their entries are classified on the fly
// and are mostly not reference-table members.
var glitchPalettes = [glitchKindCount]struct {
	name             string
	bg, text, accent string
}{
	{"washed-out", "#cccccc", "#dddddd", "#c0c0c0"},
	{"acid", "#ccff00", "#99ff33", "#ffff66"},
	{"void", "#000000", "#111111", "#0a0a14"},
	{"bleach", "#ffffff", "#f2f2f2", "#e8e8ff"},
	{"corrupt", "#ff00ff", "#00ffff", "#ffff00"},
}

// Archetype identifiers for the ground-value and transformation rolls.
type groundValue uint8

const (
	groundLight groundValue = iota
	groundDark
	groundMid
)

type archetype uint8

const (
	archValue archetype = iota
	archTemperature
	archSaturation
	archComplement
	archNeighbor
)

func (a archetype) String() string {
	switch a {
	case archTemperature:
		return "temperature"
	case archSaturation:
		return "saturation"
	case archComplement:
		return "complement"
	case archNeighbor:
		return "neighbor"
	default:
		return "value"
	}
}

// GeneratePalette derives the three-color palette of a seed against a
// reference table. It never fails: every candidate pool widens until a color
// exists, and the ultimate text fallback is the single highest-contrast
// entry in the table.
//
// Draw order on the palette channel is fixed forever:
// glitch roll, [glitch kind] | mother pick, ground roll, archetype roll,
// background pick, text pick, destabilize roll, [accent pick].
func GeneratePalette(seed int64, table *Table) Palette {
	r := NewChannel(seed, ChannelPalette)

	if r.Roll1000() < glitchPerMille {
		g := glitchPalettes[r.Intn(glitchKindCount)]
		return Palette{
			BG:       entryFromRGB(hexRGB(g.bg)),
			Text:     entryFromRGB(hexRGB(g.text)),
			Accent:   entryFromRGB(hexRGB(g.accent)),
			Strategy: g.name,
		}
	}

	mother := table.Entries[table.Chromatic(r.Intn(ChromaticCount))]

	var ground groundValue
	switch roll := r.Roll(); {
	case roll < 40:
		ground = groundLight
	case roll < 80:
		ground = groundDark
	default:
		ground = groundMid
	}

	var arch archetype
	switch roll := r.Roll(); {
	case roll < 30:
		arch = archValue
	case roll < 50:
		arch = archTemperature
	case roll < 65:
		arch = archSaturation
	case roll < 80:
		arch = archComplement
	default:
		arch = archNeighbor
	}

	bg := table.Entries[pickBackground(r, table, ground, mother.Temp)]
	text := table.Entries[pickText(r, table, mother, arch, bg)]

	accent := text
	if r.Roll() < destabilizePercent {
		if idx, ok := pickDestabilizer(r, table, bg, text); ok {
			accent = table.Entries[idx]
		}
	}

	return Palette{BG: bg, Text: text, Accent: accent, Strategy: arch.String()}
}

// entryFromRGB classifies an out-of-table color the same way table entries
// are classified, so glitch palettes carry coherent luma and temperature.
func entryFromRGB(r, g, b uint8) ColorEntry {
	return classify(r, g, b)
}

// hexRGB parses "#rrggbb". Inputs are compile-time constants; malformed hex
// yields black rather than an error path nobody can hit.
func hexRGB(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	nib := func(c byte) uint8 {
		switch {
		case c >= '0' && c <= '9':
			return c - '0'
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10
		}
		return 0
	}
	return nib(hex[1])<<4 | nib(hex[2]),
		nib(hex[3])<<4 | nib(hex[4]),
		nib(hex[5])<<4 | nib(hex[6])
}

// groundBand returns the inclusive luma band of a ground choice, optionally
// widened.
func groundBand(g groundValue, widen int) (lo, hi int) {
	switch g {
	case groundLight:
		return 70 - widen, 100
	case groundDark:
		return 0, 30 + widen
	default:
		return 35 - widen, 65 + widen
	}
}

// pickBackground selects the background entry: ground luma band filtered by
// the mother's temperature family, widening the pool until it is non-empty.
// The whole table is the final pool, so a pick always exists.
func pickBackground(r *Rand, table *Table, g groundValue, motherTemp Temperature) int {
	tempOK := func(t Temperature) bool {
		return t == motherTemp || t == Neutral
	}
	anyTemp := func(Temperature) bool { return true }

	for _, attempt := range []struct {
		widen  int
		tempOK func(Temperature) bool
	}{
		{0, tempOK},
		{0, anyTemp},
		{10, anyTemp},
		{20, anyTemp},
	} {
		lo, hi := groundBand(g, attempt.widen)
		pool := poolByLuma(table, lo, hi, attempt.tempOK)
		if len(pool) > 0 {
			return pool[r.Intn(len(pool))]
		}
	}
	return r.Intn(TableSize)
}

// poolByLuma collects indices of entries within a luma band that pass a
// temperature predicate, in table order.
func poolByLuma(table *Table, lo, hi int, tempOK func(Temperature) bool) []int {
	var pool []int
	for i, e := range table.Entries {
		if e.Luma >= lo && e.Luma <= hi && tempOK(e.Temp) {
			pool = append(pool, i)
		}
	}
	return pool
}

// pickText applies the chosen transformation to the mother color and filters
// the candidates for contrast against the background. Fallback chain:
// value-transform pool, then any contrasting entry, then the single entry
// maximizing contrast (which always exists).
func pickText(r *Rand, table *Table, mother ColorEntry, arch archetype, bg ColorEntry) int {
	pool := filterContrast(table, transformPool(table, mother, arch), bg)
	if len(pool) == 0 && arch != archValue {
		pool = filterContrast(table, transformPool(table, mother, archValue), bg)
	}
	if len(pool) == 0 {
		pool = filterContrast(table, allIndices(table), bg)
	}
	if len(pool) > 0 {
		return pool[r.Intn(len(pool))]
	}

	// Nothing clears 4.5:1 (possible only against mid-luma backgrounds on a
	// reduced test table). Take the best available.
	best, bestRatio := 0, 0.0
	for i, e := range table.Entries {
		if ratio := contrastRatio(e.Luma, bg.Luma); ratio > bestRatio {
			best, bestRatio = i, ratio
		}
	}
	r.Next() // keep the draw position fixed across fallback depths
	return best
}

func allIndices(table *Table) []int {
	out := make([]int, len(table.Entries))
	for i := range out {
		out[i] = i
	}
	return out
}

func filterContrast(table *Table, pool []int, bg ColorEntry) []int {
	var out []int
	for _, i := range pool {
		if contrastRatio(table.Entries[i].Luma, bg.Luma) >= minContrast {
			out = append(out, i)
		}
	}
	return out
}

// transformPool returns the candidate indices of one relational transform of
// the mother color. Each rule falls back to a wider relative when its strict
// form is empty.
func transformPool(table *Table, mother ColorEntry, arch archetype) []int {
	var pool []int
	switch arch {
	case archValue:
		// Same temperature family, far away in value.
		for i, e := range table.Entries {
			if e.Temp == mother.Temp && absInt(e.Luma-mother.Luma) >= 40 {
				pool = append(pool, i)
			}
		}

	case archTemperature:
		// Opposite warmth, similar saturation presence.
		for i, e := range table.Entries {
			if oppositeTemp(e.Temp, mother.Temp) && satDistance(e.Sat, mother.Sat) <= 1 {
				pool = append(pool, i)
			}
		}

	case archSaturation:
		// Same warmth, strongly different saturation tier.
		for i, e := range table.Entries {
			if e.Temp == mother.Temp && satDistance(e.Sat, mother.Sat) >= 2 {
				pool = append(pool, i)
			}
		}

	case archComplement:
		if mother.Category == CategoryWebsafe {
			cr, cg, cb := 5-mother.Ri, 5-mother.Gi, 5-mother.Bi
			for i, e := range table.Entries {
				if e.Category != CategoryWebsafe {
					continue
				}
				if chebyshev3(e.Ri-cr, e.Gi-cg, e.Bi-cb) <= 1 {
					pool = append(pool, i)
				}
			}
		}
		if len(pool) == 0 {
			for i, e := range table.Entries {
				if oppositeTemp(e.Temp, mother.Temp) {
					pool = append(pool, i)
				}
			}
		}

	case archNeighbor:
		if mother.Category == CategoryWebsafe {
			for i, e := range table.Entries {
				if e.Category != CategoryWebsafe {
					continue
				}
				if chebyshev3(e.Ri-mother.Ri, e.Gi-mother.Gi, e.Bi-mother.Bi) == 1 {
					pool = append(pool, i)
				}
			}
		}
		if len(pool) == 0 {
			for i, e := range table.Entries {
				if e.Hex != mother.Hex && absInt(e.Luma-mother.Luma) <= 20 {
					pool = append(pool, i)
				}
			}
		}
	}
	return pool
}

// pickDestabilizer looks for an accent that sits between background and text
// in luma, close enough to both to read as either. An empty pool keeps the
// accent equal to the text color.
func pickDestabilizer(r *Rand, table *Table, bg, text ColorEntry) (int, bool) {
	mid := (bg.Luma + text.Luma) / 2
	var pool []int
	for i, e := range table.Entries {
		if e.Hex == bg.Hex || e.Hex == text.Hex {
			continue
		}
		if absInt(e.Luma-mid) <= destabilizeLumaWindow {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return 0, false
	}
	return pool[r.Intn(len(pool))], true
}

// oppositeTemp reports whether a is the thermal opposite of b. A neutral
// mother opposes anything carrying temperature.
func oppositeTemp(a, b Temperature) bool {
	switch b {
	case Warm:
		return a == Cool
	case Cool:
		return a == Warm
	default:
		return a == Warm || a == Cool
	}
}

func satDistance(a, b SatTier) int {
	return absInt(int(a) - int(b))
}

func chebyshev3(a, b, c int) int {
	return maxInt(absInt(a), maxInt(absInt(b), absInt(c)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
