package origami

import "hash/fnv"

// Rand is a 31-bit linear congruential generator. It is the only source of
// randomness in the engine: every trait, palette and geometry decision is a
// pure function of the seed through one or more Rand instances.
//
// The state update is
//
//	state = (state*1103515245 + 12345) & 0x7fffffff
//
// computed in 64-bit arithmetic and masked, so it is exactly reproducible by
// any evaluator that can do 62-bit integer multiplication. The integer draw
// methods (Roll, Roll1000, Intn) never touch floating point; Float is
// reserved for geometry-side sampling that no constrained evaluator
// recomputes.
//
// Rand is deliberately not cryptographic. It only has to be cheap, total and
// identical everywhere.
type Rand struct {
	state uint64
}

const (
	lcgMul  = 1103515245
	lcgInc  = 12345
	lcgMask = 0x7fffffff
)

// NewRand returns a generator seeded with |seed| masked to 31 bits.
// A zero state is invalid for an LCG of this form, so it maps to 1; every
// int64 seed, including 0 and math.MinInt64, yields a usable generator.
func NewRand(seed int64) *Rand {
	var s uint64
	if seed < 0 {
		s = uint64(-seed) // MinInt64 wraps to 1<<63, masked below
	} else {
		s = uint64(seed)
	}
	s &= lcgMask
	if s == 0 {
		s = 1
	}
	return &Rand{state: s}
}

// Next advances the generator and returns the new state.
func (r *Rand) Next() uint32 {
	r.state = (r.state*lcgMul + lcgInc) & lcgMask
	return uint32(r.state)
}

// Roll advances once and maps the state into [0,100).
func (r *Rand) Roll() int {
	return int(uint64(r.Next()) * 100 >> 31)
}

// Roll1000 advances once and maps the state into [0,1000). Used for the
// sub-percent rarity flags, where whole-percent granularity is too coarse.
func (r *Rand) Roll1000() int {
	return int(uint64(r.Next()) * 1000 >> 31)
}

// Intn advances once and returns a value in [0,n). n <= 0 returns 0 without
// advancing, so callers never divide by zero on an empty candidate pool.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64(r.Next()) * uint64(n) >> 31)
}

// Float advances once and maps the state into [0,1]. Geometry-side only:
// crease weights, edge parameters, breathing multipliers. Trait labels must
// never depend on it.
func (r *Rand) Float() float64 {
	return float64(r.Next()) / lcgMask
}

// Perturb folds a context string into the current state without consuming a
// draw. The fold loop uses it to escape degenerate geometry: a failed fold
// attempt perturbs the working state and retries on the next iteration
// instead of erroring.
func (r *Rand) Perturb(salt string) {
	h := fnv.New32a()
	h.Write([]byte(salt))
	r.state = (r.state ^ uint64(h.Sum32())) & lcgMask
	if r.state == 0 {
		r.state = 1
	}
}

// Channel identifies an independent trait stream. Generators for distinct
// concerns are never shared; each is freshly seeded with seed+channel so that
// adding draws to one trait cannot shift any other.
type Channel int64

// Channel offsets. These are wire constants: changing one changes every
// artwork ever derived from an affected seed.
const (
	ChannelRenderMode   Channel = 5555
	ChannelFoldStrategy Channel = 6666
	ChannelWeightRange  Channel = 7777
	ChannelMaxFolds     Channel = 9999
	ChannelCellDims     Channel = 3333
	ChannelMultiColor   Channel = 2222
	ChannelShowCreases  Channel = 1111
	ChannelHitCounts    Channel = 4444
	ChannelGrain        Channel = 8888
	ChannelMonochrome   Channel = 6161
	ChannelPalette      Channel = 4242
	ChannelGeometry     Channel = 1717
	ChannelBreathing    Channel = 8787
)

// NewChannel returns a fresh generator for one trait channel of a seed.
func NewChannel(seed int64, c Channel) *Rand {
	return NewRand(seed + int64(c))
}
