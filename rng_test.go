package origami

import (
	"math"
	"testing"
)

func TestNewRand_SeedMapping(t *testing.T) {
	tests := []struct {
		name string
		seed int64
		want uint64
	}{
		{"zero maps to one", 0, 1},
		{"positive", 42, 42},
		{"negative uses magnitude", -42, 42},
		{"masked to 31 bits", 0x7fffffff + 1, 1}, // 2^31 & mask == 0 -> 1
		{"large positive", 0x123456789, 0x23456789},
		{"min int64 stays valid", math.MinInt64, 1}, // wraps to 2^63, masks to 0 -> 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRand(tt.seed)
			if r.state != tt.want {
				t.Errorf("NewRand(%d) state = %d, want %d", tt.seed, r.state, tt.want)
			}
		})
	}
}

func TestRand_NextFormula(t *testing.T) {
	// Mirror the published update rule step by step from state 1.
	r := NewRand(1)
	state := uint64(1)
	for i := 0; i < 64; i++ {
		state = (state*lcgMul + lcgInc) & lcgMask
		if got := r.Next(); got != uint32(state) {
			t.Fatalf("step %d: Next() = %d, want %d", i, got, state)
		}
	}
}

func TestRand_StateNeverZero(t *testing.T) {
	seeds := []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64, 0x7fffffff}
	for _, seed := range seeds {
		r := NewRand(seed)
		for i := 0; i < 10000; i++ {
			r.Next()
			if r.state == 0 {
				t.Fatalf("seed %d: state hit zero after %d steps", seed, i+1)
			}
		}
	}
}

func TestRand_Determinism(t *testing.T) {
	a := NewRand(777)
	b := NewRand(777)
	for i := 0; i < 1000; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("step %d: %d != %d", i, av, bv)
		}
	}
}

func TestRand_RollRange(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 10000; i++ {
		if v := r.Roll(); v < 0 || v >= 100 {
			t.Fatalf("Roll() = %d, want [0,100)", v)
		}
	}
}

func TestRand_Roll1000Range(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 10000; i++ {
		if v := r.Roll1000(); v < 0 || v >= 1000 {
			t.Fatalf("Roll1000() = %d, want [0,1000)", v)
		}
	}
}

func TestRand_Intn(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"one", 1},
		{"small", 7},
		{"table sized", 256},
		{"large", 1 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRand(5)
			for i := 0; i < 5000; i++ {
				if v := r.Intn(tt.n); v < 0 || v >= tt.n {
					t.Fatalf("Intn(%d) = %d, out of range", tt.n, v)
				}
			}
		})
	}

	t.Run("non-positive", func(t *testing.T) {
		r := NewRand(5)
		before := r.state
		if v := r.Intn(0); v != 0 {
			t.Errorf("Intn(0) = %d, want 0", v)
		}
		if v := r.Intn(-3); v != 0 {
			t.Errorf("Intn(-3) = %d, want 0", v)
		}
		if r.state != before {
			t.Error("Intn with n <= 0 must not advance the state")
		}
	})
}

func TestRand_FloatRange(t *testing.T) {
	r := NewRand(1234)
	for i := 0; i < 10000; i++ {
		if f := r.Float(); f < 0 || f > 1 {
			t.Fatalf("Float() = %v, want [0,1]", f)
		}
	}
}

func TestRand_Perturb(t *testing.T) {
	t.Run("changes state without drawing", func(t *testing.T) {
		r := NewRand(42)
		r.Next()
		before := r.state
		r.Perturb("fold:too-close:3")
		if r.state == before {
			t.Error("Perturb left the state unchanged")
		}
		if r.state == 0 {
			t.Error("Perturb produced a zero state")
		}
	})

	t.Run("deterministic per salt", func(t *testing.T) {
		a, b := NewRand(42), NewRand(42)
		a.Perturb("x")
		b.Perturb("x")
		if a.state != b.state {
			t.Errorf("same salt diverged: %d != %d", a.state, b.state)
		}
	})

	t.Run("distinct salts diverge", func(t *testing.T) {
		a, b := NewRand(42), NewRand(42)
		a.Perturb("fold:degenerate-split:7")
		b.Perturb("fold:degenerate-union:7")
		if a.state == b.state {
			t.Error("different salts produced identical states")
		}
	})
}

func TestNewChannel_Independence(t *testing.T) {
	// Channels of one seed must be distinct generators: the first draw of
	// each should not collide pairwise for a representative seed.
	channels := []Channel{
		ChannelRenderMode, ChannelFoldStrategy, ChannelWeightRange,
		ChannelMaxFolds, ChannelCellDims, ChannelMultiColor,
		ChannelShowCreases, ChannelHitCounts, ChannelGrain,
		ChannelMonochrome, ChannelPalette, ChannelGeometry, ChannelBreathing,
	}
	seen := make(map[uint32]Channel, len(channels))
	for _, c := range channels {
		v := NewChannel(12345, c).Next()
		if prev, dup := seen[v]; dup {
			t.Errorf("channels %d and %d share first draw %d", prev, c, v)
		}
		seen[v] = c
	}
}

func TestNewChannel_MatchesOffsetSeed(t *testing.T) {
	a := NewChannel(100, ChannelRenderMode)
	b := NewRand(100 + int64(ChannelRenderMode))
	for i := 0; i < 16; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("step %d: channel draw %d != offset-seed draw %d", i, av, bv)
		}
	}
}

func BenchmarkRand_Next(b *testing.B) {
	r := NewRand(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Next()
	}
}
