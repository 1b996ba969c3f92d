// Package origami is a deterministic, seed-driven paper-folding art engine.
//
// # Overview
//
// Given a single integer seed, origami derives a discrete trait set
// (palette, grid geometry, fold strategy, render mode, rarity flags) and
// simulates a sequence of paper folds on a polygon, producing a density
// field that a renderer turns into an image. The same seed always yields
// the same traits and the same geometry.
//
// # Quick Start
//
//	import "github.com/gogpu/origami"
//
//	// Full pipeline: traits, palette, folds, density grid
//	a := origami.Generate(42)
//
//	// Traits only: the cheap path, no geometry simulated
//	t := origami.DeriveTraits(42)
//
// # Two Evaluators
//
// The engine is built to be recomputed by two very different hosts. A
// constrained evaluator (for example, on-chain metadata) recomputes only
// the discrete trait labels; everything on that path is integer-only LCG
// arithmetic (see Rand) so both hosts agree bit-for-bit on every roll. An
// unconstrained evaluator runs the full geometry and hands the result to
// the render/ package.
//
// # Architecture
//
//   - Traits: one fresh Rand channel per trait (see Channel), so adding
//     draws to one trait can never shift another.
//   - Palette: a 256-entry reference color table (websafe cube, CGA,
//     gray ramp) plus relational transforms of a chromatic mother color.
//   - Folds: repeated reflect-and-union of a convex polygon along computed
//     creases, with periodic "breathing" weight decay.
//   - Density: pairwise crease intersections aggregated per grid cell and
//     quantized against adaptive percentile thresholds.
//
// # Determinism
//
// Generate never returns an error and never reads anything but its
// arguments; degenerate inputs produce defined empty values. Renders of
// different seeds may run concurrently; the only shared state is the
// immutable reference table.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down.
package origami

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
