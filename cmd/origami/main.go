// Command origami renders seed-driven fold artworks to PNG, or prints the
// constrained-evaluator trait labels as JSON without touching geometry.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/gogpu/origami"
	"github.com/gogpu/origami/render"
)

func main() {
	var (
		seed       = flag.Int64("seed", 42, "artwork seed")
		folds      = flag.Int("folds", -1, "fold count (-1 = seed's own MaxFolds trait)")
		size       = flag.Int("size", origami.CanvasSize, "output canvas size in pixels")
		out        = flag.String("out", "origami.png", "output file (batch mode appends the seed)")
		traitsOnly = flag.Bool("traits", false, "print trait JSON only, no rendering")
		batch      = flag.Int("batch", 0, "render N consecutive seeds starting at -seed")
		workers    = flag.Int("workers", 0, "batch worker count (0 = GOMAXPROCS)")
		scale      = flag.Float64("scale", 1, "render scale multiplier")
		verbose    = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		origami.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *traitsOnly {
		printTraits(*seed, *batch)
		return
	}

	r := render.New(render.WithScale(*scale), render.WithWorkers(*workers))

	if *batch > 1 {
		renderBatch(r, *seed, *batch, *out)
		return
	}

	opts := []origami.Option{origami.WithSize(*size, *size)}
	if *folds >= 0 {
		opts = append(opts, origami.WithFolds(*folds))
	}
	a := origami.Generate(*seed, opts...)
	if err := r.SavePNG(a, *out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (seed %d, %s/%s, %d creases)\n",
		*out, *seed, a.Traits.FoldStrategy.Kind, a.Traits.RenderMode, len(a.Creases))
}

// printTraits emits one stable JSON object per seed on stdout.
func printTraits(seed int64, batch int) {
	n := batch
	if n < 1 {
		n = 1
	}
	enc := json.NewEncoder(os.Stdout)
	for i := int64(0); i < int64(n); i++ {
		if err := enc.Encode(origami.DeriveTraits(seed + i)); err != nil {
			log.Fatalf("Failed to encode traits: %v", err)
		}
	}
}

// renderBatch renders count consecutive seeds, one file each, named by seed.
func renderBatch(r *render.Renderer, start int64, count int, out string) {
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = start + int64(i)
	}

	var mu sync.Mutex
	failed := 0
	r.Batch(seeds, func(seed int64, img image.Image) {
		path := fmt.Sprintf("%s.%d.png", out, seed)
		if err := savePNG(img, path); err != nil {
			mu.Lock()
			failed++
			mu.Unlock()
			log.Printf("seed %d: %v", seed, err)
		}
	})
	if failed > 0 {
		log.Fatalf("%d of %d renders failed", failed, count)
	}
	log.Printf("Saved %d renders (seeds %d..%d)\n", count, start, start+int64(count)-1)
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
