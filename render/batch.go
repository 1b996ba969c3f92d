package render

import (
	"image"

	"github.com/gogpu/origami"
	"github.com/gogpu/origami/internal/pool"
)

// Batch generates and rasterizes many seeds concurrently and calls fn once
// per seed with the finished image. Worker count comes from WithWorkers.
// fn may run on any worker goroutine and must be safe for concurrent calls;
// there is no cancellation primitive here, callers bound the work by
// bounding the seed list.
func (r *Renderer) Batch(seeds []int64, fn func(seed int64, img image.Image)) {
	if len(seeds) == 0 || fn == nil {
		return
	}

	p := pool.New(r.workers)
	defer p.Close()

	tasks := make([]func(), len(seeds))
	for i, seed := range seeds {
		s := seed
		tasks[i] = func() {
			fn(s, r.Image(origami.Generate(s)))
		}
	}
	p.ExecuteAll(tasks)
}
