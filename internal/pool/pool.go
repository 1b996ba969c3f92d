// Package pool provides the work-stealing worker pool behind batch
// rendering: many independent seeds, one bounded set of goroutines.
package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool distributes independent tasks across a fixed set of workers.
// Each worker primarily pulls from its own queue but steals from others when
// idle, which balances load when some seeds fold far longer than others.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// queues holds the per-worker task queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// New creates a pool with the given number of workers; 0 or negative means
// GOMAXPROCS. Workers start immediately and wait for tasks.
func New(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few queued tasks per worker hides submission latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop of one worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	mine := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(mine)
			return

		case task := <-mine:
			if task != nil {
				task()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// Nothing anywhere; block on own queue.
				select {
				case <-p.done:
					p.drain(mine)
					return
				case task := <-mine:
					if task != nil {
						task()
					}
				}
			}
		}
	}
}

// drain executes all remaining tasks in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin across workers and waits for all
// of them to complete. A closed pool is a no-op.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))

	for i, fn := range tasks {
		task := fn
		wrapped := func() {
			defer completion.Done()
			task()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			completion.Done()
		}
	}
	completion.Wait()
}

// Submit sends a single task to the worker with the shortest queue. A
// closed pool is a no-op.
func (p *WorkerPool) Submit(fn func()) {
	if fn == nil || !p.running.Load() {
		return
	}

	minIdx := 0
	for i := 1; i < p.workers; i++ {
		if len(p.queues[i]) < len(p.queues[minIdx]) {
			minIdx = i
		}
	}
	select {
	case p.queues[minIdx] <- fn:
	case <-p.done:
	}
}

// Close stops accepting work, finishes everything queued and stops all
// workers. Safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the pool size.
func (p *WorkerPool) Workers() int {
	return p.workers
}
