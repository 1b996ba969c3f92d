package pool

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestExecuteAll_RunsEveryTaskOnce(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 100
	counts := make([]int32, n)
	tasks := make([]func(), n)
	for i := range tasks {
		i := i
		tasks[i] = func() { atomic.AddInt32(&counts[i], 1) }
	}
	p.ExecuteAll(tasks)

	for i, c := range counts {
		if c != 1 {
			t.Errorf("task %d ran %d times, want 1", i, c)
		}
	}
}

func TestExecuteAll_EmptyAndClosed(t *testing.T) {
	p := New(2)
	p.ExecuteAll(nil) // must not hang

	p.Close()
	p.ExecuteAll([]func(){func() { t.Error("task ran on a closed pool") }})
}

func TestSubmit(t *testing.T) {
	p := New(2)
	defer p.Close()

	var wg sync.WaitGroup
	var ran atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		p.Submit(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()
	if got := ran.Load(); got != 20 {
		t.Errorf("ran = %d, want 20", got)
	}
}

func TestNew_DefaultWorkers(t *testing.T) {
	p := New(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("workers = %d, want at least 1", p.Workers())
	}
}

func TestClose_Idempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close() // must not panic or hang
}

func TestExecuteAll_ManyMoreTasksThanWorkers(t *testing.T) {
	p := New(2)
	defer p.Close()

	var sum atomic.Int64
	const n = 1000
	tasks := make([]func(), n)
	for i := range tasks {
		v := int64(i)
		tasks[i] = func() { sum.Add(v) }
	}
	p.ExecuteAll(tasks)

	if want := int64(n * (n - 1) / 2); sum.Load() != want {
		t.Errorf("sum = %d, want %d", sum.Load(), want)
	}
}
