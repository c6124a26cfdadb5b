// Package parallel runs index-range work across a bounded worker pool.
package parallel

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
)

// minChunk is the smallest range handed to a single task.
const minChunk = 1024

// Workers resolves a configured worker count; values <= 0 mean one per CPU.
func Workers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// ForRange splits [0, n) into contiguous chunks and calls fn for each chunk
// on a pool of workers. It returns once every chunk has completed.
// Chunks never overlap, so fn may write to index-owned slots without locking.
func ForRange(n, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)

	chunkSize := (n + workers - 1) / workers
	if chunkSize < minChunk {
		chunkSize = minChunk
	}
	if workers == 1 || chunkSize >= n {
		fn(0, n)
		return
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			fn(start, end)
		})
	}

	wg.Wait()
}
