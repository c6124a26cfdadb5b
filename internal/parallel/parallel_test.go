package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkers(t *testing.T) {
	if got := Workers(0); got != runtime.NumCPU() {
		t.Errorf("Workers(0) = %d, want %d", got, runtime.NumCPU())
	}
	if got := Workers(3); got != 3 {
		t.Errorf("Workers(3) = %d, want 3", got)
	}
}

func TestForRangeVisitsEachIndexOnce(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"empty", 0, 4},
		{"single chunk", 10, 4},
		{"one worker", 5000, 1},
		{"many chunks", 100_003, 8},
		{"default workers", 50_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits := make([]int32, tt.n)
			ForRange(tt.n, tt.workers, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&visits[i], 1)
				}
			})
			for i, v := range visits {
				if v != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, v)
				}
			}
		})
	}
}

func TestForRangeChunksAreContiguous(t *testing.T) {
	var total atomic.Int64
	ForRange(20_000, 4, func(start, end int) {
		if start >= end {
			t.Errorf("empty chunk [%d, %d)", start, end)
		}
		total.Add(int64(end - start))
	})
	if total.Load() != 20_000 {
		t.Errorf("covered %d indices, want 20000", total.Load())
	}
}
