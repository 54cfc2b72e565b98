package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}
	var count atomic.Int64
	For(100, func(i int) { count.Add(1) }, cfg)
	if count.Load() != 100 {
		t.Errorf("expected 100 iterations, got %d", count.Load())
	}
}

func TestForParallelCoversAllIndices(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
	n := 10000
	seen := make([]atomic.Bool, n)
	For(n, func(i int) { seen[i].Store(true) }, cfg)
	for i := range seen {
		if !seen[i].Load() {
			t.Fatalf("index %d not visited", i)
		}
	}
}

func TestForSmallNUsesSequential(t *testing.T) {
	cfg := DefaultConfig()
	var count atomic.Int64
	For(10, func(i int) { count.Add(1) }, cfg)
	if count.Load() != 10 {
		t.Errorf("expected 10 iterations, got %d", count.Load())
	}
}
