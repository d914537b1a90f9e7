package docforge

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Compile-time interface check.
var _ interface {
	Acquire() *Generator
	Release(*Generator)
	Size() int
} = (*GeneratorPool)(nil)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs, MinPoolSize), MaxPoolSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolvePoolSize_Bounds(t *testing.T) {
	t.Parallel()

	t.Run("auto stays within bounds", func(t *testing.T) {
		t.Parallel()

		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
		}
	})

	t.Run("explicit can exceed max", func(t *testing.T) {
		t.Parallel()

		got := ResolvePoolSize(32)
		if got != 32 {
			t.Errorf("ResolvePoolSize(32) = %d, want 32", got)
		}
	})
}

func TestGeneratorPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewGeneratorPool(2)

	gen1 := pool.Acquire()
	if gen1 == nil {
		t.Fatal("Acquire() returned nil")
	}

	gen2 := pool.Acquire()
	if gen2 == nil {
		t.Fatal("Acquire() returned nil")
	}

	if gen1 == gen2 {
		t.Error("expected different generator instances")
	}

	// Release and re-acquire
	pool.Release(gen1)
	gen3 := pool.Acquire()

	if gen3 != gen1 {
		t.Error("expected to get back released generator")
	}

	pool.Release(gen2)
	pool.Release(gen3)
}

func TestGeneratorPool_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
		want int
	}{
		{"size 1", 1, 1},
		{"size 4", 4, 4},
		{"size 0 becomes 1", 0, 1},
		{"negative becomes 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool := NewGeneratorPool(tt.size)

			if got := pool.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeneratorPool_OptionsPropagate(t *testing.T) {
	t.Parallel()

	pool := NewGeneratorPool(1, WithStrictInline())

	gen := pool.Acquire()
	defer pool.Release(gen)

	result, err := gen.Generate(context.Background(), Input{Markdown: "2 * 3 = 6"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !zipContains(t, result, "word/document.xml", "2 * 3 = 6") {
		t.Error("pooled generator did not inherit strict inline option")
	}
}

func TestGeneratorPool_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	pool := NewGeneratorPool(4)

	var wg sync.WaitGroup
	iterations := 20

	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := pool.Acquire()
			time.Sleep(5 * time.Millisecond) // Simulate work
			pool.Release(gen)
		}()
	}

	// Should complete without deadlock
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(5 * time.Second)
	defer timer.Stop()

	select {
	case <-done:
		// Success
	case <-timer.C:
		t.Fatal("concurrent access test timed out - possible deadlock")
	}
}

// TestGeneratorPool_HighContention verifies the pool remains deadlock-free
// under heavy concurrent access. A small pool (2 generators) with many
// goroutines (50) each performing multiple acquire/release cycles exposes
// race conditions that wouldn't surface with lighter loads.
func TestGeneratorPool_HighContention(t *testing.T) {
	t.Parallel()

	pool := NewGeneratorPool(2)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 3; j++ {
				gen := pool.Acquire()
				pool.Release(gen)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(10 * time.Second)
	defer timer.Stop()

	select {
	case <-done:
		// Success
	case <-timer.C:
		t.Fatal("high contention test timed out - possible deadlock")
	}
}
