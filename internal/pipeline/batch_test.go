package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/bikeshare/internal/model"
)

// staticSource serves the same dataset for every city except "missing".
func staticSource(ctx context.Context, city string) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if city == "missing" {
		return nil, errors.New("no such file")
	}
	ds := newTestDataset()
	ds.City = city
	return ds, nil
}

// TestBatchProcessorNew tests the BatchProcessor constructor.
func TestBatchProcessorNew(t *testing.T) {
	t.Parallel()

	t.Run("creates processor with defaults", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() }, staticSource)

		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected default concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
		if bp.logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("applies WithConcurrency option", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() }, staticSource, WithConcurrency(2))
		if bp.concurrency != 2 {
			t.Errorf("expected concurrency 2, got %d", bp.concurrency)
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() }, staticSource, WithConcurrency(0))
		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
	})
}

// TestBatchProcessorProcessBatch tests batch processing.
func TestBatchProcessorProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("computes a report per city in order", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return Default() }, staticSource)
		cities := []string{"chicago", "new york city", "washington"}

		results, err := bp.ProcessBatch(context.Background(), cities, model.Filter{Month: "june", Day: model.All})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(cities) {
			t.Fatalf("expected %d results, got %d", len(cities), len(results))
		}
		for i, result := range results {
			if result.City != cities[i] {
				t.Errorf("result[%d]: got %q, expected %q", i, result.City, cities[i])
			}
			if result.Filter.City != cities[i] || result.Filter.Month != "june" {
				t.Errorf("result[%d]: unexpected filter %+v", i, result.Filter)
			}
			if result.Rows != 2 || result.Duration == nil {
				t.Errorf("result[%d]: expected computed statistics, got %+v", i, result)
			}
		}
	})

	t.Run("applies the month filter to each city", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return Default() }, staticSource)
		results, err := bp.ProcessBatch(context.Background(), []string{"chicago"}, model.Filter{Month: "january"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !results[0].IsEmpty() {
			t.Errorf("expected no trips in january, got %d", results[0].Rows)
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var maxConcurrent atomic.Int32
		var currentConcurrent atomic.Int32
		var mu sync.Mutex

		bp := NewBatchProcessor(
			func() *Pipeline {
				p := New()
				p.AddStep(&mockStep{
					name: "concurrent-counter",
					doFunc: func(context.Context, *model.Dataset, *model.Report) error {
						current := currentConcurrent.Add(1)
						mu.Lock()
						if current > maxConcurrent.Load() {
							maxConcurrent.Store(current)
						}
						mu.Unlock()

						time.Sleep(20 * time.Millisecond)

						currentConcurrent.Add(-1)
						return nil
					},
				})
				return p
			},
			staticSource,
			WithConcurrency(2),
		)

		cities := make([]string, 8)
		for i := range cities {
			cities[i] = "chicago"
		}

		if _, err := bp.ProcessBatch(context.Background(), cities, model.Filter{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if maxConcurrent.Load() > 2 {
			t.Errorf("max concurrent was %d, expected <= 2", maxConcurrent.Load())
		}
	})

	t.Run("records load failure and continues", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return Default() }, staticSource)
		results, err := bp.ProcessBatch(context.Background(), []string{"chicago", "missing", "washington"}, model.Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results[1].Error == nil || results[1].City != "missing" {
			t.Errorf("expected load error for missing city, got %+v", results[1])
		}
		if results[0].Error != nil || results[2].Error != nil {
			t.Error("expected other cities to succeed")
		}
	})

	t.Run("handles context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bp := NewBatchProcessor(func() *Pipeline { return Default() }, staticSource)
		_, err := bp.ProcessBatch(ctx, []string{"chicago", "washington"}, model.Filter{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
