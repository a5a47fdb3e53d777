package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/bikeshare/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of cities processed at once when
// WithConcurrency is not given.
const DefaultConcurrency = 4

// Source loads the unfiltered dataset of a city.
type Source func(ctx context.Context, city string) (*model.Dataset, error)

// BatchProcessor computes reports for several cities concurrently.
// Every city is loaded, filtered and run through its own pipeline.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each city.
	pipelineFactory func() *Pipeline

	// source loads a city dataset.
	source Source

	// concurrency is the maximum number of cities processed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of cities processed at once.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, source Source, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		source:          source,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch computes one report per city, applying the month and day of f
// to each. Reports are returned in the order of cities.
//
// A city that fails to load or compute gets a report with Error set; the
// other cities are still processed. The returned error is non-nil only when
// ctx is cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, cities []string, f model.Filter) ([]*model.Report, error) {
	bp.logger.Debug("starting batch processing",
		"cities", len(cities),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each goroutine writes only its own index.
	results := make([]*model.Report, len(cities))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, city := range cities {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			cityFilter := model.Filter{City: city, Month: f.Month, Day: f.Day}
			results[i] = bp.process(ctx, city, cityFilter)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	bp.logger.Debug("batch processing complete",
		"cities", len(cities),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

func (bp *BatchProcessor) process(ctx context.Context, city string, f model.Filter) *model.Report {
	ds, err := bp.source(ctx, city)
	if err != nil {
		bp.logger.Warn("failed to load city", "city", city, "error", err)
		report := model.NewReport(nil, f)
		report.City = city
		report.Error = err
		report.ErrorMessage = err.Error()
		return report
	}

	filtered := ds.Filter(f)
	report := model.NewReport(filtered, f)
	if err := bp.pipelineFactory().Execute(ctx, filtered, report); err != nil {
		bp.logger.Warn("statistics failed", "city", city, "error", err)
	}
	return report
}
