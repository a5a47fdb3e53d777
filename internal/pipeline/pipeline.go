package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/bikeshare/internal/model"
	"github.com/nao1215/bikeshare/internal/stats"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, each one adding its statistics to the
// shared report.
type Step interface {
	// Do executes the pipeline step against the filtered dataset.
	// Returns an error if the step cannot produce its statistics.
	Do(ctx context.Context, ds *model.Dataset, report *model.Report) error

	// Name returns the step's name for logging and timing lookups.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool

	// now is the clock used for step timings.
	now func() time.Time
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. The last error is recorded in the report.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// WithClock replaces the clock used to measure step timings.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Default creates a pipeline with the four statistics passes in display order:
// travel times, stations, durations and users.
func Default(opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		stats.NewTimeStep(),
		stats.NewStationStep(),
		stats.NewDurationStep(),
		stats.NewUserStep(),
	)
	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence over ds.
// Cancellation is checked before each step.
//
// Returns the first error encountered if continueOnError is false,
// or nil if all steps complete (errors are recorded in report).
func (p *Pipeline) Execute(ctx context.Context, ds *model.Dataset, report *model.Report) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"city", report.City,
			"rows", ds.Len(),
		)

		start := p.now()
		err := step.Do(ctx, ds, report)
		elapsed := p.now().Sub(start)

		if err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"city", report.City,
				"error", err,
			)

			report.Error = err
			report.ErrorMessage = err.Error()

			if !p.continueOnError {
				return err
			}
			continue
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"city", report.City,
			"elapsed", elapsed,
		)

		report.Timings = append(report.Timings, model.StepTiming{Step: step.Name(), Elapsed: elapsed})
		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
