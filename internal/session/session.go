// Package session runs the interactive explore loop: ask for filters, load
// the city, print the statistics, page through raw rows and offer a restart.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/nao1215/bikeshare/internal/config"
	"github.com/nao1215/bikeshare/internal/model"
	"github.com/nao1215/bikeshare/internal/pager"
	"github.com/nao1215/bikeshare/internal/pipeline"
	"github.com/nao1215/bikeshare/internal/prompt"
	"github.com/nao1215/bikeshare/internal/report"
)

// RestartQuestion is asked at the end of every iteration.
const RestartQuestion = `Would you like to restart? Please enter "yes" or "no".`

// Prompter collects the filter selection and answers yes/no questions.
type Prompter interface {
	Filters(ctx context.Context) (model.Filter, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// Loader reads the unfiltered dataset of a city.
type Loader interface {
	Load(ctx context.Context, city string) (*model.Dataset, error)
}

// Session is one interactive run of the explore loop.
type Session struct {
	prompter Prompter
	loader   Loader
	out      io.Writer
	logger   *slog.Logger
	pageSize int
	color    bool
	clock    func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets a custom logger for the session and its pipelines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithPageSize sets the number of raw rows shown per page.
func WithPageSize(n int) Option {
	return func(s *Session) {
		s.pageSize = n
	}
}

// WithColor enables coloured section headings.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = enabled
	}
}

// WithClock replaces the clock used to time the statistics passes.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.clock = now
	}
}

// New creates a Session reading answers from p, loading data with l and
// printing to out.
func New(p Prompter, l Loader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		prompter: p,
		loader:   l,
		out:      out,
		logger:   slog.Default(),
		pageSize: config.DefaultPageSize,
		clock:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run repeats the explore cycle until the user declines to restart.
// Closed input and cancellation of ctx end the session without error; load
// and output failures are returned.
func (s *Session) Run(ctx context.Context) error {
	for iteration := 1; ; iteration++ {
		again, err := s.iterate(ctx)
		if errors.Is(err, prompt.ErrInputClosed) {
			s.logger.Debug("input closed, ending session", "iteration", iteration)
			return nil
		}
		if errors.Is(err, context.Canceled) {
			s.logger.Debug("session interrupted", "iteration", iteration)
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// iterate performs one full cycle and reports whether the user asked to restart.
// Every call builds its own dataset, report and pager.
func (s *Session) iterate(ctx context.Context) (bool, error) {
	f, err := s.prompter.Filters(ctx)
	if err != nil {
		return false, err
	}

	ds, err := s.loader.Load(ctx, f.City)
	if err != nil {
		return false, err
	}

	filtered := ds.Filter(f)
	s.logger.Debug("filter applied",
		"filter", f.String(),
		"rows", filtered.Len(),
		"total", ds.Len(),
	)

	rep := model.NewReport(filtered, f)
	p := pipeline.Default(pipeline.WithLogger(s.logger), pipeline.WithClock(s.clock))
	if err := p.Execute(ctx, filtered, rep); err != nil {
		return false, fmt.Errorf("failed to compute statistics: %w", err)
	}

	if _, err := report.NewSimpleWriter(s.out, report.WithColor(s.color)).Write(rep); err != nil {
		return false, fmt.Errorf("failed to print statistics: %w", err)
	}

	if err := pager.New(filtered, s.out, pager.WithPageSize(s.pageSize)).Run(ctx, s.prompter); err != nil {
		return false, err
	}

	return s.prompter.Confirm(ctx, RestartQuestion)
}
