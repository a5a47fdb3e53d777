// Package pager shows the raw rows of a dataset one page at a time.
package pager

import (
	"context"
	"fmt"
	"io"

	"github.com/nao1215/bikeshare/internal/config"
	"github.com/nao1215/bikeshare/internal/model"
	"github.com/nao1215/bikeshare/internal/report"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Pager walks a dataset in fixed-size windows starting at row 0.
type Pager struct {
	ds     *model.Dataset
	size   int
	cursor int
	table  *report.RowTable
}

// Option configures a Pager.
type Option func(*Pager)

// WithPageSize sets the number of rows per page.
// Non-positive values keep the default.
func WithPageSize(n int) Option {
	return func(p *Pager) {
		if n > 0 {
			p.size = n
		}
	}
}

// New creates a Pager rendering pages of ds to out.
func New(ds *model.Dataset, out io.Writer, opts ...Option) *Pager {
	p := &Pager{
		ds:    ds,
		size:  config.DefaultPageSize,
		table: report.NewRowTable(out),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Cursor returns the offset of the next page.
func (p *Pager) Cursor() int {
	return p.cursor
}

// Next returns the rows of the current window and advances the cursor by the
// page size. Windows past the end of the dataset are empty.
func (p *Pager) Next() []model.Trip {
	page := p.ds.Window(p.cursor, p.size)
	p.cursor += p.size
	return page
}

// Question returns the prompt asked before each page.
func (p *Pager) Question() string {
	return fmt.Sprintf("Would you like to see %d lines of raw data? Enter yes or no.", p.size)
}

// Run asks before every page and prints it until the answer is not "yes".
// Empty pages print nothing.
func (p *Pager) Run(ctx context.Context, c Confirmer) error {
	for {
		ok, err := c.Confirm(ctx, p.Question())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if _, err := p.table.Write(p.ds.Columns, p.Next()); err != nil {
			return fmt.Errorf("failed to print raw data: %w", err)
		}
	}
}
