package pager

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/nao1215/bikeshare/internal/model"
)

// scriptedConfirmer answers questions from a fixed list, then reports closed input.
type scriptedConfirmer struct {
	answers   []bool
	questions []string
}

var errNoMoreAnswers = errors.New("no more answers")

func (s *scriptedConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	s.questions = append(s.questions, question)
	if len(s.answers) == 0 {
		return false, errNoMoreAnswers
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func newDataset(n int) *model.Dataset {
	ds := &model.Dataset{Columns: []string{"Start Station"}}
	for i := range n {
		ds.Trips = append(ds.Trips, model.Trip{
			Index:        i,
			StartStation: "Station " + strconv.Itoa(i),
			Fields:       []string{"Station " + strconv.Itoa(i)},
		})
	}
	return ds
}

func indexes(trips []model.Trip) []int {
	out := make([]int, len(trips))
	for i, t := range trips {
		out[i] = t.Index
	}
	return out
}

// TestNext tests the page windows.
func TestNext(t *testing.T) {
	t.Parallel()

	p := New(newDataset(12), &bytes.Buffer{})

	want := [][]int{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
		{10, 11},
		{},
	}
	for i, w := range want {
		got := indexes(p.Next())
		if len(got) != len(w) {
			t.Fatalf("page %d: expected %v, got %v", i, w, got)
		}
		for j := range w {
			if got[j] != w[j] {
				t.Errorf("page %d: expected %v, got %v", i, w, got)
			}
		}
	}
	if p.Cursor() != 20 {
		t.Errorf("expected cursor 20, got %d", p.Cursor())
	}
}

// TestWithPageSize tests custom page sizes.
func TestWithPageSize(t *testing.T) {
	t.Parallel()

	p := New(newDataset(10), &bytes.Buffer{}, WithPageSize(3))
	if got := indexes(p.Next()); len(got) != 3 || got[2] != 2 {
		t.Errorf("expected first 3 rows, got %v", got)
	}
	if !strings.Contains(p.Question(), "see 3 lines") {
		t.Errorf("unexpected question %q", p.Question())
	}

	p = New(newDataset(10), &bytes.Buffer{}, WithPageSize(0))
	if got := p.Next(); len(got) != 5 {
		t.Errorf("expected default page size 5, got %d", len(got))
	}
}

// TestRun tests the interactive paging loop.
func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("stops on no", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		c := &scriptedConfirmer{answers: []bool{true, true, false}}
		p := New(newDataset(12), &out)

		if err := p.Run(context.Background(), c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.questions) != 3 {
			t.Errorf("expected 3 questions, got %d", len(c.questions))
		}
		if c.questions[0] != "Would you like to see 5 lines of raw data? Enter yes or no." {
			t.Errorf("unexpected question %q", c.questions[0])
		}
		if !strings.Contains(out.String(), "Station 9") || strings.Contains(out.String(), "Station 10") {
			t.Errorf("expected rows 0-9 only, got %q", out.String())
		}
		if p.Cursor() != 10 {
			t.Errorf("expected cursor 10, got %d", p.Cursor())
		}
	})

	t.Run("prints nothing beyond the end", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		c := &scriptedConfirmer{answers: []bool{true, true, false}}
		p := New(newDataset(3), &out)

		if err := p.Run(context.Background(), c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := out.String()
		if !strings.Contains(first, "Station 2") {
			t.Errorf("expected first page, got %q", first)
		}
		if strings.Count(first, "Station 0") != 1 {
			t.Errorf("expected the second page to print nothing, got %q", first)
		}
	})

	t.Run("returns confirmer errors", func(t *testing.T) {
		t.Parallel()

		p := New(newDataset(3), &bytes.Buffer{})
		if err := p.Run(context.Background(), &scriptedConfirmer{}); !errors.Is(err, errNoMoreAnswers) {
			t.Errorf("expected errNoMoreAnswers, got %v", err)
		}
	})
}
