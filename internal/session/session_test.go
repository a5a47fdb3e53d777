package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/bikeshare/internal/config"
	"github.com/nao1215/bikeshare/internal/dataset"
	"github.com/nao1215/bikeshare/internal/prompt"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
304487,2017-06-06 13:49:38,2017-06-06 13:55:28,350,Christiana Ave & Lawrence Ave,St. Louis Ave & Balmoral Ave,Subscriber,Male,1981.0
45207,2017-01-17 14:53:07,2017-01-17 15:02:01,534,Clark St & Randolph St,Desplaines St & Jackson Blvd,Subscriber,Male,1975.0
1473887,2017-06-26 09:01:20,2017-06-26 09:11:06,586,Clinton St & Washington Blvd,Canal St & Madison St,Subscriber,Male,1990.0
`

func fixedClock() time.Time {
	return time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC)
}

// newSession builds a session over a temporary chicago file with scripted answers.
func newSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(chicagoCSV), 0600); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}

	catalog := config.DefaultCatalog()
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader(input), out, catalog, prompt.WithColor(false))
	l := dataset.NewLoader(catalog, dir, dataset.WithEncoding("utf-8"))

	return New(p, l, out, WithClock(fixedClock)), out
}

// TestRun tests the explore loop.
func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("single iteration prints statistics", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, "chicago\nall\nall\nno\nno\n")
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := out.String()
		for _, want := range []string{
			prompt.Greeting,
			"The most common month is: June.",
			"Subscriber: 5, Customer: 1",
			"Would you like to see 5 lines of raw data? Enter yes or no.",
			RestartQuestion,
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("filter is applied before statistics", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, "chicago\njanuary\nall\nno\nno\n")
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := out.String()
		if !strings.Contains(output, "The most common month is: January.") {
			t.Errorf("expected january statistics, got %q", output)
		}
		if !strings.Contains(output, "Subscriber: 1, Customer: 1") {
			t.Errorf("expected january user counts, got %q", output)
		}
	})

	t.Run("empty selection prints no-trips message", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, "chicago\nfebruary\nall\nno\nno\n")
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "No trips match the selected filters.") {
			t.Errorf("expected no-trips message, got %q", out.String())
		}
	})

	t.Run("two iterations print identical statistics", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, "chicago\nall\nall\nno\nyes\nchicago\nall\nall\nno\nno\n")
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parts := strings.Split(out.String(), prompt.Greeting)
		if len(parts) != 3 {
			t.Fatalf("expected two iterations, got %d", len(parts)-1)
		}
		if parts[1] != parts[2] {
			t.Errorf("iterations differ:\n%s\n---\n%s", parts[1], parts[2])
		}
	})

	t.Run("pager shows raw rows", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, "chicago\nall\nall\nyes\nyes\nno\nno\n")
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := out.String()
		if !strings.Contains(output, "1423854") || !strings.Contains(output, "1473887") {
			t.Errorf("expected both pages of raw rows, got %q", output)
		}
	})

	t.Run("cancel while waiting for input ends cleanly", func(t *testing.T) {
		t.Parallel()

		in, w := io.Pipe()
		defer w.Close()

		out := &bytes.Buffer{}
		catalog := config.DefaultCatalog()
		p := prompt.New(in, out, catalog, prompt.WithColor(false))
		s := New(p, dataset.NewLoader(catalog, t.TempDir()), out)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- s.Run(ctx) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil {
				t.Errorf("expected nil error, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("session still blocked after cancel")
		}
	})

	t.Run("closed input ends cleanly", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "chicago\n", "chicago\nall\nall\n", "chicago\nall\nall\nno\n"} {
			s, _ := newSession(t, input)
			if err := s.Run(context.Background()); err != nil {
				t.Errorf("input %q: expected nil error, got %v", input, err)
			}
		}
	})

	t.Run("load failure is returned", func(t *testing.T) {
		t.Parallel()

		s, _ := newSession(t, "washington\nall\nall\n")
		err := s.Run(context.Background())
		if err == nil {
			t.Fatal("expected error for missing washington file")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}
