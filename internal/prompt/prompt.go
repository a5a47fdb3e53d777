package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/bikeshare/internal/config"
	"github.com/nao1215/bikeshare/internal/model"
)

// Greeting is printed once before the filter questions.
const Greeting = "Hello! Let's explore the bike share data in the United States!"

// Separator closes every console section.
var Separator = strings.Repeat("-", 40)

// Prompter asks questions on out and reads the answers from in.
// Lines are read by a single background goroutine so that a blocked read
// does not delay cancellation.
type Prompter struct {
	in      *bufio.Reader
	lines   chan readResult
	start   sync.Once
	out     io.Writer
	catalog *config.Catalog
	title   cases.Caser
	invalid *color.Color
}

// readResult is one line read from the input.
type readResult struct {
	line string
	err  error
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithColor forces coloured invalid-input messages on or off.
// Without it, colour follows the terminal detection of fatih/color.
func WithColor(enabled bool) Option {
	return func(p *Prompter) {
		if enabled {
			p.invalid.EnableColor()
		} else {
			p.invalid.DisableColor()
		}
	}
}

// New creates a Prompter validating answers against catalog.
func New(in io.Reader, out io.Writer, catalog *config.Catalog, opts ...Option) *Prompter {
	p := &Prompter{
		in:      bufio.NewReader(in),
		lines:   make(chan readResult),
		out:     out,
		catalog: catalog,
		title:   cases.Title(language.English),
		invalid: color.New(color.FgRed),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Filters asks for the city, month and day until each answer is valid and
// returns the lower-cased selection.
func (p *Prompter) Filters(ctx context.Context) (model.Filter, error) {
	fmt.Fprintln(p.out, Greeting)

	city, err := p.choose(ctx, "Please select a city from", p.catalog.Cities(), "city", p.isCity)
	if err != nil {
		return model.Filter{}, err
	}
	month, err := p.choose(ctx, "Select a month for analysis from", p.catalog.Months(), "month", p.catalog.IsMonth)
	if err != nil {
		return model.Filter{}, err
	}
	day, err := p.choose(ctx, "Select a day for analysis from", p.catalog.Days(), "day", p.catalog.IsDay)
	if err != nil {
		return model.Filter{}, err
	}

	fmt.Fprintln(p.out, Separator)

	return p.catalog.Filter(city, month, day)
}

// Confirm asks a yes/no question and reports whether the answer was "yes",
// in any letter case. Surrounding spaces make the answer a no, as does
// any other answer.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	line, err := p.ask(ctx, "\n"+question+" : ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimRight(line, "\r\n"), "yes"), nil
}

func (p *Prompter) isCity(s string) bool {
	_, ok := p.catalog.LookupCity(s)
	return ok
}

// choose repeats the question until valid accepts the normalized answer.
func (p *Prompter) choose(ctx context.Context, question string, choices []string, noun string, valid func(string) bool) (string, error) {
	prompt := fmt.Sprintf("%s [%s]: ", question, p.list(choices))
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if valid(answer) {
			return answer, nil
		}
		p.invalid.Fprintf(p.out, "Please enter a valid %s.\n", noun)
	}
}

func (p *Prompter) list(choices []string) string {
	titled := make([]string, len(choices))
	for i, c := range choices {
		titled[i] = p.title.String(c)
	}
	return strings.Join(titled, ", ")
}

// ask prints prompt and returns the next input line as read.
// It returns ctx.Err() as soon as ctx is done, even while the read blocks.
func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, prompt)

	p.start.Do(func() { go p.readLines() })

	var res readResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case r, ok := <-p.lines:
		if !ok {
			r = readResult{err: io.EOF}
		}
		res = r
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", res.err)
		}
		if res.line == "" {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
	}

	return res.line, nil
}

// readLines sends every input line to p.lines until the first read error.
func (p *Prompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}
