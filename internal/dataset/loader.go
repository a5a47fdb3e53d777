package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/bikeshare/internal/config"
	"github.com/nao1215/bikeshare/internal/model"
)

// Loader reads city source files into datasets.
// A Loader holds no per-load state; every call to Load reads the file again.
type Loader struct {
	// catalog resolves city names to file names.
	catalog *config.Catalog

	// dataDir is the directory the file names are relative to.
	dataDir string

	// encoding is the name of the source file text encoding.
	encoding string

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithEncoding sets the text encoding of the source files.
func WithEncoding(name string) Option {
	return func(l *Loader) {
		l.encoding = name
	}
}

// WithLogger sets a custom logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader reading files for catalog cities from dataDir.
func NewLoader(catalog *config.Catalog, dataDir string, opts ...Option) *Loader {
	l := &Loader{
		catalog:  catalog,
		dataDir:  dataDir,
		encoding: config.DefaultEncoding,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Path returns the source file path for a city.
func (l *Loader) Path(city string) (string, error) {
	c, ok := l.catalog.LookupCity(city)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	return filepath.Join(l.dataDir, c.File), nil
}

// Load reads and parses the source file of a city.
// The returned dataset is unfiltered.
func (l *Loader) Load(ctx context.Context, city string) (*model.Dataset, error) {
	path, err := l.Path(city)
	if err != nil {
		return nil, err
	}

	enc, err := ResolveEncoding(l.encoding)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // Path is built from the configured catalog
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	start := time.Now()
	header, trips, err := ReadTrips(ctx, NewDecodingReader(f, enc))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	c, _ := l.catalog.LookupCity(city)
	ds := &model.Dataset{
		City:    c.Name,
		Source:  path,
		Columns: header,
		Trips:   trips,
	}

	l.logger.Debug("dataset loaded",
		"city", ds.City,
		"path", path,
		"encoding", l.encoding,
		"rows", ds.Len(),
		"columns", len(header),
		"elapsed", time.Since(start),
	)

	return ds, nil
}
