package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDataDir is where the city source files are looked up,
	// relative to the working directory.
	DefaultDataDir = "./csv"

	// DefaultEncoding is the text encoding of the published city files.
	// cp949 is the Korean Windows code page (a superset of EUC-KR).
	DefaultEncoding = "cp949"

	// DefaultPageSize is the number of raw rows shown per pager request.
	DefaultPageSize = 5

	// AppName is the application name used for XDG directory paths.
	AppName = "bikeshare"
)

// DefaultCities maps each supported city to its source file name.
func DefaultCities() map[string]string {
	return map[string]string{
		"chicago":       "chicago.csv",
		"new york city": "new_york_city.csv",
		"washington":    "washington.csv",
	}
}

// Config holds all configuration options for bikeshare.
// It is populated once at startup from defaults, the optional config file
// and CLI flags, then passed to the components that need it.
type Config struct {
	// DataDir is the directory holding the city source files.
	DataDir string

	// Encoding is the text encoding of the source files (e.g. "cp949", "utf-8").
	Encoding string

	// PageSize is the number of rows the raw data pager prints per request.
	PageSize int

	// Cities maps lower-case city names to source file names inside DataDir.
	Cities map[string]string

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport enables JSON report output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for non-interactive reports.
	// When empty, reports are written to stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		Encoding: DefaultEncoding,
		PageSize: DefaultPageSize,
		Cities:   DefaultCities(),
	}
}

// Apply overrides configuration values with the non-zero values of a config file.
// City entries from the file are merged over the existing ones.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.DataDir != "" {
		c.DataDir = f.DataDir
	}
	if f.Encoding != "" {
		c.Encoding = f.Encoding
	}
	if f.PageSize != 0 {
		c.PageSize = f.PageSize
	}
	if len(f.Cities) > 0 {
		if c.Cities == nil {
			c.Cities = make(map[string]string, len(f.Cities))
		}
		for name, file := range f.Cities {
			c.Cities[strings.ToLower(strings.TrimSpace(name))] = file
		}
	}
}

// Catalog builds the immutable city, month and day whitelists from the configuration.
func (c *Config) Catalog() (*Catalog, error) {
	return NewCatalog(c.Cities)
}

// ResolveDataDir returns the directory source files should be read from.
// The configured DataDir wins when it exists; otherwise the XDG data
// directory is used if present. If neither exists DataDir is returned
// unchanged so that the loader reports a meaningful path.
func (c *Config) ResolveDataDir() string {
	if info, err := os.Stat(c.DataDir); err == nil && info.IsDir() {
		return c.DataDir
	}
	xdgDir := XDGDataDir()
	if info, err := os.Stat(xdgDir); err == nil && info.IsDir() {
		return xdgDir
	}
	return c.DataDir
}

// XDGDataDir returns the XDG data directory for bikeshare.
// On Linux: ~/.local/share/bikeshare
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for bikeshare.
// On Linux: ~/.config/bikeshare
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the package's sentinel errors.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return ErrEmptyDataDir
	}

	if strings.TrimSpace(c.Encoding) == "" {
		return ErrEmptyEncoding
	}

	if c.PageSize <= 0 {
		return ErrInvalidPageSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if _, err := c.Catalog(); err != nil {
		return err
	}

	return nil
}
