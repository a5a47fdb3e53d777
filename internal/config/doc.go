// Package config provides configuration structures and utilities for bikeshare.
// It defines where city source files live, how they are encoded, the
// whitelists used to validate user selections, and report output preferences.
package config
