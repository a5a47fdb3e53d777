// Package model defines the core data structures used throughout bikeshare.
//
// This package contains the following main types:
//   - Trip: A single bike rental parsed from a city source file
//   - Dataset: The ordered, immutable set of trips loaded for one city
//   - Filter: The city/month/day selection made by the user
//   - Report: The statistics produced by one pipeline run
//
// The models are serializable to JSON for report output.
package model
