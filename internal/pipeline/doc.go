// Package pipeline runs the statistics passes over a dataset in sequence.
//
// Each pass is a Step that reads the filtered dataset and fills in its part
// of the report. The pipeline records how long every step took, so the
// report writers can print per-section timings.
//
// BatchProcessor runs one pipeline per city concurrently using errgroup,
// which backs the compare command.
package pipeline
