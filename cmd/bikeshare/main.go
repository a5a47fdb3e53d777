// Package main provides the entry point for the bikeshare CLI.
//
// bikeshare explores historical bike-share trips for Chicago, New York City
// and Washington. It asks for a city, month and day, then prints the most
// common travel times, the most popular stations, trip duration totals and
// rider demographics, and pages through the raw rows on request.
//
// Usage:
//
//	bikeshare
//	bikeshare summary --city chicago --month june
//	bikeshare compare chicago washington
//
// See --help for all available options.
package main

// main is the entry point for bikeshare.
func main() {
	Execute()
}
