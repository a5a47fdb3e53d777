// Package prompt collects the city, month and day selection from the console.
//
// Every answer is checked against the catalog whitelists, ignoring case and
// surrounding whitespace, and the question is repeated until a valid answer
// is given or the input is closed.
package prompt
