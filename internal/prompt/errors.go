package prompt

import "errors"

// ErrInputClosed is returned when the input stream ends before an answer is read.
var ErrInputClosed = errors.New("input closed")
