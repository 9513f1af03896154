package util

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrorList accumulates errors from a single pass over the source. The zero
// value is ready to use.
type ErrorList struct {
	errs *multierror.Error
}

func (e *ErrorList) Add(err error) {
	e.errs = multierror.Append(e.errs, err)
}

// Len returns the number of accumulated errors.
func (e *ErrorList) Len() int {
	if e.errs == nil {
		return 0
	}
	return len(e.errs.Errors)
}

func (e *ErrorList) Errors() []error {
	if e.errs == nil {
		return nil
	}
	return e.errs.Errors
}

// Error returns all errors joined into one, or nil if there are none.
func (e *ErrorList) Error() error {
	if e.errs == nil {
		return nil
	}
	e.errs.ErrorFormat = listFormat
	return e.errs.ErrorOrNil()
}

func listFormat(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Pretty formats msg with the offending source line and a caret underline
// spanning colStart to colEnd. line is the 1-based line number.
func Pretty(line int, lineStr string, msg string, colStart int, colEnd int) string {
	length := colEnd - colStart
	if length < 1 {
		length = 1
	}

	s := ""
	s += fmt.Sprintf("error: %s\n", msg)
	s += fmt.Sprintf("%3d | %s\n", line, lineStr)
	s += fmt.Sprintf("    | %s%s", strings.Repeat(" ", colStart), strings.Repeat("^", length))
	return s
}
