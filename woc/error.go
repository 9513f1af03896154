package woc

import (
	"strings"

	"github.com/woclang/woc/util"
	"github.com/woclang/woc/woc/eval"
	"github.com/woclang/woc/woc/parser"
	"github.com/woclang/woc/woc/scanner"
	"github.com/woclang/woc/woc/token"
)

// SourceError holds every error found in one source file, in source order.
type SourceError struct {
	File *token.File
	Errs []error
}

func (e *SourceError) Error() string {
	lines := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

func (e *SourceError) Unwrap() []error {
	return e.Errs
}

// Pretty renders all errors with the source line they point at.
func (e *SourceError) Pretty() string {
	out := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		out[i] = Diagnostic(e.File, err)
	}
	return strings.Join(out, "\n")
}

func newSourceError(file *token.File, errs ...error) *SourceError {
	return &SourceError{
		File: file,
		Errs: errs,
	}
}

// Diagnostic formats err with the offending line of file and a caret under
// the reported span. Errors without a known position are formatted as is.
func Diagnostic(file *token.File, err error) string {
	start, end, ok := span(err)
	if !ok || file == nil {
		return "error: " + err.Error()
	}

	msg := strings.TrimPrefix(err.Error(), start.String()+": ")
	if end.Row != start.Row {
		end = start
		end.Col++
	}

	return util.Pretty(start.Row+1, file.Line(start.Row), msg, start.Col, end.Col)
}

func span(err error) (start token.Pos, end token.Pos, ok bool) {
	switch err := err.(type) {
	case *scanner.Error:
		end = err.Pos
		end.Col++
		return err.Pos, end, true

	case *parser.Error:
		end = err.Got.EndPos
		if err.Got.Eof {
			end.Col++
		}
		return err.Pos, end, true

	case *eval.TypeError:
		end = err.Pos
		end.Col += len(err.Op)
		return err.Pos, end, true

	case *eval.DivisionByZeroError:
		end = err.Pos
		end.Col++
		return err.Pos, end, true

	case *eval.UnsupportedError:
		if err.Node == nil {
			return
		}
		return err.Node.Pos(), err.Node.End(), true
	}

	return
}
