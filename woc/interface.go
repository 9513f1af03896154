package woc

import (
	"context"
	"errors"

	"github.com/golang/glog"
	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/eval"
	"github.com/woclang/woc/woc/object"
	"github.com/woclang/woc/woc/parser"
	"github.com/woclang/woc/woc/scanner"
	"github.com/woclang/woc/woc/token"
)

// Tokenize scans the whole source. src may be a string, a []byte, or nil in
// which case the file is read from disk. The tokens are returned even when
// there are lexical errors; the errors are returned as a *SourceError.
func Tokenize(filename string, src any) ([]token.Token, error) {
	file := token.NewFile(filename, src)
	if file.Err != nil {
		return nil, file.Err
	}

	return tokenize(file)
}

func tokenize(file *token.File) ([]token.Token, error) {
	s := scanner.New(file)
	toks := s.ScanAll()

	if s.NumErrors > 0 {
		return toks, newSourceError(file, s.Errors()...)
	}
	return toks, nil
}

// ParseFile scans and parses the source. Lexical errors stop before parsing.
// On parse errors the partial program is returned with a *SourceError.
func ParseFile(filename string, src any) (*ast.Program, error) {
	file := token.NewFile(filename, src)
	if file.Err != nil {
		return nil, file.Err
	}

	return parse(file)
}

func parse(file *token.File) (*ast.Program, error) {
	toks, err := tokenize(file)
	if err != nil {
		return nil, err
	}

	p := parser.New(file, toks)
	prog := p.Parse()

	if p.NumErrors > 0 {
		glog.V(2).Infof("%s: %d parse errors, %d statements kept", file.Name, p.NumErrors, len(prog.Stmts))
		return prog, newSourceError(file, p.Errors()...)
	}
	return prog, nil
}

// Run parses and evaluates the source and returns the value of the program.
// Runtime errors are returned as a *SourceError alongside the value of the
// last statement that succeeded. Evaluation stops between statements when
// ctx is done.
func Run(ctx context.Context, filename string, src any, opts ...eval.Option) (object.Object, error) {
	file := token.NewFile(filename, src)
	if file.Err != nil {
		return nil, file.Err
	}

	prog, err := parse(file)
	if err != nil {
		return nil, err
	}

	opts = append([]eval.Option{eval.WithContext(ctx)}, opts...)
	v, err := eval.EvalProgram(prog, opts...)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return v, err
		}
		return v, newSourceError(file, err)
	}

	return v, nil
}
