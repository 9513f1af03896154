package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/woclang/woc/woc"
	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/eval"
	"github.com/woclang/woc/woc/object"
	"github.com/woclang/woc/woc/token"
)

const replHelp = `Enter statements to evaluate them. Input continues on the next line
while braces or parentheses are open.

  :tokens <src>  print the tokens of src
  :ast <src>     print the syntax tree of src
  :help          show this help
  :quit          leave the shell (or Ctrl+D)
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive shell",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

type repl struct {
	out io.Writer

	errColor *color.Color
	valColor *color.Color
	letColor *color.Color
}

func newRepl(out io.Writer) *repl {
	return &repl{
		out:      out,
		errColor: color.New(color.FgRed),
		valColor: color.New(color.FgBlue),
		letColor: color.New(color.FgGreen),
	}
}

// Bind echoes let statements. The shell keeps no variables.
func (r *repl) Bind(name string, value object.Object) {
	r.letColor.Fprintf(r.out, "%s = %s\n", name, value)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	loadHistory(ln, config.HistoryFile)
	defer saveHistory(ln, config.HistoryFile)

	r := newRepl(cmd.OutOrStdout())
	fmt.Fprintln(r.out, "woc shell, :help for help")

	for {
		src, ok := readInput(ln, config.Prompt, config.ContinuationPrompt)
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}

		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if r.handle(cmd.Context(), src) {
			return nil
		}
	}
}

// handle evaluates one input and reports whether the shell should exit.
func (r *repl) handle(ctx context.Context, src string) (exit bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, ":") {
		return r.command(trimmed)
	}

	v, err := woc.Run(ctx, "<repl>", src, eval.WithBinder(r))
	if err != nil {
		r.printError(err)
		return false
	}

	if v != object.NULL {
		r.valColor.Fprintln(r.out, v.String())
	}
	return false
}

func (r *repl) command(line string) (exit bool) {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case ":quit", ":exit", ":q":
		return true

	case ":help":
		fmt.Fprint(r.out, replHelp)

	case ":tokens":
		toks, err := woc.Tokenize("<repl>", rest)
		for _, tok := range toks {
			if !tok.Eof {
				fmt.Fprintf(r.out, "%s %q\n", tok.Type, tok.Lexeme)
			}
		}
		if err != nil {
			r.printError(err)
		}

	case ":ast":
		prog, err := woc.ParseFile("<repl>", rest)
		if prog != nil {
			v := ast.NewDebugVisitor()
			prog.Walk(v)
			fmt.Fprint(r.out, v.String())
		}
		if err != nil {
			r.printError(err)
		}

	default:
		fmt.Fprintf(r.out, "unknown command %s, type :help for help\n", name)
	}

	return false
}

func (r *repl) printError(err error) {
	var srcErr *woc.SourceError
	if errors.As(err, &srcErr) {
		r.errColor.Fprintln(r.out, srcErr.Pretty())
		return
	}
	r.errColor.Fprintf(r.out, "error: %s\n", err)
}

// readInput reads lines until no brace or parenthesis is left open. It
// returns false on Ctrl+D.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var sb strings.Builder

	for {
		p := prompt
		if sb.Len() > 0 {
			p = cont
		}

		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C drops the current input.
			return "", true
		}
		if err != nil {
			glog.Errorf("failed to read input: %s", err)
			return "", false
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		if !needsMore(sb.String()) {
			return sb.String(), true
		}
	}
}

// needsMore reports whether src has unclosed braces or parentheses, or an
// unterminated string.
func needsMore(src string) bool {
	toks, _ := woc.Tokenize("<repl>", src)

	depth := 0
	for _, tok := range toks {
		switch tok.Type {
		case token.LBRACE, token.LPAREN:
			depth++
		case token.RBRACE, token.RPAREN:
			depth--
		case token.ILLEGAL:
			if tok.Invalid && strings.HasPrefix(src[tok.Pos.Offset:], `"`) {
				return true
			}
		}
	}

	return depth > 0
}

func loadHistory(ln *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := ln.ReadHistory(f); err != nil {
		glog.Warningf("failed to read history %s: %s", path, err)
	}
}

func saveHistory(ln *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		glog.Warningf("failed to create history dir: %s", err)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		glog.Warningf("failed to write history %s: %s", path, err)
		return
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		glog.Warningf("failed to write history %s: %s", path, err)
	}
}
