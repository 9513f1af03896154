package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/woclang/woc/woc"
	"github.com/woclang/woc/woc/ast"
)

var (
	astDump bool
	astTree bool
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of a file",
	Long: `Print the syntax tree of a file. By default every statement is printed
on its own line with all expressions fully parenthesised.`,
	Args: cobra.ExactArgs(1),
	RunE: printAst,
}

func init() {
	astCmd.Flags().BoolVar(&astDump, "dump", false, "dump the Go values of all nodes")
	astCmd.Flags().BoolVar(&astTree, "tree", false, "print an indented node tree")
	rootCmd.AddCommand(astCmd)
}

func printAst(cmd *cobra.Command, args []string) error {
	prog, err := woc.ParseFile(args[0], nil)
	if prog == nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case astDump:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(out, prog.Stmts)

	case astTree:
		v := ast.NewDebugVisitor()
		prog.Walk(v)
		fmt.Fprint(out, v.String())

	default:
		if len(prog.Stmts) > 0 {
			fmt.Fprintln(out, prog.String())
		}
	}

	// Statements with errors are missing from the output above.
	return err
}
