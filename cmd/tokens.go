package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/woclang/woc/woc"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  printTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// printTokens prints every token, including illegal ones, before reporting
// lexical errors.
func printTokens(cmd *cobra.Command, args []string) error {
	toks, err := woc.Tokenize(args[0], nil)
	if toks == nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, tok := range toks {
		fmt.Fprintf(w, "%s\t%s\t%q\n", tok.Pos, tok.Type, tok.Lexeme)
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}

	return err
}
