package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/woclang/woc/woc"
)

var (
	cfgFile string
	noColor bool

	// Loaded before any sub-command runs.
	config *Config
)

var rootCmd = &cobra.Command{
	Use:   "woc",
	Short: "woc - a small scripting language",
	Long: `woc scans, parses and evaluates woc source.

Commands:
  run     evaluate a file and print its value
  repl    interactive shell
  tokens  print the token stream of a file
  ast     print the syntax tree of a file`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.woc/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	// glog registers -v, -logtostderr etc. on the standard flag set. cobra
	// merges pflag.CommandLine into the root command's flags.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
}

func setup(cmd *cobra.Command, args []string) error {
	// Log to stderr unless the user asked for log files.
	if f := cmd.Flags().Lookup("logtostderr"); f != nil && !f.Changed {
		_ = flag.Set("logtostderr", "true")
	}

	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	config = cfg

	if noColor || !config.Color {
		color.NoColor = true
	}

	glog.V(1).Infof("config: %+v", *config)
	return nil
}

// printError prints source errors with their source line, anything else as
// a single line.
func printError(err error) {
	var srcErr *woc.SourceError
	if errors.As(err, &srcErr) {
		fmt.Fprintln(os.Stderr, color.RedString("%s", srcErr.Pretty()))
		return
	}
	fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
}
