package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/woclang/woc/woc"
)

var timeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Evaluate a file and print its value",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "stop evaluation after this long (default from config)")
	rootCmd.AddCommand(runCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	d := timeout
	if !cmd.Flags().Changed("timeout") {
		var err error
		if d, err = config.TimeoutDuration(); err != nil {
			return err
		}
	}

	ctx := context.Background()
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	glog.V(1).Infof("running %s (timeout %s)", args[0], d)
	v, err := woc.Run(ctx, args[0], nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.BlueString("%s", v))
	return nil
}
