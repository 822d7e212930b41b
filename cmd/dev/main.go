package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/mklimuk/ais2dw12/cmd/dev/cmd"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	root := newRoot()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		slog.Error("dev command failed", "error", err)
		return 1
	}
	return 0
}

func newRoot() *cobra.Command {
	var debug, quiet bool
	root := &cobra.Command{
		Use:           "dev",
		Short:         "build/test/lint tool for the ais2dw12 driver",
		Long:          "Builds the ais2dw12 cli for the workstation or a board and runs the quality checks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			slog.SetDefault(slog.New(devLogger(debug, quiet)))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log warnings and errors only")
	root.MarkFlagsMutuallyExclusive("debug", "quiet")

	root.AddCommand(cmd.BuildCmd(), cmd.TestCmd(), cmd.LintCmd(), cmd.CheckCmd())
	return root
}

// devLogger logs to stderr so build output piped from stdout stays clean.
func devLogger(debug, quiet bool) *log.Logger {
	charm := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "dev",
	})
	charm.SetColorProfile(termenv.ANSI256)
	switch {
	case debug:
		charm.SetLevel(log.DebugLevel)
		charm.SetReportCaller(true)
	case quiet:
		charm.SetLevel(log.WarnLevel)
	default:
		charm.SetLevel(log.InfoLevel)
	}
	return charm
}
