package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/complib"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// options are global command line options, shared by all sub-commands.
type options struct {
	traceLevel string
	noColor    bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "complib",
		Short:         "Generic algorithmic primitives on the command line",
		Version:       complib.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(opts.traceLevel)
		},
	}
	root.PersistentFlags().StringVar(&opts.traceLevel, "trace", "error",
		"trace level: debug, info or error")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false,
		"disable colored output")
	root.AddCommand(
		newUnionFindCommand(opts),
		newRMQCommand(opts),
		newDijkstraCommand(opts),
		newFactorCommand(opts),
		newBinomCommand(opts),
	)
	return root
}

func setupTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error", "":
		l = tracing.LevelError
	default:
		return fmt.Errorf("%w: unknown trace level %q", complib.ErrIllegalArguments, level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	complib.T().Debugf("complib %s: tracing at level %s", complib.Version, level)
	return nil
}
