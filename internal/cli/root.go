// Package cli provides the process entry points for the linetools binaries.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linetools/internal/cli/commands"
	"github.com/ccollicutt/linetools/internal/log"
	"github.com/ccollicutt/linetools/pkg/config"
)

// Exit codes shared by both binaries.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// Streams bundles the process I/O so tests can substitute buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// ExecuteComms runs comms against the process arguments and returns the exit code.
func ExecuteComms() int {
	return RunComms(context.Background(), os.Args[1:], StdStreams())
}

// ExecuteDatetimeToISO runs datetime-to-iso against the process arguments and
// returns the exit code.
func ExecuteDatetimeToISO() int {
	return RunDatetimeToISO(context.Background(), os.Args[1:], StdStreams())
}

// RunComms executes comms. Argument, structure and read errors are printed to
// the output stream, not the error stream, and exit with ExitFailure.
func RunComms(ctx context.Context, args []string, s Streams) int {
	cfg, code := bootstrap(ctx, s)
	if code != ExitOK {
		return code
	}

	err := execute(ctx, commands.NewCommsCommand(cfg), args, s)
	if err == nil {
		return ExitOK
	}

	_, _ = fmt.Fprintln(s.Out, err)
	return ExitFailure
}

// RunDatetimeToISO executes datetime-to-iso. Errors go to the error stream.
func RunDatetimeToISO(ctx context.Context, args []string, s Streams) int {
	cfg, code := bootstrap(ctx, s)
	if code != ExitOK {
		return code
	}

	if err := execute(ctx, commands.NewDatetimeToISOCommand(cfg), args, s); err != nil {
		_, _ = fmt.Fprintf(s.Err, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

// bootstrap loads settings and installs the logger.
func bootstrap(ctx context.Context, s Streams) (*config.Config, int) {
	cfg, err := config.FromEnvironment(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(s.Err, "Error: %v\n", err)
		return nil, ExitConfigError
	}
	if err := log.Init(cfg.LogLevel, s.Err); err != nil {
		_, _ = fmt.Fprintf(s.Err, "Error: %v\n", err)
		return nil, ExitConfigError
	}
	return cfg, ExitOK
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, s Streams) error {
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(s.In)
	cmd.SetOut(s.Out)
	cmd.SetErr(s.Err)
	return cmd.ExecuteContext(ctx)
}
