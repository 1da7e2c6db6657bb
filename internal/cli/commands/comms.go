// Package commands holds the cobra commands behind the linetools binaries.
package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ccollicutt/linetools/pkg/comm"
	"github.com/ccollicutt/linetools/pkg/config"
	"github.com/ccollicutt/linetools/pkg/output"
	"github.com/ccollicutt/linetools/pkg/sections"
)

const commsHelp = `
A version of [comm] command that works with a [s]ingle input (therefore "comms").
The input is split into two sections, separated by empty or blank lines. Blank
lines at the beginning and the end of the input are ignored. The content is
read from STDIN.

The sections do not need to be sorted, internally comms works on sets. The
output is printed in the order of the original sections.

Lines are printed only once, even if the same line appears many times.

Usage: comms -[123i]

Options:

    -1      Ignore lines only in the first section
    -2      Ignore lines only in the second section
    -3      Ignore lines common to both sections
    -i      Accepted for compatibility; comparison stays case-sensitive
    -h      Show this help
`

// CommsHelp returns the help text printed by -h and --help.
func CommsHelp() string {
	return strings.TrimSpace(commsHelp)
}

// NewCommsCommand creates the comms command. Flag parsing is done by
// ParseCommsArgs because flags may be combined freely (-12, -3i).
func NewCommsCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:                "comms [-123i]... | -h | --help",
		Short:              "Compare two blank-line separated sections of one input",
		Long:               CommsHelp(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComms(cmd, args, cfg)
		},
	}
}

func runComms(cmd *cobra.Command, args []string, cfg *config.Config) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	parsed, err := ParseCommsArgs(args)
	if err != nil {
		return err
	}
	if parsed.Help {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), CommsHelp())
		return err
	}

	log.WithFields(log.Fields{
		"suppress_first":  parsed.Options.SuppressFirst,
		"suppress_second": parsed.Options.SuppressSecond,
		"suppress_common": parsed.Options.SuppressCommon,
		"ignore_case":     parsed.Options.IgnoreCase,
	}).Debug("comms options")

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		log.Info("reading sections from a terminal; end input with Ctrl-D")
	}

	secs, err := sections.Read(ctx, in, sections.WithMaxLineBytes(maxLineBytes(cfg)))
	if err != nil {
		return err
	}

	result := comm.Classify(secs, parsed.Options)

	return output.NewTextFormatter().Format(ctx, result, cmd.OutOrStdout())
}

func maxLineBytes(cfg *config.Config) int {
	if cfg == nil {
		return config.DefaultMaxLineBytes
	}
	return cfg.MaxLineBytes
}
