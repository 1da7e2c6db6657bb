package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linetools/pkg/config"
	"github.com/ccollicutt/linetools/pkg/isotime"
)

// NewDatetimeToISOCommand creates the datetime-to-iso command.
func NewDatetimeToISOCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "datetime-to-iso",
		Short: "Rewrite datetime.datetime(...) literals as ISO-8601 UTC strings",
		Long: `Read lines from STDIN and replace every embedded literal of the form

  datetime.datetime(Y, M, D, h, m[, s[, us]][, tzinfo=datetime.timezone.utc])

with an ISO-8601 UTC timestamp. The layout depends on which parts are non-zero:

  YYYY-MM-DDThh:mm:ss.mmmZ   microseconds of at least 1000 (truncated to ms)
  YYYY-MM-DDThh:mm:ssZ       otherwise, seconds above zero
  YYYY-MM-DDThh:mmZ          otherwise

Other text is copied unchanged. A field that is not a 32-bit unsigned
integer stops the run with a non-zero exit code.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			n := isotime.NewNormalizer(isotime.WithMaxLineBytes(maxLineBytes(cfg)))
			_, err := n.Stream(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}
}
