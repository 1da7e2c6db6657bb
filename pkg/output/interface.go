// Package output renders classified lines.
package output

import (
	"context"
	"io"

	"github.com/ccollicutt/linetools/pkg/comm"
)

// Formatter renders a classification result.
type Formatter interface {
	// Format renders the result to the given writer.
	Format(ctx context.Context, result *comm.Result, w io.Writer) error

	// Name returns the format name.
	Name() string
}
