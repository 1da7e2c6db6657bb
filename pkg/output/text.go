package output

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/linetools/pkg/comm"
)

// Column prefixes in the manner of comm(1).
const (
	FirstOnlyPrefix  = ""
	SecondOnlyPrefix = "\t"
	CommonPrefix     = "\t\t"
)

// TextFormatter writes one line per entry, indented by category.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the result as tab-indented columns.
func (f *TextFormatter) Format(ctx context.Context, result *comm.Result, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range result.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s%s\n", Prefix(e.Category), e.Line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Prefix returns the column indent for a category.
func Prefix(c comm.Category) string {
	switch c {
	case comm.SecondOnly:
		return SecondOnlyPrefix
	case comm.Common:
		return CommonPrefix
	default:
		return FirstOnlyPrefix
	}
}
