package isotime

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// DefaultMaxLineBytes is the longest line Stream accepts unless overridden.
const DefaultMaxLineBytes = 16 * 1024 * 1024

// Normalizer rewrites constructor literals line by line.
type Normalizer struct {
	pattern      *regexp.Regexp
	maxLineBytes int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithMaxLineBytes sets the longest accepted input line.
func WithMaxLineBytes(size int) Option {
	return func(n *Normalizer) {
		if size > 0 {
			n.maxLineBytes = size
		}
	}
}

// NewNormalizer creates a Normalizer using Pattern.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		pattern:      literalPattern,
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Stats summarises a Stream run.
type Stats struct {
	Lines        int
	Replacements int
}

// ReplaceLine rewrites every non-overlapping literal in line and returns the
// number of replacements. Text outside matches is copied unchanged.
func (n *Normalizer) ReplaceLine(line string) (string, int, error) {
	locs := n.pattern.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return line, 0, nil
	}

	names := n.pattern.SubexpNames()
	var sb strings.Builder
	sb.Grow(len(line))

	last := 0
	for _, loc := range locs {
		match := make([]string, len(names))
		for i := range names {
			if start, end := loc[2*i], loc[2*i+1]; start >= 0 {
				match[i] = line[start:end]
			}
		}

		lit, err := ParseLiteral(match, names)
		if err != nil {
			return "", 0, err
		}

		sb.WriteString(line[last:loc[0]])
		sb.WriteString(lit.Format())
		last = loc[1]
	}
	sb.WriteString(line[last:])

	return sb.String(), len(locs), nil
}

// Stream copies r to w one line at a time, rewriting literals. Every line is
// written with a trailing newline. Output produced before a failure is
// flushed before the error is returned.
func (n *Normalizer) Stream(ctx context.Context, r io.Reader, w io.Writer) (stats Stats, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, n.maxLineBytes)), n.maxLineBytes)

	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("writing output: %w", ferr)
		}
	}()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		stats.Lines++
		out, count, err := n.ReplaceLine(scanner.Text())
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
		stats.Replacements += count

		if _, err := bw.WriteString(out); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}

	log.WithFields(log.Fields{
		"lines":        humanize.Comma(int64(stats.Lines)),
		"replacements": humanize.Comma(int64(stats.Replacements)),
	}).Debug("normalized")

	return stats, nil
}
