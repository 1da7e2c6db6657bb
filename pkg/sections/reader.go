package sections

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// DefaultMaxLineBytes is the longest line Read accepts unless overridden.
const DefaultMaxLineBytes = 16 * 1024 * 1024

// Option configures Read.
type Option func(*readOptions)

type readOptions struct {
	maxLineBytes int
}

// WithMaxLineBytes sets the longest accepted input line.
func WithMaxLineBytes(n int) Option {
	return func(o *readOptions) {
		if n > 0 {
			o.maxLineBytes = n
		}
	}
}

// Read consumes r to end of stream and returns its two sections.
// A read failure or a StructureError aborts the whole read.
func Read(ctx context.Context, r io.Reader, opts ...Option) (*Sections, error) {
	o := readOptions{maxLineBytes: DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(&o)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, o.maxLineBytes)), o.maxLineBytes)

	splitter := NewSplitter()
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		prev := splitter.State()
		if err := splitter.Feed(scanner.Text()); err != nil {
			return nil, err
		}
		if next := splitter.State(); next != prev {
			log.WithFields(log.Fields{
				"line": splitter.LineNum(),
				"from": prev,
				"to":   next,
			}).Debug("section boundary")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	s := splitter.Sections()
	log.WithFields(log.Fields{
		"lines":  humanize.Comma(int64(splitter.LineNum())),
		"first":  humanize.Comma(int64(len(s.First))),
		"second": humanize.Comma(int64(len(s.Second))),
	}).Debug("sections read")

	return s, nil
}
