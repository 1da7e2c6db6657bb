// Package sections splits a line stream into at most two blank-line-delimited
// sections.
package sections

import (
	"fmt"
	"strings"
)

// State is the position of a Splitter within its input.
type State int

const (
	// BeforeFirst skips leading blank lines.
	BeforeFirst State = iota
	// InFirst collects the first section.
	InFirst
	// BeforeSecond skips the blank run between the sections.
	BeforeSecond
	// InSecond collects the second section.
	InSecond
	// Done accepts only blank lines.
	Done
)

func (s State) String() string {
	switch s {
	case BeforeFirst:
		return "before-first"
	case InFirst:
		return "in-first"
	case BeforeSecond:
		return "before-second"
	case InSecond:
		return "in-second"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sections holds the non-blank lines of each section in input order.
type Sections struct {
	First  []string
	Second []string
}

// Lines returns the first section followed by the second.
func (s *Sections) Lines() []string {
	all := make([]string, 0, len(s.First)+len(s.Second))
	all = append(all, s.First...)
	return append(all, s.Second...)
}

// IsBlank reports whether a line is empty after trimming whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// StructureError reports a non-blank line after the second section.
type StructureError struct {
	// LineNum is the 1-based input line number.
	LineNum int

	// Line is the offending line content.
	Line string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("Found non-empty line %d after the second section: %s", e.LineNum, e.Line)
}
