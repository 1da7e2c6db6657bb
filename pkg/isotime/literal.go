// Package isotime rewrites embedded datetime.datetime(...) constructor
// literals into ISO-8601 UTC strings.
package isotime

import (
	"fmt"
	"regexp"
	"strconv"
)

// Pattern matches a datetime.datetime constructor with five required integer
// fields, optional second and microsecond, and an optional UTC tzinfo marker.
const Pattern = `datetime\.datetime\(` +
	`(?P<year>\p{Nd}+),\s*(?P<month>\p{Nd}+),\s*(?P<day>\p{Nd}+),\s*` +
	`(?P<hour>\p{Nd}+),\s*(?P<minute>\p{Nd}+)` +
	`(?:,\s*(?P<second>\p{Nd}+))?` +
	`(?:,\s*(?P<microsecond>\p{Nd}+))?` +
	`(?:,\s*(?P<utc>tzinfo=datetime\.timezone\.utc))?\)`

var literalPattern = regexp.MustCompile(Pattern)

// Shape selects one of the three output layouts.
type Shape int

const (
	// ShapeMillis renders YYYY-MM-DDThh:mm:ss.mmmZ.
	ShapeMillis Shape = iota + 1
	// ShapeSeconds renders YYYY-MM-DDThh:mm:ssZ.
	ShapeSeconds
	// ShapeMinutes renders YYYY-MM-DDThh:mmZ.
	ShapeMinutes
)

// Literal holds the fields captured from one constructor call.
type Literal struct {
	Year        uint32
	Month       uint32
	Day         uint32
	Hour        uint32
	Minute      uint32
	Second      uint32
	Microsecond uint32

	// UTC records whether the tzinfo marker was present. It does not
	// affect the rendered string.
	UTC bool
}

// ParseError reports a captured field that is not a 32-bit unsigned integer.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLiteral builds a Literal from a submatch slice and the pattern's
// subexpression names. Missing second and microsecond default to zero.
func ParseLiteral(match []string, names []string) (Literal, error) {
	var lit Literal
	fields := map[string]*uint32{
		"year":        &lit.Year,
		"month":       &lit.Month,
		"day":         &lit.Day,
		"hour":        &lit.Hour,
		"minute":      &lit.Minute,
		"second":      &lit.Second,
		"microsecond": &lit.Microsecond,
	}

	for i, name := range names {
		if i >= len(match) {
			break
		}
		if name == "utc" {
			lit.UTC = match[i] != ""
			continue
		}
		dst, ok := fields[name]
		if !ok || match[i] == "" {
			continue
		}
		v, err := strconv.ParseUint(match[i], 10, 32)
		if err != nil {
			return Literal{}, &ParseError{Field: name, Value: match[i], Err: err}
		}
		*dst = uint32(v)
	}

	return lit, nil
}

// Millisecond truncates the microsecond field.
func (l Literal) Millisecond() uint32 {
	return l.Microsecond / 1000
}

// Shape picks the layout by value, not by which fields were written:
// an explicit zero second renders the same as a missing one.
func (l Literal) Shape() Shape {
	switch {
	case l.Millisecond() > 0:
		return ShapeMillis
	case l.Second > 0:
		return ShapeSeconds
	default:
		return ShapeMinutes
	}
}

// Format renders the literal. Fields are zero-padded but never range-checked.
func (l Literal) Format() string {
	switch l.Shape() {
	case ShapeMillis:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
			l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second, l.Millisecond())
	case ShapeSeconds:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ",
			l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second)
	default:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02dZ",
			l.Year, l.Month, l.Day, l.Hour, l.Minute)
	}
}
