// Package comm classifies the lines of two sections into first-only,
// second-only and common buckets.
package comm

import "fmt"

// Category is the bucket a distinct line value belongs to.
type Category int

const (
	// FirstOnly lines appear in the first section but not the second.
	FirstOnly Category = iota
	// SecondOnly lines appear in the second section but not the first.
	SecondOnly
	// Common lines appear in both sections.
	Common
)

func (c Category) String() string {
	switch c {
	case FirstOnly:
		return "first-only"
	case SecondOnly:
		return "second-only"
	case Common:
		return "common"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Options controls which categories are reported.
type Options struct {
	// SuppressFirst drops lines only in the first section (-1).
	SuppressFirst bool

	// SuppressSecond drops lines only in the second section (-2).
	SuppressSecond bool

	// SuppressCommon drops lines common to both sections (-3).
	SuppressCommon bool

	// IgnoreCase is accepted on the command line (-i) but comparisons stay
	// case-sensitive.
	IgnoreCase bool
}

// Entry is a line emitted under one category.
type Entry struct {
	Category Category
	Line     string
}

// Result is the ordered classification output.
type Result struct {
	Entries []Entry
	Stats   Stats
}

// Stats counts distinct values per category before suppression is applied.
type Stats struct {
	LinesScanned int
	FirstOnly    int
	SecondOnly   int
	Common       int
}
