package comm

import (
	"github.com/apex/log"

	"github.com/ccollicutt/linetools/pkg/sections"
)

// Classify computes the set difference and intersection of the two sections
// and returns the surviving lines in input order, each at most once.
func Classify(s *sections.Sections, opts Options) *Result {
	first := NewSet(s.First...)
	second := NewSet(s.Second...)

	firstOnly := first.Difference(second)
	secondOnly := second.Difference(first)
	common := first.Intersection(second)

	result := &Result{
		Stats: Stats{
			LinesScanned: len(s.First) + len(s.Second),
			FirstOnly:    len(firstOnly),
			SecondOnly:   len(secondOnly),
			Common:       len(common),
		},
	}

	if opts.SuppressFirst {
		firstOnly = NewSet[string]()
	}
	if opts.SuppressSecond {
		secondOnly = NewSet[string]()
	}
	if opts.SuppressCommon {
		common = NewSet[string]()
	}
	if opts.IgnoreCase {
		log.Debug("ignore-case flag set; comparisons remain case-sensitive")
	}

	buckets := []struct {
		category Category
		members  Set[string]
		printed  Set[string]
	}{
		{FirstOnly, firstOnly, NewSet[string]()},
		{SecondOnly, secondOnly, NewSet[string]()},
		{Common, common, NewSet[string]()},
	}

	for _, line := range s.Lines() {
		for i := range buckets {
			b := &buckets[i]
			if b.members.Has(line) && !b.printed.Has(line) {
				b.printed.Add(line)
				result.Entries = append(result.Entries, Entry{Category: b.category, Line: line})
			}
		}
	}

	log.WithFields(log.Fields{
		"scanned":     result.Stats.LinesScanned,
		"first_only":  result.Stats.FirstOnly,
		"second_only": result.Stats.SecondOnly,
		"common":      result.Stats.Common,
		"emitted":     len(result.Entries),
	}).Debug("classified")

	return result
}
