// Package combine enumerates the colour sets the combination stage sums
// counts over: every extension of a base colour set by unused colours, up
// to the size of the pattern.
package combine

import (
	"fmt"
	"io"
	"strings"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils/set"
)

// Group holds the candidate colour sets obtained by adding Added colours to
// the base.
type Group struct {
	Added      int
	Candidates []graph.ColorSet
}

type Expander struct {
	Universe    graph.ColorSet
	PatternSize int
	MinSize     int
}

func (e Expander) Expand(base graph.ColorSet) []Group {
	return Expand(base, e.Universe, e.PatternSize, e.MinSize)
}

// Expand extends base by every subset of the unused colours of universe
// whose size k satisfies minSize-|base| <= k <= patternSize-|base| (k >= 0).
// Groups are ordered by k descending, candidates within a group by the
// lexicographic order of the added colours. Sizes without candidates are
// skipped.
func Expand(base, universe graph.ColorSet, patternSize, minSize int) []Group {
	base = graph.NewColorSet(base...)
	unused := graph.NewColorSet(universe...).Minus(base)

	lo := minSize - len(base)
	if lo < 0 {
		lo = 0
	}
	hi := patternSize - len(base)

	var groups []Group
	for k := hi; k >= lo; k-- {
		var candidates []graph.ColorSet
		set.Subsets(unused).Combinations(k, func(added []graph.Color) {
			candidates = append(candidates, base.Union(added))
		})

		if len(candidates) > 0 {
			groups = append(groups, Group{Added: k, Candidates: candidates})
		}
	}

	return groups
}

// MinSizeFromCounts returns the size of the smallest colour set with a
// recorded count, or 0 if there is none.
func MinSizeFromCounts(sets []graph.ColorSet) int {
	if len(sets) == 0 {
		return 0
	}

	min := len(sets[0])
	for _, s := range sets[1:] {
		if len(s) < min {
			min = len(s)
		}
	}
	return min
}

func plain(cs graph.ColorSet) string {
	strs := make([]string, len(cs))
	for i, c := range cs {
		strs[i] = fmt.Sprint(c)
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

// WriteGroups prints one line per group.
func WriteGroups(w io.Writer, base graph.ColorSet, groups []Group) error {
	if _, err := fmt.Fprintf(w, "base %s\n", plain(base)); err != nil {
		return err
	}
	for _, g := range groups {
		strs := make([]string, len(g.Candidates))
		for i, c := range g.Candidates {
			strs[i] = plain(c)
		}
		if _, err := fmt.Fprintf(w, "+%d: %s\n", g.Added, strings.Join(strs, " ")); err != nil {
			return err
		}
	}
	return nil
}
