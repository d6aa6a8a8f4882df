// Package mergeorder computes a deterministic, cycle-free merge order
// for the items of a validated plan.
//
// The result is a sequence of levels: every item in a level has all of
// its dependencies satisfied by earlier levels, so the items of one
// level can be merged together as a batch. Determinism is a correctness
// requirement here — the same logical graph must always produce the same
// level grouping, irrespective of declaration order — so every node and
// child iteration is sorted lexicographically before it feeds the output
// or the in-degree propagation.
package mergeorder

import (
	"sort"

	lexerrors "lexpr.dev/lexpr/internal/errors"
	"lexpr.dev/lexpr/internal/plan"
)

// Levels returns the topological levels of the items' resolved names
// using a leveled variant of Kahn's algorithm.
//
// Items are assumed shape-validated; this function re-checks only
// referential integrity and acyclicity. A deps entry naming a missing
// item fails immediately with *errors.UnknownDependencyError, reporting
// the first violation in item-then-dep order. A residual cycle fails
// with *errors.CycleError.
func Levels(items []plan.Item) ([][]string, error) {
	names := make([]string, len(items))
	nameSet := make(map[string]struct{}, len(items))
	for i, item := range items {
		names[i] = item.ResolvedName()
		nameSet[names[i]] = struct{}{}
	}

	inDegree := make(map[string]int, len(names))
	for _, name := range names {
		inDegree[name] = 0
	}

	children := make(map[string][]string)
	for i, item := range items {
		me := names[i]
		for _, dep := range item.Deps {
			if _, ok := nameSet[dep]; !ok {
				return nil, lexerrors.NewUnknownDependencyError(me, dep)
			}
			children[dep] = append(children[dep], me)
			inDegree[me]++
		}
	}

	var frontier []string
	for _, name := range names {
		if inDegree[name] == 0 {
			frontier = append(frontier, name)
		}
	}
	sort.Strings(frontier)

	var levels [][]string
	for len(frontier) > 0 {
		level := frontier
		sort.Strings(level)
		levels = append(levels, level)

		// Children unlocked here form the next level, never the
		// current one; that is what makes the order level-by-level
		// rather than a flat sequence.
		frontier = nil
		for _, name := range level {
			kids := append([]string(nil), children[name]...)
			sort.Strings(kids)
			for _, kid := range kids {
				inDegree[kid]--
				if inDegree[kid] == 0 {
					frontier = append(frontier, kid)
				}
			}
		}
	}

	for _, degree := range inDegree {
		if degree > 0 {
			return nil, lexerrors.NewCycleError()
		}
	}

	return levels, nil
}
