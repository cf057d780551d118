// Package solver implements the depth-first backtracking search over
// candidate grids. Propagation does the heavy lifting; the search only
// branches where deduction alone gets stuck.
package solver

import (
	"io"

	"github.com/gfroidcourt/sudoku/internal/grid"
)

// Mode selects how much of the search tree the solver explores.
type Mode int

const (
	// ModeFirst stops at the first solution found.
	ModeFirst Mode = iota
	// ModeAll enumerates every solution.
	ModeAll
)

// Solve runs the search in the given mode. In ModeFirst it returns one
// solution (or nil) and a count of 0 or 1. In ModeAll it writes every
// solution to out, returns a nil grid and the total count.
func Solve(g *grid.Grid, mode Mode, out io.Writer) (*grid.Grid, int) {
	if mode == ModeAll {
		return nil, SolveAll(g, out)
	}
	solution := SolveFirst(g)
	if solution == nil {
		return nil, 0
	}
	return solution, 1
}

// SolveFirst returns one solution of g, or nil when the puzzle has none.
// The input grid is not mutated.
func SolveFirst(g *grid.Grid) *grid.Grid {
	s := &searcher{}
	return s.run(g.Copy())
}

// SolveAll enumerates every solution of g, writing each to out (separated
// by blank lines) when out is non-nil, and returns the total count. The
// input grid is not mutated.
func SolveAll(g *grid.Grid, out io.Writer) int {
	count := 0
	s := &searcher{
		all: true,
		visit: func(solution *grid.Grid) bool {
			count++
			if out != nil {
				solution.Write(out)
				io.WriteString(out, "\n")
			}
			return true
		},
	}
	s.run(g.Copy())
	return count
}

// CountSolutions counts solutions of g, stopping once max have been
// found. A max of 2 is enough to decide uniqueness. The input grid is not
// mutated.
func CountSolutions(g *grid.Grid, max int) int {
	if max <= 0 {
		return 0
	}
	count := 0
	s := &searcher{
		all: true,
		visit: func(*grid.Grid) bool {
			count++
			return count < max
		},
	}
	s.run(g.Copy())
	return count
}

// HasUniqueSolution reports whether g has exactly one solution.
func HasUniqueSolution(g *grid.Grid) bool {
	return CountSolutions(g, 2) == 1
}

// searcher holds the traversal state for one solve call. In all mode,
// visit is called once per solution and may return false to stop the
// search early.
type searcher struct {
	all     bool
	visit   func(*grid.Grid) bool
	stopped bool
}

// run searches g depth-first. In first mode it returns the first solution
// found; in all mode it explores every branch until visit asks it to stop
// and always returns nil. The "try with color" branch operates on a
// deep-copy snapshot while the "without color" branch refines g itself,
// so the two subtrees never see each other's mutations and no solution is
// reported twice.
func (s *searcher) run(g *grid.Grid) *grid.Grid {
	if s.stopped {
		return nil
	}

	switch g.Heuristics() {
	case grid.StatusSolved:
		if s.all {
			if !s.visit(g) {
				s.stopped = true
			}
			return nil
		}
		return g
	case grid.StatusInconsistent:
		return nil
	}

	ch := g.Choose()
	if ch.IsEmpty() {
		return nil
	}

	snapshot := g.Copy()
	ch.Apply(snapshot)
	if solution := s.run(snapshot); !s.all && solution != nil {
		return solution
	}

	ch.Discard(g)
	return s.run(g)
}
