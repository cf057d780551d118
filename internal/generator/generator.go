// Package generator produces sudoku grids: a randomized backtracking fill
// builds a complete solution, then cells are carved away to leave a
// puzzle, optionally preserving solution uniqueness.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/gfroidcourt/sudoku/internal/grid"
	"github.com/gfroidcourt/sudoku/internal/solver"
)

// Generator carries the single seeded random source used for filling and
// carving, so a fixed seed reproduces the same grids.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Full generates a complete solved grid of the given size.
func (gen *Generator) Full(size int) (*grid.Grid, error) {
	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	solution := gen.fill(g)
	if solution == nil {
		return nil, fmt.Errorf("could not fill grid of size %d", size)
	}
	return solution, nil
}

// Generate generates a puzzle of the given size. With unique set, cells
// are only removed while the puzzle keeps exactly one solution; without
// it, carving stops at the target clue count regardless.
func (gen *Generator) Generate(size int, unique bool) (*grid.Grid, error) {
	solution, err := gen.Full(size)
	if err != nil {
		return nil, err
	}
	return gen.carve(solution, unique), nil
}

// fill solves g picking random candidates, which turns the solver's
// deterministic descent into a randomized grid sampler. Propagation runs
// between picks so dead branches die early.
func (gen *Generator) fill(g *grid.Grid) *grid.Grid {
	switch g.Heuristics() {
	case grid.StatusSolved:
		return g
	case grid.StatusInconsistent:
		return nil
	}

	ch := g.Choose()
	if ch.IsEmpty() {
		return nil
	}

	remaining := g.Cell(ch.Row, ch.Col)
	for remaining != 0 {
		pick := remaining.Random(gen.rng)
		snapshot := g.Copy()
		grid.Choice{Row: ch.Row, Col: ch.Col, Color: pick}.Apply(snapshot)
		if solution := gen.fill(snapshot); solution != nil {
			return solution
		}
		remaining = remaining.Subtract(pick)
	}
	return nil
}

// carve blanks cells of a solved grid in random order until only the
// target clue count remains. In unique mode a removal that lets a second
// solution in is undone.
func (gen *Generator) carve(solution *grid.Grid, unique bool) *grid.Grid {
	size := solution.Size()
	puzzle := solution.Copy()
	target := size * size * 2 / 5
	clues := size * size

	for _, pos := range gen.rng.Perm(size * size) {
		if clues <= target {
			break
		}
		row, col := pos/size, pos%size
		old := solution.GetCell(row, col)

		puzzle.SetCell(row, col, '_')
		if unique && !solver.HasUniqueSolution(puzzle) {
			puzzle.SetCell(row, col, old[0])
			continue
		}
		clues--
	}
	return puzzle
}
