package grid

import "github.com/gfroidcourt/sudoku/internal/colors"

// A unit is one row, column, or block, described by the flat indices of
// its size cells. Units carry no cell storage of their own; all reads and
// writes go through the owning grid, which keeps them cheap, stateless
// descriptors valid for the duration of one pass.
type unit []int

// units enumerates the 3*size units of the grid: rows first, then
// columns, then blocks in row-major block order (cells row-major within
// each block).
func (g *Grid) units() []unit {
	n := g.size
	b := g.blockSide()
	all := make([]unit, 0, 3*n)

	for r := 0; r < n; r++ {
		u := make(unit, n)
		for c := 0; c < n; c++ {
			u[c] = r*n + c
		}
		all = append(all, u)
	}

	for c := 0; c < n; c++ {
		u := make(unit, n)
		for r := 0; r < n; r++ {
			u[r] = r*n + c
		}
		all = append(all, u)
	}

	for blk := 0; blk < n; blk++ {
		u := make(unit, 0, n)
		baseRow := (blk / b) * b
		baseCol := (blk % b) * b
		for r := baseRow; r < baseRow+b; r++ {
			for c := baseCol; c < baseCol+b; c++ {
				u = append(u, r*n+c)
			}
		}
		all = append(all, u)
	}

	return all
}

// unitConsistent reports whether the unit holds no empty cell, no two
// fixed cells of the same color, and candidates covering all size colors.
func (g *Grid) unitConsistent(u unit) bool {
	var union, singletons colors.Set
	for _, idx := range u {
		cell := g.cells[idx]
		if cell == 0 {
			return false
		}
		if cell.IsSingleton() {
			if singletons.And(cell) != 0 {
				return false
			}
			singletons = singletons.Or(cell)
		}
		union = union.Or(cell)
	}
	return union.And(colors.Full(g.size)).Count() >= g.size
}
