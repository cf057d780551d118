package grid

import "github.com/gfroidcourt/sudoku/internal/colors"

// The three deductive rules below operate on one unit at a time. Each is
// sound: it never removes a candidate that belongs to any solution
// extending the current grid. Each returns whether it changed a cell.

// crossHatch removes every fixed color of the unit from the candidate
// sets of the non-fixed cells.
func (g *Grid) crossHatch(u unit) bool {
	var fixed colors.Set
	for _, idx := range u {
		if cell := g.cells[idx]; cell.IsSingleton() {
			fixed = fixed.Or(cell)
		}
	}
	if fixed == 0 {
		return false
	}

	changed := false
	for _, idx := range u {
		cell := g.cells[idx]
		if cell.IsSingleton() {
			continue
		}
		if reduced := cell.Subtract(fixed); reduced != cell {
			g.cells[idx] = reduced
			changed = true
		}
	}
	return changed
}

// loneNumber fixes any color that only one cell of the unit can still
// take.
func (g *Grid) loneNumber(u unit) bool {
	changed := false
	for k := 0; k < g.size; k++ {
		count := 0
		last := -1
		for _, idx := range u {
			if g.cells[idx].Contains(k) {
				count++
				last = idx
				if count > 1 {
					break
				}
			}
		}
		if count == 1 && !g.cells[last].IsSingleton() {
			g.cells[last] = colors.Singleton(k)
			changed = true
		}
	}
	return changed
}

// nakedSubset finds n cells of the unit sharing the same n-candidate set
// and removes those candidates from every other cell. The n=1 case
// subsumes cross-hatching; the general case handles naked pairs, triples,
// and so on. Empty and full sets produce no deduction and are skipped.
func (g *Grid) nakedSubset(u unit) bool {
	changed := false
	for _, idx := range u {
		set := g.cells[idx]
		n := set.Count()
		if n == 0 || n >= g.size {
			continue
		}
		count := 0
		for _, other := range u {
			if g.cells[other] == set {
				count++
			}
		}
		if count != n {
			continue
		}
		for _, other := range u {
			cell := g.cells[other]
			if cell == set {
				continue
			}
			if reduced := cell.Subtract(set); reduced != cell {
				g.cells[other] = reduced
				changed = true
			}
		}
	}
	return changed
}

// applyUnit runs the rules on one unit, returning as soon as one of them
// reports a change; the outer fixed-point loop revisits the unit anyway.
func (g *Grid) applyUnit(u unit) bool {
	if g.crossHatch(u) {
		return true
	}
	if g.loneNumber(u) {
		return true
	}
	return g.nakedSubset(u)
}

// Heuristics runs the deductive rules over every unit until a full pass
// changes nothing, then reports the grid's state. Termination is
// guaranteed because every change strictly decreases the total candidate
// count.
func (g *Grid) Heuristics() Status {
	units := g.units()

	for changed := true; changed; {
		changed = false
		for _, u := range units {
			for g.applyUnit(u) {
				changed = true
			}
		}
	}

	for _, u := range units {
		if !g.unitConsistent(u) {
			return StatusInconsistent
		}
	}
	for _, cell := range g.cells {
		if !cell.IsSingleton() {
			return StatusUnsolved
		}
	}
	return StatusSolved
}
