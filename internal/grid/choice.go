package grid

import (
	"fmt"

	"github.com/gfroidcourt/sudoku/internal/colors"
)

// Choice is a trial assignment of one color to one cell, used to branch
// the search. An empty color set marks the absence of a choice.
type Choice struct {
	Row   int
	Col   int
	Color colors.Set
}

// Choose picks the undecided cell with the fewest candidates, scanning
// row-major with first-found winning ties, and selects its lowest
// candidate color. Minimum remaining values keeps the branching factor
// small; the rightmost-bit rule keeps the search deterministic. If every
// cell is fixed the empty choice is returned.
func (g *Grid) Choose() Choice {
	best := Choice{}
	bestCount := colors.MaxColors + 1
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			cell := g.Cell(r, c)
			count := cell.Count()
			if count >= 2 && count < bestCount {
				best = Choice{Row: r, Col: c, Color: cell.Rightmost()}
				bestCount = count
			}
		}
	}
	return best
}

// IsEmpty reports whether the choice carries no color.
func (c Choice) IsEmpty() bool {
	return c.Color == colors.Empty()
}

// Apply fixes the choice's cell to the chosen color.
func (c Choice) Apply(g *Grid) {
	g.setCell(c.Row, c.Col, c.Color)
}

// Discard removes the chosen color from the cell's candidates.
func (c Choice) Discard(g *Grid) {
	g.setCell(c.Row, c.Col, g.Cell(c.Row, c.Col).Subtract(c.Color))
}

func (c Choice) String() string {
	if c.IsEmpty() {
		return "choice: none"
	}
	return fmt.Sprintf("choice: (%d,%d) = '%c'", c.Row, c.Col, colorTable[c.Color.Index()])
}
