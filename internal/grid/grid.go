package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/gfroidcourt/sudoku/internal/colors"
	"github.com/gfroidcourt/sudoku/pkg/constants"
)

// colorTable maps color indices to their textual rendering. Index 0 is
// '1', index 35 is '@', index 63 is '*'.
const colorTable = "123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"@" +
	"abcdefghijklmnopqrstuvwxyz" +
	"&*"

// Status is the outcome of a propagation pass over a grid.
type Status int

const (
	StatusSolved Status = iota
	StatusUnsolved
	StatusInconsistent
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolved:
		return "unsolved"
	case StatusInconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// Grid is a square sudoku grid of side size. Cells are candidate color
// sets stored row-major in a single flat buffer, so a deep copy is one
// contiguous memory operation.
type Grid struct {
	size  int
	cells []colors.Set
}

// CheckSize reports whether size is a supported grid side length.
func CheckSize(size int) bool {
	switch size {
	case 1, 4, 9, 16, 25, 36, 49, 64:
		return true
	default:
		return false
	}
}

// New allocates a grid of the given side length with every cell set to the
// full candidate set. Unsupported sizes yield an error.
func New(size int) (*Grid, error) {
	if !CheckSize(size) {
		return nil, fmt.Errorf("invalid grid size: %d", size)
	}
	g := &Grid{
		size:  size,
		cells: make([]colors.Set, size*size),
	}
	full := colors.Full(size)
	for i := range g.cells {
		g.cells[i] = full
	}
	return g, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// blockSide returns the side length of one block. Supported sizes are all
// perfect squares.
func (g *Grid) blockSide() int {
	for b := 1; b*b <= g.size; b++ {
		if b*b == g.size {
			return b
		}
	}
	return 1
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	dup := &Grid{
		size:  g.size,
		cells: make([]colors.Set, len(g.cells)),
	}
	copy(dup.cells, g.cells)
	return dup
}

// Equal reports whether the two grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// Cell returns the candidate set at (row, column), or the empty set when
// the coordinates are out of range.
func (g *Grid) Cell(row, col int) colors.Set {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return colors.Empty()
	}
	return g.cells[row*g.size+col]
}

// setCell overwrites the candidate set at (row, column). Out-of-range
// coordinates are ignored.
func (g *Grid) setCell(row, col int, set colors.Set) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return
	}
	g.cells[row*g.size+col] = set
}

// CheckChar reports whether c is a valid cell character for this grid:
// the empty-cell placeholder or one of the first size color characters.
func (g *Grid) CheckChar(c byte) bool {
	if c == constants.EmptyCell {
		return true
	}
	idx := strings.IndexByte(colorTable, c)
	return idx >= 0 && idx < g.size
}

// SetCell sets the cell at (row, column) from its textual character. A
// known color character fixes the cell to that color; anything else
// resets the cell to the full candidate set. Out-of-range coordinates are
// ignored.
func (g *Grid) SetCell(row, col int, c byte) {
	idx := strings.IndexByte(colorTable, c)
	if c == constants.EmptyCell || idx < 0 || idx >= g.size {
		g.setCell(row, col, colors.Full(g.size))
		return
	}
	g.setCell(row, col, colors.Singleton(idx))
}

// GetCell renders the cell at (row, column). A fixed cell renders as its
// color character, a full cell as the empty-cell placeholder, and any
// other candidate set as the concatenation of its members' characters
// (diagnostic output only; the grid file format does not round-trip
// partial cells). Out-of-range coordinates yield the empty string.
func (g *Grid) GetCell(row, col int) string {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return ""
	}
	cell := g.Cell(row, col)
	if cell.IsSingleton() {
		return string(colorTable[cell.Index()])
	}
	if cell.Equal(colors.Full(g.size)) {
		return string(rune(constants.EmptyCell))
	}
	var sb strings.Builder
	for _, idx := range cell.Elems() {
		sb.WriteByte(colorTable[idx])
	}
	return sb.String()
}

// Rows renders the grid one row per string, cells separated by single
// spaces.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	cells := make([]string, g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			cells[c] = g.GetCell(r, c)
		}
		rows[r] = strings.Join(cells, " ")
	}
	return rows
}

// Write prints the grid to w, one row per line.
func (g *Grid) Write(w io.Writer) error {
	for _, row := range g.Rows() {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}

// IsSolved reports whether every cell is fixed and every unit holds all
// size colors exactly once.
func (g *Grid) IsSolved() bool {
	for _, cell := range g.cells {
		if !cell.IsSingleton() {
			return false
		}
	}
	return g.IsConsistent()
}

// IsConsistent reports whether all 3*size units of the grid are
// consistent.
func (g *Grid) IsConsistent() bool {
	for _, unit := range g.units() {
		if !g.unitConsistent(unit) {
			return false
		}
	}
	return true
}
