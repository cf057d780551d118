// Package parser reads sudoku grids from their textual form: one row per
// line, cells separated by runs of spaces or tabs, '#' starting a comment
// that runs to the end of the line, blank lines ignored. The grid's side
// length is inferred from the first content line.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gfroidcourt/sudoku/internal/grid"
)

// Parse reads one grid from r. name is used in error messages only.
func Parse(r io.Reader, name string) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var g *grid.Grid
	row := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		cells := splitCells(scanner.Text())
		if len(cells) == 0 {
			continue
		}

		if g == nil {
			size := len(cells)
			if !grid.CheckSize(size) {
				return nil, fmt.Errorf("%s: wrong grid size: %d", name, size)
			}
			var err error
			g, err = grid.New(size)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}

		if row >= g.Size() {
			return nil, fmt.Errorf("%s: malformed grid (wrong number of lines)", name)
		}
		if len(cells) != g.Size() {
			return nil, fmt.Errorf("%s: line %d is malformed (wrong number of columns)", name, lineNo)
		}
		for col, c := range cells {
			if !g.CheckChar(c) {
				return nil, fmt.Errorf("%s: wrong character '%c' at line %d", name, c, lineNo)
			}
			g.SetCell(row, col, c)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if g == nil {
		return nil, fmt.Errorf("%s: grid is empty", name)
	}
	if row < g.Size() {
		return nil, fmt.Errorf("%s: grid has %d missing line(s)", name, g.Size()-row)
	}
	return g, nil
}

// ParseFile reads one grid from the file at path.
func ParseFile(path string) (*grid.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	return Parse(file, path)
}

// splitCells returns the cell characters of one line, dropping whitespace
// and anything after a comment marker. Each cell is a single character.
func splitCells(line string) []byte {
	var cells []byte
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case ' ', '\t', '\r':
			continue
		case '#':
			return cells
		default:
			cells = append(cells, c)
		}
	}
	return cells
}
