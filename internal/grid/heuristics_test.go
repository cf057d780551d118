package grid

import (
	"testing"

	"github.com/gfroidcourt/sudoku/internal/colors"
)

// ============================================================================
// Per-rule tests (single unit)
// ============================================================================

func TestCrossHatch(t *testing.T) {
	g, _ := New(4)
	g.SetCell(0, 0, '1')
	row0 := g.units()[0]

	if !g.crossHatch(row0) {
		t.Fatal("cross-hatching a row with one fixed cell must change it")
	}
	for c := 1; c < 4; c++ {
		if g.Cell(0, c).Contains(0) {
			t.Errorf("cell (0,%d) still holds the fixed color", c)
		}
	}
	if g.Cell(0, 0) != colors.Singleton(0) {
		t.Error("the fixed cell itself must keep its color")
	}
	if g.crossHatch(row0) {
		t.Error("a second pass over the same row must change nothing")
	}
}

func TestLoneNumber(t *testing.T) {
	g, _ := New(4)
	// Remove color 2 from every cell of row 0 but the last
	for c := 0; c < 3; c++ {
		g.setCell(0, c, colors.Full(4).Discard(2))
	}
	row0 := g.units()[0]

	if !g.loneNumber(row0) {
		t.Fatal("lone number must fire when one cell alone can take a color")
	}
	if g.Cell(0, 3) != colors.Singleton(2) {
		t.Errorf("cell (0,3) = %b, want singleton of color 2", g.Cell(0, 3))
	}
	if g.loneNumber(row0) {
		t.Error("a second pass over the same row must change nothing")
	}
}

func TestNakedSubset(t *testing.T) {
	g, _ := New(4)
	// Two cells of row 0 sharing the naked pair {0,1}
	pair := colors.Singleton(0).Add(1)
	g.setCell(0, 0, pair)
	g.setCell(0, 1, pair)
	row0 := g.units()[0]

	if !g.nakedSubset(row0) {
		t.Fatal("a naked pair must strip its colors from the rest of the unit")
	}
	for c := 2; c < 4; c++ {
		if g.Cell(0, c).And(pair) != 0 {
			t.Errorf("cell (0,%d) = %b still holds pair colors", c, g.Cell(0, c))
		}
	}
	if g.Cell(0, 0) != pair || g.Cell(0, 1) != pair {
		t.Error("the pair cells themselves must be untouched")
	}
	if g.nakedSubset(row0) {
		t.Error("a second pass over the same row must change nothing")
	}
}

func TestNakedSubsetIgnoresFullCells(t *testing.T) {
	g, _ := New(4)
	row0 := g.units()[0]
	// All cells full: the full set is not a usable subset
	if g.nakedSubset(row0) {
		t.Error("a unit of full cells must produce no deduction")
	}
}

// ============================================================================
// TestHeuristics (grid-level fixed point)
// ============================================================================

func TestHeuristics(t *testing.T) {
	t.Run("already solved grid", func(t *testing.T) {
		g := fromRows(t, solvedRows9...)
		before := g.Copy()
		if got := g.Heuristics(); got != StatusSolved {
			t.Errorf("Heuristics = %v, want solved", got)
		}
		if !g.Equal(before) {
			t.Error("propagation over a solved grid must change nothing")
		}
	})

	t.Run("inconsistent grid", func(t *testing.T) {
		g, _ := New(9)
		g.SetCell(0, 0, '5')
		g.SetCell(0, 7, '5')
		if got := g.Heuristics(); got != StatusInconsistent {
			t.Errorf("Heuristics = %v, want inconsistent", got)
		}
	})

	t.Run("empty grid stays unsolved", func(t *testing.T) {
		g, _ := New(9)
		if got := g.Heuristics(); got != StatusUnsolved {
			t.Errorf("Heuristics = %v, want unsolved", got)
		}
	})

	t.Run("propagation alone solves an easy 4x4", func(t *testing.T) {
		g := fromRows(t,
			"1 2 _ _",
			"3 4 _ _",
			"_ _ 4 _",
			"_ _ _ 1",
		)
		if got := g.Heuristics(); got != StatusSolved {
			t.Fatalf("Heuristics = %v, want solved", got)
		}
		want := []string{"1 2 3 4", "3 4 1 2", "2 1 4 3", "4 3 2 1"}
		for i, row := range g.Rows() {
			if row != want[i] {
				t.Errorf("row %d = %q, want %q", i, row, want[i])
			}
		}
	})

	t.Run("monotone: candidates only shrink", func(t *testing.T) {
		g := fromRows(t,
			"1 _ _ 4",
			"_ _ _ _",
			"_ 1 _ _",
			"_ _ 2 _",
		)
		before := g.Copy()
		g.Heuristics()
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if !g.Cell(r, c).IsSubset(before.Cell(r, c)) {
					t.Errorf("cell (%d,%d) grew from %b to %b",
						r, c, before.Cell(r, c), g.Cell(r, c))
				}
			}
		}
	})

	t.Run("idempotent at the fixed point", func(t *testing.T) {
		g := fromRows(t,
			"1 _ _ 4",
			"_ _ _ _",
			"_ 1 _ _",
			"_ _ 2 _",
		)
		first := g.Heuristics()
		after := g.Copy()
		second := g.Heuristics()
		if first != second {
			t.Errorf("second pass returned %v, first returned %v", second, first)
		}
		if !g.Equal(after) {
			t.Error("a second pass over a fixed point must change nothing")
		}
	})

	t.Run("soundness: the solution survives propagation", func(t *testing.T) {
		solution := fromRows(t, solvedRows9...)
		g := fromRows(t,
			"1 _ 3 _ 5 _ 7 _ 9",
			"_ 5 _ 7 _ 9 _ 2 _",
			"7 _ 9 _ 2 _ 4 _ 6",
			"_ 3 _ 5 _ 7 _ 9 _",
			"5 _ 7 _ 9 _ 2 _ 4",
			"_ 9 _ 2 _ 4 _ 6 _",
			"3 _ 5 _ 7 _ 9 _ 2",
			"_ 7 _ 9 _ 2 _ 4 _",
			"9 _ 2 _ 4 _ 6 _ 8",
		)
		g.Heuristics()
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				want := solution.Cell(r, c)
				if !want.IsSubset(g.Cell(r, c)) {
					t.Errorf("propagation removed the solution color at (%d,%d)", r, c)
				}
			}
		}
	})
}
