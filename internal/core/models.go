package core

import "time"

// Mode names accepted by the solve API.
const (
	ModeFirst = "first"
	ModeAll   = "all"
)

// Puzzle is a stored generated puzzle.
type Puzzle struct {
	ID        string    `json:"id"`
	Size      int       `json:"size"`
	Rows      []string  `json:"rows"`
	Unique    bool      `json:"unique"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// SolveReport is the outcome of running the solver over a submitted grid.
type SolveReport struct {
	Status    string   `json:"status"`
	Rows      []string `json:"rows,omitempty"`
	Solutions int      `json:"solutions"`
}
