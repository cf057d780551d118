package http

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gfroidcourt/sudoku/internal/core"
	"github.com/gfroidcourt/sudoku/internal/generator"
	"github.com/gfroidcourt/sudoku/internal/grid"
	"github.com/gfroidcourt/sudoku/internal/parser"
	"github.com/gfroidcourt/sudoku/internal/puzzles"
	"github.com/gfroidcourt/sudoku/internal/solver"
	"github.com/gfroidcourt/sudoku/pkg/config"
	"github.com/gfroidcourt/sudoku/pkg/constants"
)

// defaultMaxSolutions caps all-mode enumeration over HTTP so a wide-open
// grid cannot pin the server.
const defaultMaxSolutions = 1000

var (
	cfg   *config.Config
	store *puzzles.Store
)

func RegisterRoutes(r *gin.Engine, c *config.Config, s *puzzles.Store) {
	cfg = c
	store = s

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/check", checkHandler)
		api.POST("/generate", generateHandler)
		api.GET("/puzzle/:id", puzzleHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.Version,
	})
}

// parseRows turns the request's row strings into a grid, reusing the file
// parser so the HTTP surface accepts exactly the textual grid format.
func parseRows(rows []string) (*grid.Grid, error) {
	return parser.Parse(strings.NewReader(strings.Join(rows, "\n")), "request")
}

type solveRequest struct {
	Rows         []string `json:"rows" binding:"required"`
	Mode         string   `json:"mode"`
	MaxSolutions int      `json:"max_solutions"`
}

func solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	g, err := parseRows(req.Rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Mode {
	case "", core.ModeFirst:
		solution := solver.SolveFirst(g)
		if solution == nil {
			c.JSON(http.StatusOK, core.SolveReport{Status: "no_solution"})
			return
		}
		c.JSON(http.StatusOK, core.SolveReport{
			Status:    "solved",
			Rows:      solution.Rows(),
			Solutions: 1,
		})

	case core.ModeAll:
		max := req.MaxSolutions
		if max <= 0 || max > defaultMaxSolutions {
			max = defaultMaxSolutions
		}
		count := solver.CountSolutions(g, max)
		status := "done"
		if count == 0 {
			status = "no_solution"
		}
		c.JSON(http.StatusOK, core.SolveReport{Status: status, Solutions: count})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_mode"})
	}
}

type checkRequest struct {
	Rows []string `json:"rows" binding:"required"`
}

func checkHandler(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	g, err := parseRows(req.Rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"size":       g.Size(),
		"consistent": g.IsConsistent(),
		"solved":     g.IsSolved(),
	})
}

type generateRequest struct {
	Size   int    `json:"size" binding:"required"`
	Unique bool   `json:"unique"`
	Seed   *int64 `json:"seed"`
}

func generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if !grid.CheckSize(req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_size"})
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	g, err := generator.New(seed).Generate(req.Size, req.Unique)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation_failed"})
		return
	}

	p := core.Puzzle{
		ID:        uuid.New().String(),
		Size:      req.Size,
		Rows:      g.Rows(),
		Unique:    req.Unique,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}

	if store != nil {
		if err := store.Save(p); err != nil {
			log.Printf("saving puzzle %s: %v", p.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage_failed"})
			return
		}
	}

	c.JSON(http.StatusOK, p)
}

func puzzleHandler(c *gin.Context) {
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no_store"})
		return
	}

	p, err := store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, puzzles.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage_failed"})
		return
	}

	c.JSON(http.StatusOK, p)
}
