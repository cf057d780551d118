package constants

// Grid limits
const (
	MaxGridSize = 64
	EmptyCell   = '_'
)

// Solver limits
const (
	SolutionCountLimit = 2
)

// Version reported by the CLI and the API
const Version = "1.0.0"

// Default ports
const DefaultPort = "8080"
