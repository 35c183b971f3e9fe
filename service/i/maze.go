package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// ErrUnknownAlgo is returned by MazeService implementations when a spec
// names a generation algorithm that is neither DFS nor PRIME.
var ErrUnknownAlgo = errors.New("unknown generation algorithm")

// MazeSpec describes a maze to generate.
type MazeSpec struct {
	Width   int
	Height  int
	Entry   maze.Pos
	Exit    maze.Pos
	Perfect bool
	Algo    string
	Seed    int64
}

// MazeSummary describes a stored maze.
type MazeSummary struct {
	ID       uuid.UUID
	Width    int
	Height   int
	Solvable bool
}

// Solution is the shortest entry to exit walk of a stored maze.
type Solution struct {
	// Solvable reports whether the exit is reachable from the entry.
	Solvable bool

	// Length is the number of cells on the walk, zero when Solvable is false.
	Length int

	// Moves lists the walk step by step as N, S, E and W letters.
	Moves string
}

// MazeService defines the interface for generating and serving mazes.
type MazeService interface {
	// Create generates a maze from spec, stores its encoded document and
	// returns a summary of the new maze.
	Create(ctx context.Context, spec *MazeSpec) (*MazeSummary, error)

	// Document retrieves the encoded document of the maze stored under id.
	// Returns ErrMazeNotFound when no maze exists for id.
	Document(ctx context.Context, id uuid.UUID) (string, error)

	// Solve returns the shortest entry to exit walk of the maze stored
	// under id.
	Solve(ctx context.Context, id uuid.UUID) (*Solution, error)

	// Render draws the maze stored under id as colored terminal text,
	// with the solution walk marked when one exists. The theme index
	// selects the color palette.
	Render(ctx context.Context, id uuid.UUID, theme int) (string, error)
}
