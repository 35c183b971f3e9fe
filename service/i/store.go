package i

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by MazeStore implementations when no
// document is stored under the requested ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeStore defines the interface for maze document persistence.
type MazeStore interface {
	// Save stores the encoded maze document under id.
	// If a document already exists for id, it is replaced.
	Save(ctx context.Context, id uuid.UUID, document string) error

	// ByID retrieves the encoded maze document stored under id.
	// Returns ErrMazeNotFound when no document exists for id.
	ByID(ctx context.Context, id uuid.UUID) (string, error)
}
