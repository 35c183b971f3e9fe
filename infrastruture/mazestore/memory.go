package mazestore

import (
	"context"
	"sync"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
)

// MemoryStore keeps maze documents in process memory. It is the store
// used when no Redis backend is configured.
type MemoryStore struct {
	documents map[uuid.UUID]string
	sync.RWMutex
}

// NewMemoryStore initializes an empty MemoryStore.
func NewMemoryStore() i.MazeStore {
	return &MemoryStore{documents: make(map[uuid.UUID]string)}
}

// Save stores the encoded maze document under id, replacing any previous one.
func (ms *MemoryStore) Save(_ context.Context, id uuid.UUID, document string) error {
	ms.Lock()
	defer ms.Unlock()

	ms.documents[id] = document
	return nil
}

// ByID retrieves the encoded maze document stored under id.
// Returns ErrMazeNotFound when no document exists for id.
func (ms *MemoryStore) ByID(_ context.Context, id uuid.UUID) (string, error) {
	ms.RLock()
	defer ms.RUnlock()

	document, ok := ms.documents[id]
	if !ok {
		return "", i.ErrMazeNotFound
	}

	return document, nil
}
