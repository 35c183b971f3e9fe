package mazestore

import (
	"context"
	"testing"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips a stored document", func(t *testing.T) {
		store := NewMemoryStore()
		id := uuid.New()

		err := store.Save(ctx, id, "D3\nFE\n\n0,0\n1,1\nES\n")
		assert.NoError(t, err)

		document, err := store.ByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "D3\nFE\n\n0,0\n1,1\nES\n", document)
	})

	t.Run("save replaces the previous document", func(t *testing.T) {
		store := NewMemoryStore()
		id := uuid.New()

		assert.NoError(t, store.Save(ctx, id, "first"))
		assert.NoError(t, store.Save(ctx, id, "second"))

		document, err := store.ByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "second", document)
	})

	t.Run("keeps documents apart by id", func(t *testing.T) {
		store := NewMemoryStore()
		first, second := uuid.New(), uuid.New()

		assert.NoError(t, store.Save(ctx, first, "first"))
		assert.NoError(t, store.Save(ctx, second, "second"))

		document, err := store.ByID(ctx, first)
		assert.NoError(t, err)
		assert.Equal(t, "first", document)
	})

	t.Run("missing id reports ErrMazeNotFound", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})
}
