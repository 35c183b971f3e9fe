package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/render"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	saved   map[uuid.UUID]string
	saveErr error
}

func newStubStore() *stubStore {
	return &stubStore{saved: make(map[uuid.UUID]string)}
}

func (s *stubStore) Save(_ context.Context, id uuid.UUID, document string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved[id] = document
	return nil
}

func (s *stubStore) ByID(_ context.Context, id uuid.UUID) (string, error) {
	document, ok := s.saved[id]
	if !ok {
		return "", i.ErrMazeNotFound
	}
	return document, nil
}

func testSpec() *i.MazeSpec {
	return &i.MazeSpec{
		Width:  8,
		Height: 8,
		Entry:  maze.Pos{Row: 0, Col: 0},
		Exit:   maze.Pos{Row: 7, Col: 7},
		Algo:   config.AlgoDFS,
		Seed:   5,
	}
}

func quietLogger() *log.Logger {
	return log.New(&strings.Builder{}, "", 0)
}

func TestNewMazeService(t *testing.T) {
	t.Run("rejects a nil store", func(t *testing.T) {
		_, err := NewMazeService(nil, quietLogger())
		assert.Error(t, err)
	})

	t.Run("defaults the logger", func(t *testing.T) {
		svc, err := NewMazeService(newStubStore(), nil)
		assert.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestBuildMaze(t *testing.T) {
	t.Run("rejects an unknown algorithm", func(t *testing.T) {
		spec := testSpec()
		spec.Algo = "KRUSKAL"

		_, _, err := BuildMaze(spec)
		assert.ErrorIs(t, err, i.ErrUnknownAlgo)
	})

	t.Run("empty algorithm falls back to DFS", func(t *testing.T) {
		withAlgo := testSpec()
		noAlgo := testSpec()
		noAlgo.Algo = ""

		a, _, err := BuildMaze(withAlgo)
		require.NoError(t, err)
		b, _, err := BuildMaze(noAlgo)
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("surfaces dimension errors", func(t *testing.T) {
		spec := testSpec()
		spec.Width = 0

		_, _, err := BuildMaze(spec)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("solves the maze it carves", func(t *testing.T) {
		spec := testSpec()

		m, path, err := BuildMaze(spec)
		require.NoError(t, err)
		require.NotNil(t, path)
		assert.Equal(t, m.Entry, path[0])
		assert.Equal(t, m.Exit, path[len(path)-1])
	})
}

func TestMazeServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a decodable document", func(t *testing.T) {
		store := newStubStore()
		svc, err := NewMazeService(store, quietLogger())
		require.NoError(t, err)

		summary, err := svc.Create(ctx, testSpec())
		require.NoError(t, err)
		assert.Equal(t, 8, summary.Width)
		assert.Equal(t, 8, summary.Height)
		assert.True(t, summary.Solvable)

		document, ok := store.saved[summary.ID]
		require.True(t, ok)
		m, path, err := maze.Decode(strings.NewReader(document))
		require.NoError(t, err)
		assert.Equal(t, maze.Pos{Row: 0, Col: 0}, m.Entry)
		assert.NotNil(t, path)
	})

	t.Run("same seed stores the same document", func(t *testing.T) {
		store := newStubStore()
		svc, err := NewMazeService(store, quietLogger())
		require.NoError(t, err)

		first, err := svc.Create(ctx, testSpec())
		require.NoError(t, err)
		second, err := svc.Create(ctx, testSpec())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, store.saved[first.ID], store.saved[second.ID])
	})

	t.Run("accepts the PRIME algorithm", func(t *testing.T) {
		store := newStubStore()
		svc, err := NewMazeService(store, quietLogger())
		require.NoError(t, err)

		spec := testSpec()
		spec.Algo = config.AlgoPrime
		summary, err := svc.Create(ctx, spec)
		require.NoError(t, err)
		assert.True(t, summary.Solvable)
	})

	t.Run("rejects an unknown algorithm", func(t *testing.T) {
		svc, err := NewMazeService(newStubStore(), quietLogger())
		require.NoError(t, err)

		spec := testSpec()
		spec.Algo = "WILSON"
		_, err = svc.Create(ctx, spec)
		assert.ErrorIs(t, err, i.ErrUnknownAlgo)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		store := newStubStore()
		store.saveErr = errors.New("redis gone")
		svc, err := NewMazeService(store, quietLogger())
		require.NoError(t, err)

		_, err = svc.Create(ctx, testSpec())
		assert.ErrorContains(t, err, "redis gone")
	})
}

func TestMazeServiceReads(t *testing.T) {
	ctx := context.Background()
	store := newStubStore()
	svc, err := NewMazeService(store, quietLogger())
	require.NoError(t, err)

	summary, err := svc.Create(ctx, testSpec())
	require.NoError(t, err)

	t.Run("document round trips", func(t *testing.T) {
		document, err := svc.Document(ctx, summary.ID)
		require.NoError(t, err)
		assert.Equal(t, store.saved[summary.ID], document)
	})

	t.Run("solve matches the stored path line", func(t *testing.T) {
		solution, err := svc.Solve(ctx, summary.ID)
		require.NoError(t, err)
		assert.True(t, solution.Solvable)
		assert.Equal(t, solution.Length-1, len(solution.Moves))
		assert.Contains(t, store.saved[summary.ID], solution.Moves+"\n")
	})

	t.Run("render marks the solution walk", func(t *testing.T) {
		art, err := svc.Render(ctx, summary.ID, 0)
		require.NoError(t, err)
		theme := render.ThemeAt(0)
		assert.Contains(t, art, theme.Entry)
		assert.Contains(t, art, theme.Exit)
		assert.Contains(t, art, theme.Solution)
	})

	t.Run("theme index selects the palette", func(t *testing.T) {
		art, err := svc.Render(ctx, summary.ID, 2)
		require.NoError(t, err)
		assert.Contains(t, art, render.ThemeAt(2).Walls)
	})

	t.Run("missing maze reports ErrMazeNotFound", func(t *testing.T) {
		_, err := svc.Document(ctx, uuid.New())
		assert.ErrorIs(t, err, i.ErrMazeNotFound)

		_, err = svc.Solve(ctx, uuid.New())
		assert.ErrorIs(t, err, i.ErrMazeNotFound)

		_, err = svc.Render(ctx, uuid.New(), 0)
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})

	t.Run("corrupt stored document is an error", func(t *testing.T) {
		id := uuid.New()
		store.saved[id] = "not a maze"

		_, err := svc.Solve(ctx, id)
		assert.ErrorIs(t, err, maze.ErrMalformedDocument)
	})
}
