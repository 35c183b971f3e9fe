package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/render"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
)

// MazeService generates mazes and serves them from a MazeStore.
type MazeService struct {
	store  i.MazeStore
	logger *log.Logger
}

// NewMazeService initializes a MazeService backed by the given store.
func NewMazeService(store i.MazeStore, logger *log.Logger) (i.MazeService, error) {
	if store == nil {
		return nil, errors.New("nil maze store")
	}
	if logger == nil {
		logger = log.Default()
	}

	return &MazeService{
		store:  store,
		logger: logger,
	}, nil
}

// SpecOf lifts a parsed maze config file into a generation spec.
func SpecOf(cfg *config.MazeConfig) *i.MazeSpec {
	return &i.MazeSpec{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Entry:   cfg.Entry,
		Exit:    cfg.Exit,
		Perfect: cfg.Perfect,
		Algo:    cfg.Algo,
		Seed:    cfg.Seed,
	}
}

// BuildMaze generates a maze according to spec and returns it together
// with its shortest entry to exit walk, nil when the exit is
// unreachable. A zero seed carves a different maze on every call.
func BuildMaze(spec *i.MazeSpec) (*maze.Maze, []maze.Pos, error) {
	m, err := maze.New(spec.Height, spec.Width, spec.Entry, spec.Exit, spec.Perfect, nil)
	if err != nil {
		return nil, nil, err
	}

	rng := maze.NewRand(spec.Seed)
	switch spec.Algo {
	case "", config.AlgoDFS:
		err = m.GenerateBacktracker(spec.Entry, rng)
	case config.AlgoPrime:
		err = m.GenerateFrontier(spec.Entry, rng)
	default:
		return nil, nil, fmt.Errorf("%w: %q", i.ErrUnknownAlgo, spec.Algo)
	}
	if err != nil {
		return nil, nil, err
	}
	m.Braid()

	return m, m.SolveBFS(m.Entry, m.Exit), nil
}

// Create generates a maze from spec, stores its encoded document and
// returns a summary of the new maze.
func (s *MazeService) Create(ctx context.Context, spec *i.MazeSpec) (*i.MazeSummary, error) {
	m, path, err := BuildMaze(spec)
	if err != nil {
		return nil, err
	}

	var document strings.Builder
	if err := maze.Encode(&document, m, path); err != nil {
		return nil, err
	}

	id := uuid.New()
	if err := s.store.Save(ctx, id, document.String()); err != nil {
		s.logger.Printf("%s[ERROR]%s storing maze %s: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return nil, err
	}

	s.logger.Printf("%s[INFO]%s generated %dx%d maze: %s", config.LogInfoColor, config.LogColorReset, m.Width, m.Height, id)
	return &i.MazeSummary{
		ID:       id,
		Width:    m.Width,
		Height:   m.Height,
		Solvable: path != nil,
	}, nil
}

// Document retrieves the encoded document of the maze stored under id.
func (s *MazeService) Document(ctx context.Context, id uuid.UUID) (string, error) {
	return s.store.ByID(ctx, id)
}

// Solve returns the shortest entry to exit walk of the maze stored
// under id. Mazes stored without a path line are solved again here.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID) (*i.Solution, error) {
	m, path, err := s.mazeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if path == nil {
		path = m.SolveBFS(m.Entry, m.Exit)
	}
	if path == nil {
		return &i.Solution{}, nil
	}

	return &i.Solution{
		Solvable: true,
		Length:   len(path),
		Moves:    maze.PathMoves(path),
	}, nil
}

// Render draws the maze stored under id as colored terminal text with
// the solution walk marked when one exists.
func (s *MazeService) Render(ctx context.Context, id uuid.UUID, theme int) (string, error) {
	m, path, err := s.mazeByID(ctx, id)
	if err != nil {
		return "", err
	}
	if path == nil {
		path = m.SolveBFS(m.Entry, m.Exit)
	}
	if path != nil {
		m.MarkSolution(path)
	}

	var art strings.Builder
	if err := render.Draw(&art, m, render.ThemeAt(theme)); err != nil {
		return "", err
	}
	return art.String(), nil
}

func (s *MazeService) mazeByID(ctx context.Context, id uuid.UUID) (*maze.Maze, []maze.Pos, error) {
	document, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	m, path, err := maze.Decode(strings.NewReader(document))
	if err != nil {
		s.logger.Printf("%s[ERROR]%s stored maze %s does not decode: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return nil, nil, err
	}
	return m, path, nil
}
