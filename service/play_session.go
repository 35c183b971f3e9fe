package service

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/render"
)

// PlaySession drives the interactive terminal game. It keeps the
// current maze, carves a fresh one on demand and rewrites the output
// file after every action.
type PlaySession struct {
	cfg      *config.MazeConfig
	maze     *maze.Maze
	path     []maze.Pos
	showPath bool
	theme    int
	logger   *log.Logger
	sync.RWMutex
}

// PlayConfig carries the dependencies of a PlaySession.
type PlayConfig struct {
	MazeConfig *config.MazeConfig
	Logger     *log.Logger
}

// NewPlaySession initializes a PlaySession and carves its first maze.
func NewPlaySession(c *PlayConfig) (*PlaySession, error) {
	if c.MazeConfig == nil {
		return nil, errors.New("nil maze config")
	}

	ps := &PlaySession{
		cfg:    c.MazeConfig,
		logger: c.Logger,
	}
	if ps.logger == nil {
		ps.logger = log.Default()
	}

	if err := ps.rebuild(); err != nil {
		return nil, err
	}
	return ps, nil
}

// Regenerate replaces the current maze with a freshly carved one and
// rewrites the output file. A configured seed reproduces the same maze,
// no seed carves a new one every time.
func (ps *PlaySession) Regenerate() error {
	ps.Lock()
	defer ps.Unlock()
	return ps.rebuild()
}

// ToggleSolution shows or hides the solution walk and rewrites the
// output file.
func (ps *PlaySession) ToggleSolution() error {
	ps.Lock()
	defer ps.Unlock()

	ps.showPath = !ps.showPath
	if ps.path != nil {
		if ps.showPath {
			ps.maze.MarkSolution(ps.path)
		} else {
			ps.maze.ClearSolution()
		}
	}
	return ps.export()
}

// CycleTheme advances to the next color theme and rewrites the output
// file.
func (ps *PlaySession) CycleTheme() error {
	ps.Lock()
	defer ps.Unlock()

	ps.theme++
	return ps.export()
}

// Frame draws the current maze with the active theme.
func (ps *PlaySession) Frame() (string, error) {
	ps.RLock()
	defer ps.RUnlock()

	var art strings.Builder
	if err := render.Draw(&art, ps.maze, render.ThemeAt(ps.theme)); err != nil {
		return "", err
	}
	return art.String(), nil
}

// ShowingSolution reports whether the solution walk is being drawn.
func (ps *PlaySession) ShowingSolution() bool {
	ps.RLock()
	defer ps.RUnlock()
	return ps.showPath
}

// Solvable reports whether the current maze has an entry to exit walk.
func (ps *PlaySession) Solvable() bool {
	ps.RLock()
	defer ps.RUnlock()
	return ps.path != nil
}

// OutputFile returns the file the session writes mazes to.
func (ps *PlaySession) OutputFile() string {
	return ps.cfg.OutputFile
}

func (ps *PlaySession) rebuild() error {
	m, path, err := BuildMaze(SpecOf(ps.cfg))
	if err != nil {
		return err
	}

	ps.maze = m
	ps.path = path
	if ps.showPath && path != nil {
		m.MarkSolution(path)
	}
	return ps.export()
}

func (ps *PlaySession) export() error {
	if err := maze.EncodeFile(ps.cfg.OutputFile, ps.maze, ps.path); err != nil {
		ps.logger.Printf("%s[ERROR]%s writing %s: %s", config.LogErrorColor, config.LogColorReset, ps.cfg.OutputFile, err)
		return err
	}
	return nil
}
