/*
Package maze provides tools for creating, solving, and encoding rectangular mazes.

It defines the `Maze` structure, composed of `Cell` objects that track wall
configuration, boundary information, and a reserved "42" logo region excluded
from carving.

The package includes two randomized generation algorithms (iterative
depth-first backtracking and Prim-style frontier growth), an optional braid
pass that opens loops in imperfect mazes, and a breadth-first shortest-path
solver.

A text codec encodes the maze structure as one hex digit per cell together
with the entry, the exit, and the solution path, and decodes the same form
back into a Maze.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	// MinLogoWidth and MinLogoHeight are the smallest grid dimensions
	// that can hold the reserved logo region.
	MinLogoWidth  = 7
	MinLogoHeight = 7
)

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// ErrLogoDoesNotFit indicates a grid too small for the reserved logo region.
	ErrLogoDoesNotFit = errors.New("maze too small for the 42 logo")

	// ErrInvalidEndpoint indicates an entry, exit, or start position that is
	// out of bounds, reserved, or not distinct from its counterpart.
	ErrInvalidEndpoint = errors.New("invalid endpoint position")
)

// logoOffsets traces the "42" glyph as row and column offsets from the
// anchor cell. Column offset 3 never appears, so the gap between the
// two digits stays carvable.
var logoOffsets = [18]Pos{
	{Row: 0, Col: 0},
	{Row: 1, Col: 0},
	{Row: 2, Col: 0},
	{Row: 2, Col: 1},
	{Row: 2, Col: 2},
	{Row: 3, Col: 2},
	{Row: 4, Col: 2},
	{Row: 4, Col: 4},
	{Row: 4, Col: 5},
	{Row: 4, Col: 6},
	{Row: 3, Col: 4},
	{Row: 2, Col: 4},
	{Row: 2, Col: 5},
	{Row: 2, Col: 6},
	{Row: 1, Col: 6},
	{Row: 0, Col: 6},
	{Row: 0, Col: 5},
	{Row: 0, Col: 4},
}

// Options configures maze construction. A nil Options keeps the
// defaults: the logo region is reserved.
type Options struct {
	// SkipLogo disables the reserved logo region, allowing grids
	// smaller than MinLogoWidth x MinLogoHeight.
	SkipLogo bool
}

// Maze represents a rectangular maze consisting of cells with walls, an
// entry, and an exit. Create instances with New; the zero value is not
// usable.
type Maze struct {
	Width   int  // Width of the maze (number of columns)
	Height  int  // Height of the maze (number of rows)
	Entry   Pos  // Entry is the cell the generators grow from.
	Exit    Pos  // Exit is the goal cell of the solution path.
	Perfect bool // Perfect mazes keep exactly one route between any two cells.

	// cells holds the grid row-major: the cell at (r, c) lives at
	// index r*Width+c.
	cells []Cell

	// visited counts cells marked during generation; carvable counts
	// the non-reserved cells generation can reach at most.
	visited  int
	carvable int
}

// New initializes a fully walled maze of the given dimensions with the
// logo region reserved and the entry cell marked visited. Generation is
// a separate step; see GenerateBacktracker and GenerateFrontier.
func New(height, width int, entry, exit Pos, perfect bool, opts *Options) (*Maze, error) {
	if opts == nil {
		opts = &Options{}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !opts.SkipLogo && (width < MinLogoWidth || height < MinLogoHeight) {
		return nil, fmt.Errorf("%w: need at least %dx%d, got %dx%d",
			ErrLogoDoesNotFit, MinLogoWidth, MinLogoHeight, width, height)
	}

	m := &Maze{
		Width:   width,
		Height:  height,
		Entry:   entry,
		Exit:    exit,
		Perfect: perfect,
		cells:   make([]Cell, width*height),
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cell := m.at(Pos{Row: r, Col: c})
			cell.Walls = [4]bool{true, true, true, true}
			cell.Boundary[Top] = r == 0
			cell.Boundary[Bottom] = r == height-1
			cell.Boundary[Left] = c == 0
			cell.Boundary[Right] = c == width-1
		}
	}
	if !opts.SkipLogo {
		m.reserveLogo()
	}
	m.carvable = width * height
	for i := range m.cells {
		if m.cells[i].Reserved {
			m.carvable--
		}
	}

	for _, p := range []Pos{entry, exit} {
		if !m.InBounds(p) || m.IsReserved(p) {
			return nil, fmt.Errorf("%w: %d,%d", ErrInvalidEndpoint, p.Col, p.Row)
		}
	}
	if entry == exit {
		return nil, fmt.Errorf("%w: entry and exit must differ", ErrInvalidEndpoint)
	}

	m.markVisited(entry)
	return m, nil
}

// reserveLogo marks the "42" glyph cells, centered on the grid, as
// reserved. Reserved cells keep all four walls for the maze's lifetime.
func (m *Maze) reserveLogo() {
	anchor := Pos{Row: m.Height/2 - 2, Col: m.Width/2 - 3}
	for _, off := range logoOffsets {
		m.at(Pos{Row: anchor.Row + off.Row, Col: anchor.Col + off.Col}).Reserved = true
	}
}

// NewRand returns the random source generation runs on: deterministic
// for a non-zero seed, seeded from the clock otherwise.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// InBounds returns true if p addresses a cell inside the grid.
func (m *Maze) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < m.Height && p.Col >= 0 && p.Col < m.Width
}

// IsReserved returns true if the cell at p belongs to the reserved logo
// region. Positions outside the grid are not reserved.
func (m *Maze) IsReserved(p Pos) bool {
	return m.InBounds(p) && m.at(p).Reserved
}

// CellAt returns a copy of the cell at p, which must be in bounds.
// Walls change only through carving, so the copy cannot be used to
// break wall symmetry.
func (m *Maze) CellAt(p Pos) Cell {
	return *m.at(p)
}

func (m *Maze) at(p Pos) *Cell {
	return &m.cells[p.Row*m.Width+p.Col]
}

// markVisited marks the cell at p visited and advances the generation
// counter. Marking an already visited cell changes nothing.
func (m *Maze) markVisited(p Pos) {
	cell := m.at(p)
	if !cell.Visited {
		cell.Visited = true
		m.visited++
	}
}

// openWall removes the wall between p and its neighbor on side s,
// clearing both facing flags in one step. All carving goes through
// here, so the two records of a shared wall never disagree.
func (m *Maze) openWall(p Pos, s Side) {
	n := p.Shift(s)
	m.at(p).Walls[s] = false
	m.at(n).Walls[s.Opposite()] = false
}

// OpenNeighbors returns the positions reachable from p through open
// walls, in Right, Bottom, Left, Top order.
func (m *Maze) OpenNeighbors(p Pos) []Pos {
	var result []Pos
	for _, s := range [4]Side{Right, Bottom, Left, Top} {
		if m.at(p).Walls[s] {
			continue
		}
		n := p.Shift(s)
		if m.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// carveChoices returns the unvisited, non-reserved neighbors of p in
// Right, Bottom, Top, Left order. Both generators draw their
// candidates from here.
func (m *Maze) carveChoices(p Pos) []Pos {
	var choices []Pos
	for _, s := range [4]Side{Right, Bottom, Top, Left} {
		n := p.Shift(s)
		if m.InBounds(n) && !m.at(n).Visited && !m.at(n).Reserved {
			choices = append(choices, n)
		}
	}
	return choices
}

// MarkSolution flags every position on path for highlighted rendering.
// Positions outside the grid are ignored.
func (m *Maze) MarkSolution(path []Pos) {
	for _, p := range path {
		if m.InBounds(p) {
			m.at(p).OnSolution = true
		}
	}
}

// ClearSolution removes the solution highlight from every cell.
func (m *Maze) ClearSolution() {
	for i := range m.cells {
		m.cells[i].OnSolution = false
	}
}

// String provides a textual representation of the maze. Reserved cells
// show as hashes, the entry as @, the exit as X, and highlighted
// solution cells as dots.
func (m *Maze) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.Width) + "\n"

	for row := 0; row < m.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.Width; col++ {
			p := Pos{Row: row, Col: col}
			cell := m.at(p)

			switch {
			case cell.Reserved:
				cellRow += "###"
			case p == m.Entry:
				cellRow += " @ "
			case p == m.Exit:
				cellRow += " X "
			case cell.OnSolution:
				cellRow += " . "
			default:
				cellRow += "   "
			}

			// Add east wall or space
			if cell.Walls[Right] {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			cell := m.at(Pos{Row: row, Col: col})

			// Add south wall or space
			if cell.Walls[Bottom] {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
