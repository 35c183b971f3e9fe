/*
Package render draws mazes to a terminal as ANSI-colored block art.

Each cell becomes a 4x2 character block of full-block runes sharing its
bottom row with the cell below. Walls, the logo region, the entry, the
exit, and the solution path are painted in the colors of a Theme;
six built-in palettes can be cycled through with ThemeAt.
*/
package render

import (
	"bufio"
	"io"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
)

const block = '█'

// Theme names the color of each feature of the drawn maze.
type Theme struct {
	Walls    string // Walls colors the wall blocks and corner posts.
	Logo     string // Logo colors the reserved region's filling.
	Solution string // Solution colors the highlighted path and its bridges.
	Entry    string // Entry colors the entry cell's filling.
	Exit     string // Exit colors the exit cell's filling.
}

// themes mirrors the six palettes of the interactive viewer.
var themes = [...]Theme{
	{Walls: config.ColorBlue, Logo: config.ColorCyan, Solution: config.ColorMagenta, Entry: config.ColorGreen, Exit: config.ColorRed},
	{Walls: config.ColorCyan, Logo: config.ColorBlue, Solution: config.ColorYellow, Entry: config.ColorGreen, Exit: config.ColorRed},
	{Walls: config.ColorGreen, Logo: config.ColorBlue, Solution: config.ColorMagenta, Entry: config.ColorCyan, Exit: config.ColorRed},
	{Walls: config.ColorYellow, Logo: config.ColorGreen, Solution: config.ColorCyan, Entry: config.ColorGreen, Exit: config.ColorRed},
	{Walls: config.ColorRed, Logo: config.ColorCyan, Solution: config.ColorYellow, Entry: config.ColorGreen, Exit: config.ColorRed},
	{Walls: config.ColorMagenta, Logo: config.ColorCyan, Solution: config.ColorYellow, Entry: config.ColorGreen, Exit: config.ColorRed},
}

// DefaultTheme is the palette mazes are first drawn with.
func DefaultTheme() Theme {
	return themes[0]
}

// ThemeAt returns one of the built-in palettes; any index wraps around.
func ThemeAt(i int) Theme {
	n := len(themes)
	return themes[((i%n)+n)%n]
}

// ThemeCount returns the number of built-in palettes.
func ThemeCount() int {
	return len(themes)
}

// brush is one canvas character and the color it is painted in. Spaces
// carry no color.
type brush struct {
	r     rune
	color string
}

// Draw writes the maze to w as colored block art. Solution bridges are
// drawn only across open walls between two highlighted cells, so a
// highlighted path never appears to pass through a wall.
func Draw(w io.Writer, m *maze.Maze, t Theme) error {
	rows := m.Height*2 + 1
	cols := m.Width * 4
	canvas := make([][]brush, rows)
	for i := range canvas {
		canvas[i] = make([]brush, cols)
		for j := range canvas[i] {
			canvas[i][j] = brush{r: ' '}
		}
	}

	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			paintCell(canvas, m, t, maze.Pos{Row: r, Col: c})
		}
	}

	bw := bufio.NewWriter(w)
	for _, line := range canvas {
		current := ""
		for _, b := range line {
			color := b.color
			if b.r == ' ' {
				color = ""
			}
			if color != current {
				if current != "" {
					bw.WriteString(config.ColorReset)
				}
				if color != "" {
					bw.WriteString(color)
				}
				current = color
			}
			bw.WriteRune(b.r)
		}
		if current != "" {
			bw.WriteString(config.ColorReset)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// paintCell fills the 4x2 block of one cell. Vertically adjacent cells
// share a canvas row and horizontally adjacent cells abut, so a wall
// between two cells is painted identically from both sides.
func paintCell(canvas [][]brush, m *maze.Maze, t Theme, p maze.Pos) {
	cell := m.CellAt(p)
	nx := p.Col * 4
	ny := p.Row * 2

	wall := brush{r: block, color: t.Walls}

	// Corner posts
	canvas[ny][nx] = wall
	canvas[ny][nx+3] = wall
	canvas[ny+2][nx] = wall
	canvas[ny+2][nx+3] = wall

	// bridge reports whether the solution path crosses the open wall
	// between p and its neighbor on side s.
	bridge := func(s maze.Side) bool {
		n := p.Shift(s)
		return cell.OnSolution && !cell.HasWall(s) &&
			m.InBounds(n) && m.CellAt(n).OnSolution
	}

	edges := [4]struct {
		y, x, width int
	}{
		maze.Top:    {ny, nx + 1, 2},
		maze.Right:  {ny + 1, nx + 3, 1},
		maze.Bottom: {ny + 2, nx + 1, 2},
		maze.Left:   {ny + 1, nx, 1},
	}
	for s := maze.Top; s <= maze.Left; s++ {
		edge := edges[s]
		var b brush
		switch {
		case bridge(s):
			b = brush{r: block, color: t.Solution}
		case cell.HasWall(s) || cell.IsBoundary(s):
			b = wall
		default:
			continue
		}
		for i := 0; i < edge.width; i++ {
			canvas[edge.y][edge.x+i] = b
		}
	}

	// Cell filling
	var center brush
	switch {
	case cell.Reserved:
		center = brush{r: block, color: t.Logo}
	case p == m.Entry:
		center = brush{r: block, color: t.Entry}
	case p == m.Exit:
		center = brush{r: block, color: t.Exit}
	case cell.OnSolution:
		center = brush{r: block, color: t.Solution}
	default:
		return
	}
	canvas[ny+1][nx+1] = center
	canvas[ny+1][nx+2] = center
}
