package maze

// Side identifies one of the four walls of a cell. The declaration
// order is significant: 1 << side is the wall's bit in the encoded
// form, giving Top=1, Right=2, Bottom=4, Left=8.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// deltas maps a side to the row and column step toward the neighbor
// on that side.
var deltas = [4]Pos{
	Top:    {Row: -1, Col: 0},
	Right:  {Row: 0, Col: 1},
	Bottom: {Row: 1, Col: 0},
	Left:   {Row: 0, Col: -1},
}

var sideNames = [4]string{"Top", "Right", "Bottom", "Left"}

// Opposite returns the side facing s from the neighboring cell.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// String returns the side's name.
func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "Unknown"
}

// Pos addresses a cell by its row and column in the maze grid.
type Pos struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Shift returns the position one cell away toward the given side.
func (p Pos) Shift(s Side) Pos {
	d := deltas[s]
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// sideTo returns the side of p that faces q. The two positions must
// be grid-adjacent.
func sideTo(p, q Pos) Side {
	switch {
	case q.Row > p.Row:
		return Bottom
	case q.Row < p.Row:
		return Top
	case q.Col > p.Col:
		return Right
	default:
		return Left
	}
}

// Cell represents a single cell in a maze grid.
// It carries the wall state on each side along with the flags shared
// by the generators, the solver, and the renderer.
type Cell struct {
	Walls      [4]bool // Walls marks the sides still closed, indexed by Side.
	Boundary   [4]bool // Boundary marks the sides that face the grid edge.
	Reserved   bool    // Reserved cells belong to the logo region and are never carved.
	Visited    bool    // Visited is scratch state for generation and solving.
	OnSolution bool    // OnSolution highlights the cell on the rendered solution path.
}

// HasWall returns true if the wall on the given side is closed.
func (c Cell) HasWall(s Side) bool {
	return c.Walls[s]
}

// IsBoundary returns true if the given side faces the grid edge.
func (c Cell) IsBoundary(s Side) bool {
	return c.Boundary[s]
}

// WallBits packs the four wall flags into the encoded bitmask form:
// Top=1, Right=2, Bottom=4, Left=8.
func (c Cell) WallBits() uint8 {
	var bits uint8
	for s := Top; s <= Left; s++ {
		if c.Walls[s] {
			bits |= 1 << s
		}
	}
	return bits
}
