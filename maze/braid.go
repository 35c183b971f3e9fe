package maze

// Braid opens extra walls so corridors loop back instead of dead
// ending, turning a spanning-tree maze into an imperfect one. It only
// ever removes walls, so every pair of cells connected before stays
// connected after. Calling it on a perfect maze changes nothing.
//
// Only interior cells with a reserved-free four-neighborhood are
// considered, which keeps every wall of the logo region and of the
// outer boundary intact. A wall is opened only when both of its end
// posts still anchor another wall segment, so the remaining walls
// never degrade into free-floating stubs.
func (m *Maze) Braid() {
	if m.Perfect {
		return
	}

	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			p := Pos{Row: r, Col: c}
			if !m.braidable(p) {
				continue
			}

			cell := m.at(p)
			up := m.at(Pos{Row: r - 1, Col: c})
			down := m.at(Pos{Row: r + 1, Col: c})
			left := m.at(Pos{Row: r, Col: c - 1})
			right := m.at(Pos{Row: r, Col: c + 1})
			upLeft := m.at(Pos{Row: r - 1, Col: c - 1})
			upRight := m.at(Pos{Row: r - 1, Col: c + 1})
			downLeft := m.at(Pos{Row: r + 1, Col: c - 1})

			if cell.Walls[Top] &&
				(right.Walls[Top] || upRight.Walls[Left]) &&
				(left.Walls[Top] || upLeft.Walls[Right]) {
				m.openWall(p, Top)
			}

			if cell.Walls[Left] &&
				(down.Walls[Left] || downLeft.Walls[Top]) &&
				(up.Walls[Left] || upLeft.Walls[Bottom]) {
				m.openWall(p, Left)
			}
		}
	}
}

// braidable reports whether p sits strictly inside the grid with no
// reserved cell at p or its four orthogonal neighbors.
func (m *Maze) braidable(p Pos) bool {
	if p.Row <= 0 || p.Row >= m.Height-1 || p.Col <= 0 || p.Col >= m.Width-1 {
		return false
	}
	if m.at(p).Reserved {
		return false
	}
	for s := Top; s <= Left; s++ {
		if m.at(p.Shift(s)).Reserved {
			return false
		}
	}
	return true
}
