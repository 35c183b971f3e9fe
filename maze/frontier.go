package maze

import (
	"fmt"
	"math/rand"
)

// GenerateFrontier carves the maze by growing the visited region one
// cell at a time, Prim style. Each step adds the cursor's carve
// candidates to the frontier, draws one frontier cell uniformly at
// random, joins it to the visited region through its first visited
// neighbor in Top, Left, Right, Bottom order, and moves the cursor
// there.
//
// The frontier draining before every carvable cell is visited ends the
// walk early without error; the reserved region can wall off parts of
// the grid.
func (m *Maze) GenerateFrontier(start Pos, rng *rand.Rand) error {
	if !m.InBounds(start) || m.IsReserved(start) {
		return fmt.Errorf("%w: start %d,%d", ErrInvalidEndpoint, start.Col, start.Row)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	m.markVisited(start)

	var frontier []Pos
	queued := make(map[Pos]bool)
	cursor := start

	for m.visited < m.carvable {
		for _, candidate := range m.carveChoices(cursor) {
			if !queued[candidate] {
				frontier = append(frontier, candidate)
				queued[candidate] = true
			}
		}
		if len(frontier) == 0 {
			return nil
		}

		i := rng.Intn(len(frontier))
		next := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)
		delete(queued, next)

		// Every frontier cell was queued as the neighbor of a visited
		// cursor, so one of these sides always hits.
		for _, s := range [4]Side{Top, Left, Right, Bottom} {
			n := next.Shift(s)
			if m.InBounds(n) && m.at(n).Visited {
				m.openWall(next, s)
				break
			}
		}
		m.markVisited(next)
		cursor = next
	}
	return nil
}
