package maze

import (
	"fmt"
	"math/rand"
)

// walkFrame is one level of the backtracker's walk: the cell it stands
// on, its shuffled carve candidates, and how many it has consumed.
type walkFrame struct {
	pos     Pos
	choices []Pos
	next    int
}

func newWalkFrame(m *Maze, p Pos, rng *rand.Rand) *walkFrame {
	choices := m.carveChoices(p)
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return &walkFrame{pos: p, choices: choices}
}

// advance returns the frame's next candidate that is still unvisited.
// Candidates are gathered before descending, so a sibling branch may
// have claimed one in the meantime; those are skipped here.
func (f *walkFrame) advance(m *Maze) (Pos, bool) {
	for f.next < len(f.choices) {
		choice := f.choices[f.next]
		f.next++
		if !m.at(choice).Visited {
			return choice, true
		}
	}
	return Pos{}, false
}

// GenerateBacktracker carves the maze with a randomized depth-first
// walk from start. Each cell shuffles its carve candidates once,
// descends into the first unvisited one, and backtracks when none
// remain. The walk runs on an explicit frame stack, so grid size is
// not limited by call depth. It stops as soon as every carvable cell
// has been visited.
func (m *Maze) GenerateBacktracker(start Pos, rng *rand.Rand) error {
	if !m.InBounds(start) || m.IsReserved(start) {
		return fmt.Errorf("%w: start %d,%d", ErrInvalidEndpoint, start.Col, start.Row)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	m.markVisited(start)

	stack := []*walkFrame{newWalkFrame(m, start, rng)}
	for len(stack) > 0 && m.visited < m.carvable {
		frame := stack[len(stack)-1]
		next, ok := frame.advance(m)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		m.openWall(frame.pos, sideTo(frame.pos, next))
		m.markVisited(next)
		stack = append(stack, newWalkFrame(m, next, rng))
	}
	return nil
}
