package maze

import "slices"

// SolveBFS returns the shortest open-corridor path from start to end,
// both endpoints included, found by breadth-first search. It returns
// nil when no corridor connects the two positions; an unreachable goal
// is a legitimate outcome, not an error.
//
// The search resets and reuses every cell's Visited flag, so it must
// not run while a generator is still carving the same maze.
func (m *Maze) SolveBFS(start, end Pos) []Pos {
	if !m.InBounds(start) || !m.InBounds(end) {
		return nil
	}

	for i := range m.cells {
		m.cells[i].Visited = false
	}

	queue := []Pos{start}
	parent := make(map[Pos]Pos)
	m.at(start).Visited = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			var path []Pos
			for node := end; node != start; node = parent[node] {
				path = append(path, node)
			}
			path = append(path, start)
			slices.Reverse(path)
			return path
		}

		for _, next := range m.OpenNeighbors(curr) {
			if !m.at(next).Visited {
				m.at(next).Visited = true
				parent[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
