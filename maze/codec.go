package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedDocument indicates an encoded maze that cannot be decoded:
// bad hex digits, ragged rows, asymmetric walls, out-of-bounds
// positions, or a path that walks through a wall.
var ErrMalformedDocument = errors.New("malformed maze document")

const hexDigits = "0123456789ABCDEF"

// pathLetters maps a solution step's direction to its document letter.
var pathLetters = [4]byte{Top: 'N', Right: 'E', Bottom: 'S', Left: 'W'}

// Encode writes the maze and an optional solution path to w as a flat
// text document:
//
//	one hex digit per cell, row-major, one grid row per line,
//	with walls packed as Top=1, Right=2, Bottom=4, Left=8
//	a blank line
//	the entry as col,row
//	the exit as col,row
//	the path as N, S, E and W letters, when path is not nil
//
// The path letters trace the steps from the entry; a leading position
// equal to the entry contributes no letter.
func Encode(w io.Writer, m *Maze, path []Pos) error {
	bw := bufio.NewWriter(w)

	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			bits := m.at(Pos{Row: r, Col: c}).WallBits()
			bw.WriteByte(hexDigits[bits])
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintf(bw, "\n%d,%d\n", m.Entry.Col, m.Entry.Row)
	fmt.Fprintf(bw, "%d,%d\n", m.Exit.Col, m.Exit.Row)

	if path != nil {
		bw.WriteString(movesFrom(m.Entry, path))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PathMoves returns a path's steps as the N, S, E and W letters of the
// document form. Positions equal to their predecessor contribute no
// letter.
func PathMoves(path []Pos) string {
	if len(path) == 0 {
		return ""
	}
	return movesFrom(path[0], path)
}

func movesFrom(start Pos, path []Pos) string {
	var b strings.Builder
	prev := start
	for _, p := range path {
		if p != prev {
			b.WriteByte(pathLetters[sideTo(prev, p)])
		}
		prev = p
	}
	return b.String()
}

// EncodeFile writes the encoded maze to the named file, creating or
// truncating it.
func EncodeFile(name string, m *Maze, path []Pos) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := Encode(f, m, path); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// Decode rebuilds a maze and its solution path from the document form
// written by Encode. Wall layout, entry, and exit round-trip exactly;
// the reserved region, the perfect flag, and visit state are not part
// of the document, so they come back zero.
func Decode(r io.Reader) (*Maze, []Pos, error) {
	scanner := bufio.NewScanner(r)

	var rows []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no grid rows", ErrMalformedDocument)
	}

	height := len(rows)
	width := len(rows[0])
	m := &Maze{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for r, row := range rows {
		if len(row) != width {
			return nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrMalformedDocument, r, len(row), width)
		}
		for c := 0; c < width; c++ {
			bits := strings.IndexByte(hexDigits, row[c])
			if bits < 0 {
				return nil, nil, fmt.Errorf("%w: bad cell digit %q at %d,%d",
					ErrMalformedDocument, row[c], c, r)
			}
			cell := m.at(Pos{Row: r, Col: c})
			for s := Top; s <= Left; s++ {
				cell.Walls[s] = bits&(1<<s) != 0
			}
			cell.Boundary[Top] = r == 0
			cell.Boundary[Bottom] = r == height-1
			cell.Boundary[Left] = c == 0
			cell.Boundary[Right] = c == width-1
		}
	}
	if err := m.checkWallSymmetry(); err != nil {
		return nil, nil, err
	}

	entry, err := scanPos(scanner, m)
	if err != nil {
		return nil, nil, fmt.Errorf("entry: %w", err)
	}
	exit, err := scanPos(scanner, m)
	if err != nil {
		return nil, nil, fmt.Errorf("exit: %w", err)
	}
	m.Entry = entry
	m.Exit = exit
	m.carvable = width * height

	var path []Pos
	if scanner.Scan() {
		if letters := scanner.Text(); letters != "" {
			path, err = m.replayPath(entry, letters)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read maze document: %w", err)
	}
	return m, path, nil
}

// checkWallSymmetry verifies that every inner wall is recorded the same
// way by both cells sharing it.
func (m *Maze) checkWallSymmetry() error {
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			p := Pos{Row: r, Col: c}
			for _, s := range [2]Side{Right, Bottom} {
				n := p.Shift(s)
				if !m.InBounds(n) {
					continue
				}
				if m.at(p).Walls[s] != m.at(n).Walls[s.Opposite()] {
					return fmt.Errorf("%w: asymmetric %s wall at %d,%d",
						ErrMalformedDocument, s, c, r)
				}
			}
		}
	}
	return nil
}

// scanPos reads one "col,row" line and bounds-checks it against m.
func scanPos(scanner *bufio.Scanner, m *Maze) (Pos, error) {
	if !scanner.Scan() {
		return Pos{}, fmt.Errorf("%w: missing position line", ErrMalformedDocument)
	}
	line := scanner.Text()
	colStr, rowStr, ok := strings.Cut(line, ",")
	if !ok {
		return Pos{}, fmt.Errorf("%w: bad position %q", ErrMalformedDocument, line)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return Pos{}, fmt.Errorf("%w: bad position %q", ErrMalformedDocument, line)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return Pos{}, fmt.Errorf("%w: bad position %q", ErrMalformedDocument, line)
	}
	p := Pos{Row: row, Col: col}
	if !m.InBounds(p) {
		return Pos{}, fmt.Errorf("%w: position %q out of bounds", ErrMalformedDocument, line)
	}
	return p, nil
}

// replayPath walks the N/S/E/W letters from the entry and returns the
// positions stepped through, entry included.
func (m *Maze) replayPath(entry Pos, letters string) ([]Pos, error) {
	path := []Pos{entry}
	pos := entry
	for i := 0; i < len(letters); i++ {
		var side Side
		switch letters[i] {
		case 'N':
			side = Top
		case 'S':
			side = Bottom
		case 'E':
			side = Right
		case 'W':
			side = Left
		default:
			return nil, fmt.Errorf("%w: bad path letter %q", ErrMalformedDocument, letters[i])
		}
		if m.at(pos).Walls[side] {
			return nil, fmt.Errorf("%w: path crosses a wall at %d,%d",
				ErrMalformedDocument, pos.Col, pos.Row)
		}
		pos = pos.Shift(side)
		if !m.InBounds(pos) {
			return nil, fmt.Errorf("%w: path leaves the grid at %d,%d",
				ErrMalformedDocument, pos.Col, pos.Row)
		}
		path = append(path, pos)
	}
	return path, nil
}
