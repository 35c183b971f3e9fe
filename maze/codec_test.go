package maze

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoByTwoDoc builds the reference maze used across the codec tests:
//
//	+---+---+
//	| @     |
//	+---+   +
//	|   | X |
//	+---+---+
func twoByTwoDoc(t *testing.T) (*Maze, []Pos) {
	t.Helper()
	m, err := New(2, 2, Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 1}, true, &Options{SkipLogo: true})
	assert.NoError(t, err)
	m.openWall(Pos{Row: 0, Col: 0}, Right)
	m.openWall(Pos{Row: 0, Col: 1}, Bottom)
	path := []Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	return m, path
}

func TestEncode(t *testing.T) {
	t.Run("writes the documented flat form", func(t *testing.T) {
		m, path := twoByTwoDoc(t)

		var buf bytes.Buffer
		assert.NoError(t, Encode(&buf, m, path))
		assert.Equal(t, "D3\nFE\n\n0,0\n1,1\nES\n", buf.String())
	})

	t.Run("omits the path line when there is no solution", func(t *testing.T) {
		m, _ := twoByTwoDoc(t)

		var buf bytes.Buffer
		assert.NoError(t, Encode(&buf, m, nil))
		assert.Equal(t, "D3\nFE\n\n0,0\n1,1\n", buf.String())
	})

	t.Run("skips the leading zero delta step", func(t *testing.T) {
		m, path := twoByTwoDoc(t)

		// The first path element repeats the entry and contributes no
		// letter.
		var buf bytes.Buffer
		assert.NoError(t, Encode(&buf, m, path[:1]))
		assert.True(t, strings.HasSuffix(buf.String(), "1,1\n\n"))
	})
}

func TestDecode(t *testing.T) {
	t.Run("is the exact inverse of encode", func(t *testing.T) {
		m, err := New(9, 11, Pos{Row: 0, Col: 0}, Pos{Row: 8, Col: 10}, false, nil)
		assert.NoError(t, err)
		assert.NoError(t, m.GenerateBacktracker(m.Entry, NewRand(31)))
		m.Braid()
		path := m.SolveBFS(m.Entry, m.Exit)
		assert.NotNil(t, path)

		var first bytes.Buffer
		assert.NoError(t, Encode(&first, m, path))

		decoded, decodedPath, err := Decode(bytes.NewReader(first.Bytes()))
		assert.NoError(t, err)
		assert.Equal(t, m.Width, decoded.Width)
		assert.Equal(t, m.Height, decoded.Height)
		assert.Equal(t, m.Entry, decoded.Entry)
		assert.Equal(t, m.Exit, decoded.Exit)
		assert.Equal(t, path, decodedPath)
		for r := 0; r < m.Height; r++ {
			for c := 0; c < m.Width; c++ {
				p := Pos{Row: r, Col: c}
				assert.Equal(t, m.CellAt(p).WallBits(), decoded.CellAt(p).WallBits(), "cell %v", p)
			}
		}

		var second bytes.Buffer
		assert.NoError(t, Encode(&second, decoded, decodedPath))
		assert.Equal(t, first.Bytes(), second.Bytes())
	})

	t.Run("reads a document without a path line", func(t *testing.T) {
		decoded, path, err := Decode(strings.NewReader("D3\nFE\n\n0,0\n1,1\n"))
		assert.NoError(t, err)
		assert.Nil(t, path)
		assert.Equal(t, Pos{Row: 0, Col: 0}, decoded.Entry)
		assert.Equal(t, Pos{Row: 1, Col: 1}, decoded.Exit)
		assert.False(t, decoded.CellAt(Pos{Row: 0, Col: 0}).HasWall(Right))
		assert.True(t, decoded.CellAt(Pos{Row: 1, Col: 0}).HasWall(Right))
	})

	t.Run("restores boundary flags", func(t *testing.T) {
		decoded, _, err := Decode(strings.NewReader("D3\nFE\n\n0,0\n1,1\n"))
		assert.NoError(t, err)
		assert.True(t, decoded.CellAt(Pos{Row: 0, Col: 0}).IsBoundary(Top))
		assert.True(t, decoded.CellAt(Pos{Row: 0, Col: 0}).IsBoundary(Left))
		assert.True(t, decoded.CellAt(Pos{Row: 1, Col: 1}).IsBoundary(Bottom))
		assert.True(t, decoded.CellAt(Pos{Row: 1, Col: 1}).IsBoundary(Right))
		assert.False(t, decoded.CellAt(Pos{Row: 0, Col: 1}).IsBoundary(Left))
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		cases := []struct {
			name string
			doc  string
		}{
			{"empty document", ""},
			{"blank leading line", "\nD3\nFE\n\n0,0\n1,1\n"},
			{"bad cell digit", "G3\nFE\n\n0,0\n1,1\n"},
			{"lowercase cell digit", "d3\nFE\n\n0,0\n1,1\n"},
			{"ragged rows", "D3\nF\n\n0,0\n1,1\n"},
			{"asymmetric wall", "F3\nFE\n\n0,0\n1,1\n"},
			{"missing entry line", "D3\nFE\n"},
			{"unparsable entry", "D3\nFE\n\nx,0\n1,1\n"},
			{"entry without comma", "D3\nFE\n\n00\n1,1\n"},
			{"entry out of bounds", "D3\nFE\n\n5,0\n1,1\n"},
			{"missing exit line", "D3\nFE\n\n0,0\n"},
			{"exit out of bounds", "D3\nFE\n\n0,0\n1,7\n"},
			{"unknown path letter", "D3\nFE\n\n0,0\n1,1\nEQ\n"},
			{"path through a wall", "D3\nFE\n\n0,0\n1,1\nS\n"},
			{"path leaves the grid", "53\nFE\n\n0,0\n1,1\nW\n"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := Decode(strings.NewReader(tc.doc))
				assert.ErrorIs(t, err, ErrMalformedDocument)
			})
		}
	})
}

func TestEncodeFile(t *testing.T) {
	t.Run("writes the document to disk", func(t *testing.T) {
		m, path := twoByTwoDoc(t)
		name := filepath.Join(t.TempDir(), "maze.txt")

		assert.NoError(t, EncodeFile(name, m, path))

		data, err := os.ReadFile(name)
		assert.NoError(t, err)
		assert.Equal(t, "D3\nFE\n\n0,0\n1,1\nES\n", string(data))
	})

	t.Run("truncates an existing file", func(t *testing.T) {
		m, _ := twoByTwoDoc(t)
		name := filepath.Join(t.TempDir(), "maze.txt")
		assert.NoError(t, os.WriteFile(name, []byte(strings.Repeat("x", 500)), 0o644))

		assert.NoError(t, EncodeFile(name, m, nil))

		data, err := os.ReadFile(name)
		assert.NoError(t, err)
		assert.Equal(t, "D3\nFE\n\n0,0\n1,1\n", string(data))
	})

	t.Run("surfaces file creation failures", func(t *testing.T) {
		m, _ := twoByTwoDoc(t)
		err := EncodeFile(filepath.Join(t.TempDir(), "missing", "maze.txt"), m, nil)
		assert.Error(t, err)
	})
}
