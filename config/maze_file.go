package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/beka-birhanu/amazeing/maze"
)

// Generation algorithms selectable in a maze config file.
const (
	AlgoDFS   = "DFS"
	AlgoPrime = "PRIME"
)

// ErrInvalidConfig indicates a maze config file with missing keys or
// values that fail validation.
var ErrInvalidConfig = errors.New("invalid maze config")

// MazeConfig is the parsed and validated form of a maze config file.
type MazeConfig struct {
	Width      int      // Width of the maze (number of columns)
	Height     int      // Height of the maze (number of rows)
	Entry      maze.Pos // Entry position
	Exit       maze.Pos // Exit position
	OutputFile string   // File the encoded maze is written to
	Perfect    bool     // Perfect mazes keep a single route between any two cells
	Algo       string   // Generation algorithm, AlgoDFS or AlgoPrime
	Seed       int64    // Random seed; 0 seeds from the clock
}

// ParseMazeFile reads a KEY=VALUE maze config file. Blank lines and
// lines starting with # are ignored.
//
// Required keys: WIDTH, HEIGHT, ENTRY, EXIT, OUTPUT_FILE, PERFECT.
// Optional keys: ALGO (DFS or PRIME, default DFS) and SEED (default 0,
// which seeds generation from the clock). ENTRY and EXIT are col,row
// pairs and OUTPUT_FILE must carry a .txt extension.
func ParseMazeFile(name string) (*MazeConfig, error) {
	values, err := godotenv.Read(name)
	if err != nil {
		return nil, fmt.Errorf("read maze config: %w", err)
	}
	return parseMazeValues(values)
}

func parseMazeValues(values map[string]string) (*MazeConfig, error) {
	for _, key := range []string{"WIDTH", "HEIGHT", "ENTRY", "EXIT", "OUTPUT_FILE", "PERFECT"} {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("%w: missing key %s", ErrInvalidConfig, key)
		}
	}

	width, err := strconv.Atoi(values["WIDTH"])
	if err != nil {
		return nil, fmt.Errorf("%w: WIDTH must be an integer", ErrInvalidConfig)
	}
	height, err := strconv.Atoi(values["HEIGHT"])
	if err != nil {
		return nil, fmt.Errorf("%w: HEIGHT must be an integer", ErrInvalidConfig)
	}
	entry, err := ParsePoint(values["ENTRY"])
	if err != nil {
		return nil, fmt.Errorf("%w: ENTRY must be a col,row pair", ErrInvalidConfig)
	}
	exit, err := ParsePoint(values["EXIT"])
	if err != nil {
		return nil, fmt.Errorf("%w: EXIT must be a col,row pair", ErrInvalidConfig)
	}

	outputFile := values["OUTPUT_FILE"]
	if parts := strings.SplitN(outputFile, ".", 2); len(parts) != 2 || parts[1] != "txt" {
		return nil, fmt.Errorf("%w: OUTPUT_FILE must have a .txt extension", ErrInvalidConfig)
	}

	perfect, err := strconv.ParseBool(values["PERFECT"])
	if err != nil {
		return nil, fmt.Errorf("%w: PERFECT must be True or False", ErrInvalidConfig)
	}

	algo := AlgoDFS
	if v, ok := values["ALGO"]; ok {
		if v != AlgoDFS && v != AlgoPrime {
			return nil, fmt.Errorf("%w: ALGO must be DFS or PRIME", ErrInvalidConfig)
		}
		algo = v
	}

	var seed int64
	if v, ok := values["SEED"]; ok {
		seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: SEED must be an integer", ErrInvalidConfig)
		}
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: WIDTH and HEIGHT must be positive", ErrInvalidConfig)
	}
	if entry.Col < 0 || entry.Col >= width || entry.Row < 0 || entry.Row >= height {
		return nil, fmt.Errorf("%w: ENTRY out of bounds", ErrInvalidConfig)
	}
	if exit.Col < 0 || exit.Col >= width || exit.Row < 0 || exit.Row >= height {
		return nil, fmt.Errorf("%w: EXIT out of bounds", ErrInvalidConfig)
	}
	if entry == exit {
		return nil, fmt.Errorf("%w: entry and exit must differ", ErrInvalidConfig)
	}

	return &MazeConfig{
		Width:      width,
		Height:     height,
		Entry:      entry,
		Exit:       exit,
		OutputFile: outputFile,
		Perfect:    perfect,
		Algo:       algo,
		Seed:       seed,
	}, nil
}

// ParsePoint reads a "col,row" pair into a position.
func ParsePoint(s string) (maze.Pos, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return maze.Pos{}, fmt.Errorf("missing comma in %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return maze.Pos{}, err
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return maze.Pos{}, err
	}
	return maze.Pos{Row: row, Col: col}, nil
}
