package platformer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samuelfneumann/mephistophelia/perception"
	"gonum.org/v1/gonum/spatial/r2"
)

// Level tile characters
const (
	EmptyTile       = '.'
	PlatformTile    = '#'
	DeathgroundTile = 'x'
	GoalTile        = 'G'
	StartTile       = 'S'
)

// Level is a rectangular grid of square tiles. World coordinates are
// in pixels with the origin at the bottom left corner of the level and
// y increasing upwards; the first line of a level file is the top row.
type Level struct {
	Width, Height int     // In tiles
	Tile          float64 // Side of a tile in pixels

	Boxes map[perception.Group][]r2.Box
	Start r2.Vec // Centre of the start tile
	Goal  r2.Vec // Centre of the goal tile
}

// LoadLevel loads a level from a file
func LoadLevel(filename string, tile float64) (*Level, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadLevel: could not open level: %v", err)
	}
	defer file.Close()

	level, err := ParseLevel(file, tile)
	if err != nil {
		return nil, fmt.Errorf("loadLevel: %v: %v", filename, err)
	}
	return level, nil
}

// ParseLevel parses a level from its text form. Every non-blank line is
// a row of tiles and all rows must have the same length. A level must
// have exactly one start tile and exactly one goal tile.
func ParseLevel(r io.Reader, tile float64) (*Level, error) {
	if tile <= 0 {
		return nil, fmt.Errorf("parseLevel: tile size must be positive, "+
			"have %v", tile)
	}

	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		if len(rows) > 0 && len(line) != len(rows[0]) {
			return nil, fmt.Errorf("parseLevel: row %d has %d tiles, want %d",
				len(rows), len(line), len(rows[0]))
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parseLevel: could not read level: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parseLevel: empty level")
	}

	level := &Level{
		Width:  len(rows[0]),
		Height: len(rows),
		Tile:   tile,
		Boxes:  make(map[perception.Group][]r2.Box),
	}

	starts, goals := 0, 0
	for row, line := range rows {
		for col, c := range line {
			box := level.TileBox(col, level.Height-1-row)
			centre := r2.Scale(0.5, r2.Add(box.Min, box.Max))

			switch c {
			case EmptyTile:
			case PlatformTile:
				level.Boxes[perception.Platforms] = append(
					level.Boxes[perception.Platforms], box)
			case DeathgroundTile:
				level.Boxes[perception.Deathgrounds] = append(
					level.Boxes[perception.Deathgrounds], box)
			case GoalTile:
				level.Boxes[perception.Goals] = append(
					level.Boxes[perception.Goals], box)
				level.Goal = centre
				goals++
			case StartTile:
				level.Start = centre
				starts++
			default:
				return nil, fmt.Errorf("parseLevel: unknown tile %q at row "+
					"%d column %d", c, row, col)
			}
		}
	}

	if starts != 1 {
		return nil, fmt.Errorf("parseLevel: level needs one start tile, "+
			"has %d", starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("parseLevel: level needs one goal tile, "+
			"has %d", goals)
	}
	return level, nil
}

// TileBox returns the box covered by the tile in column col and row
// row, counting rows from the bottom
func (l *Level) TileBox(col, row int) r2.Box {
	min := r2.Vec{X: float64(col) * l.Tile, Y: float64(row) * l.Tile}
	return r2.Box{Min: min, Max: r2.Add(min, r2.Vec{X: l.Tile, Y: l.Tile})}
}

// Bounds returns the width and height of the level in pixels
func (l *Level) Bounds() r2.Vec {
	return r2.Vec{X: float64(l.Width) * l.Tile, Y: float64(l.Height) * l.Tile}
}
