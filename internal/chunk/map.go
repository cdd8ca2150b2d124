package chunk

import "strings"

// Map is a width x height flat sequence of TileType symbols, row-major.
type Map struct {
	Tiles  []TileType
	Width  int
	Height int
}

// ParseText builds a Map from a sample text map: lines separated by
// CR+LF, glyphs mapped per the §6 table, unrecognized characters skipped.
// Width is taken from the first line's rune count; Height is the number
// of lines (original_source/src/builder/mod.rs: Map::from_string).
func ParseText(text string) Map {
	lines := strings.Split(text, "\r\n")
	width := 0
	if len(lines) > 0 {
		width = len([]rune(lines[0]))
	}

	var tiles []TileType
	for _, line := range lines {
		for _, r := range line {
			if tt, ok := glyphTable[r]; ok {
				tiles = append(tiles, tt)
			}
		}
	}

	return Map{Tiles: tiles, Width: width, Height: len(lines)}
}

// At returns the tile type at (x, y).
func (m Map) At(x, y int) TileType {
	return m.Tiles[m.idx(x, y)]
}

func (m Map) idx(x, y int) int {
	return y*m.Width + x
}
