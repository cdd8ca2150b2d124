// Package chunk implements the textual/pattern-based alternative to the
// image-sampled variant catalog: TileType symbols parsed from a glyph
// map, KxK pattern extraction with flips, and directional compatibility
// derivation between patterns (MapChunk).
//
// Grounded on original_source/src/builder/tile.rs (TileType, flip_x,
// flip_y) and original_source/src/builder/wfc/mod.rs (build_patterns,
// render_pattern_to_map), generalized to idiomatic Go per spec.md §4.4.
package chunk

// TileType is a symbol recognized in a textual sample map.
type TileType int

const (
	Empty TileType = iota
	Floor
	Constraint
	CornerTL
	CornerTR
	CornerBR
	CornerBL
	WallL
	WallT
	WallR
	WallB
)

// String returns a human-readable name for a TileType.
func (t TileType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Floor:
		return "floor"
	case Constraint:
		return "constraint"
	case CornerTL:
		return "corner_tl"
	case CornerTR:
		return "corner_tr"
	case CornerBR:
		return "corner_br"
	case CornerBL:
		return "corner_bl"
	case WallL:
		return "wall_l"
	case WallT:
		return "wall_t"
	case WallR:
		return "wall_r"
	case WallB:
		return "wall_b"
	default:
		return "unknown"
	}
}

// FlipX returns the tile symbol resulting from a horizontal mirror.
// Corners swap left<->right, the left/right walls mirror into each
// other, and Floor/Empty/Constraint/top-bottom walls are invariant.
func FlipX(t TileType) TileType {
	switch t {
	case CornerTL:
		return CornerTR
	case CornerTR:
		return CornerTL
	case CornerBR:
		return CornerBL
	case CornerBL:
		return CornerBR
	case WallL:
		return WallR
	case WallR:
		return WallL
	default:
		return t
	}
}

// FlipY returns the tile symbol resulting from a vertical mirror.
// Corners swap top<->bottom, the top/bottom walls mirror into each
// other, and Floor/Empty/Constraint/left-right walls are invariant.
func FlipY(t TileType) TileType {
	switch t {
	case CornerTL:
		return CornerBL
	case CornerTR:
		return CornerBR
	case CornerBR:
		return CornerTR
	case CornerBL:
		return CornerTL
	case WallT:
		return WallB
	case WallB:
		return WallT
	default:
		return t
	}
}

// glyphTable maps the recognized §6 glyphs to their TileType. Unrecognized
// runes are silently skipped, per spec.md §6.
var glyphTable = map[rune]TileType{
	'┌': CornerTL,
	'┐': CornerTR,
	'┘': CornerBR,
	'└': CornerBL,
	'│': WallL,
	'─': WallT,
	'┆': WallR,
	'┄': WallB,
	' ': Floor,
}
