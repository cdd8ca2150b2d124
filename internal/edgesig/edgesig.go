// Package edgesig extracts edge fingerprints from tile images and
// implements the rotation permutation used to derive rotated variants.
//
// Grounded on original_source/src/map/tile.rs (get_edges, Tile.rotate):
// each edge is sampled from the first channel of the border pixels, and a
// 90-degree rotation permutes the four edges rather than resampling the
// (separately rotated) image.
package edgesig

import (
	"image"
	"image/color"
)

// Signature is an ordered sequence of per-pixel values along one side of a
// tile. Equality and hashing are elementwise (value equality on the
// underlying byte slice, via Equal and Key).
type Signature []byte

// Equal reports whether two signatures are elementwise identical.
func (s Signature) Equal(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Key returns a string suitable for use as a map key, for code that wants
// to hash a Signature (e.g. dedupe by edge identity).
func (s Signature) Key() string {
	return string(s)
}

// Edges holds the four border fingerprints of a tile.
type Edges struct {
	North, East, South, West Signature
}

// Of samples the first channel of each pixel along the four borders of
// img, in fixed order (x ascending for North/South, y ascending for
// West/East). length(North) == length(South) == img width; length(West)
// == length(East) == img height.
func Of(img image.Image) Edges {
	b := img.Bounds()
	width := b.Dx()
	height := b.Dy()

	north := make(Signature, width)
	south := make(Signature, width)
	for i, x := 0, b.Min.X; x < b.Max.X; i, x = i+1, x+1 {
		north[i] = firstChannel(img.At(x, b.Min.Y))
		south[i] = firstChannel(img.At(x, b.Max.Y-1))
	}

	west := make(Signature, height)
	east := make(Signature, height)
	for i, y := 0, b.Min.Y; y < b.Max.Y; i, y = i+1, y+1 {
		west[i] = firstChannel(img.At(b.Min.X, y))
		east[i] = firstChannel(img.At(b.Max.X-1, y))
	}

	return Edges{North: north, East: east, South: south, West: west}
}

func firstChannel(c color.Color) byte {
	r, _, _, _ := c.RGBA()
	return byte(r >> 8)
}

// Rotate90 produces the edges of a tile rotated one quarter-turn
// clockwise: (N',E',S',W') = (W,N,E,S) — the previous west edge becomes
// the new north edge. Applying Rotate90 four times is the identity.
func Rotate90(e Edges) Edges {
	return Edges{
		North: e.West,
		East:  e.North,
		South: e.East,
		West:  e.South,
	}
}

// NonZero reports whether a signature contains any non-zero pixel value,
// used by the solver to model "no connection leaves the map" at
// boundaries.
func (s Signature) NonZero() bool {
	for _, v := range s {
		if v != 0 {
			return true
		}
	}
	return false
}
