// Package catalog builds the set of distinct tile Variants used by the
// solver, from either a sample image (with rotation + dedupe) or an
// explicit list of named variants with weight/neighbor overrides.
//
// Grounded on internal/wfc/tile.go in the teacher repo (the Tile type
// shape: type, identity, connections) generalized per spec.md §4.3 and
// original_source/src/map/mod.rs (load_tiles: crop, 4 rotations, dedupe
// by image bytes).
package catalog

import (
	"bytes"
	"fmt"
	"image"
	"sort"

	"github.com/tilefield/wfcgen/internal/edgesig"
)

// Variant is a single rotated/reflected tile instance in the catalog.
// Rotation is never mutated on a shared object: RotateVariant below is a
// pure function that returns a new Variant (Design Notes, spec.md §9).
type Variant struct {
	AssetID   string
	Rotation  int // 0..3 quarter turns
	Edges     edgesig.Edges
	Image     image.Image // nil for explicit (non-image) variants
	Weight    float64
	Neighbors map[string]bool // nil means "no override": edge-matching only
	// sourceIndex is the cell index within the sample's own tiles-per-row
	// grid the variant was cropped from (REDESIGN FLAG #2, spec.md §9).
	sourceIndex int
}

// Catalog is the immutable set of variants built by a single Build call.
type Catalog struct {
	Variants []Variant
}

// ErrEmptyCatalog is returned when a catalog would contain zero variants,
// a fatal precondition violation per spec.md §4.3/§7.
var ErrEmptyCatalog = fmt.Errorf("catalog: cannot build with zero variants")

// RotateVariant returns a new Variant rotated one quarter-turn clockwise
// from v. The source image, if present, is rotated in lockstep so that
// canonical-byte deduplication (BuildFromImage) sees the true rotated
// pixels, matching original_source's Tile.rotate (edges permuted AND
// image.rotate90() both happen together).
func RotateVariant(v Variant) Variant {
	next := v
	next.Edges = edgesig.Rotate90(v.Edges)
	next.Rotation = (v.Rotation + 1) % 4
	if v.Image != nil {
		next.Image = rotateImage90(v.Image)
	}
	return next
}

// BuildFromImage crops the sample image into tilesPerRow x tilesPerCol
// cells of tileSize pixels, pushes all 4 rotations of each cell, then
// sorts by canonical image bytes and dedupes adjacent identical images
// (spec.md §4.3). Dimensions that are not a multiple of tileSize return
// an error; a sample that yields no cells (zero width or height) returns
// ErrEmptyCatalog.
func BuildFromImage(sample image.Image, tileSize int) (*Catalog, error) {
	b := sample.Bounds()
	width, height := b.Dx(), b.Dy()
	if tileSize <= 0 || width%tileSize != 0 || height%tileSize != 0 {
		return nil, fmt.Errorf("catalog: sample dimensions %dx%d are not a multiple of tile size %d", width, height, tileSize)
	}

	tilesPerRow := width / tileSize
	tilesPerCol := height / tileSize

	var variants []Variant
	for ty := 0; ty < tilesPerCol; ty++ {
		for tx := 0; tx < tilesPerRow; tx++ {
			cellIdx := ty*tilesPerRow + tx
			cropRect := image.Rect(
				b.Min.X+tx*tileSize, b.Min.Y+ty*tileSize,
				b.Min.X+(tx+1)*tileSize, b.Min.Y+(ty+1)*tileSize,
			)
			cropped := cropImage(sample, cropRect)

			variant := Variant{
				AssetID:     fmt.Sprintf("img-%d", cellIdx),
				Rotation:    0,
				Edges:       edgesig.Of(cropped),
				Image:       cropped,
				Weight:      1,
				sourceIndex: cellIdx,
			}

			for i := 0; i < 4; i++ {
				variants = append(variants, variant)
				variant = RotateVariant(variant)
			}
		}
	}

	if len(variants) == 0 {
		return nil, ErrEmptyCatalog
	}

	dedupeByImageBytes(&variants)

	return &Catalog{Variants: variants}, nil
}

// ExplicitVariant is a caller-supplied variant description: an asset-id,
// an optional weight override (0 means "use default of 1"), and an
// optional neighbor allow-list.
type ExplicitVariant struct {
	AssetID   string
	Weight    float64
	Neighbors []string
}

// MergeExplicit applies a list of explicit variant overrides to the
// catalog. If an asset-id already exists, its weight/neighbors are
// overridden in place; otherwise a new variant with empty (zero) edges is
// appended, per spec.md §4.3 ("From explicit variants list").
func (c *Catalog) MergeExplicit(list []ExplicitVariant) {
	byAsset := make(map[string]int, len(c.Variants))
	for i, v := range c.Variants {
		byAsset[v.AssetID] = i
	}

	for _, ev := range list {
		weight := ev.Weight
		if weight == 0 {
			weight = 1
		}
		var neighbors map[string]bool
		if len(ev.Neighbors) > 0 {
			neighbors = make(map[string]bool, len(ev.Neighbors))
			for _, n := range ev.Neighbors {
				neighbors[n] = true
			}
		}

		if idx, ok := byAsset[ev.AssetID]; ok {
			c.Variants[idx].Weight = weight
			c.Variants[idx].Neighbors = neighbors
			continue
		}

		newVariant := Variant{
			AssetID:   ev.AssetID,
			Weight:    weight,
			Neighbors: neighbors,
		}
		byAsset[ev.AssetID] = len(c.Variants)
		c.Variants = append(c.Variants, newVariant)
	}
}

// dedupeByImageBytes sorts variants by their raw image bytes and removes
// adjacent duplicates, keeping one representative per canonical byte
// sequence (spec.md §4.3, invariant #5 in spec.md §8).
func dedupeByImageBytes(variants *[]Variant) {
	vs := *variants
	sort.SliceStable(vs, func(i, j int) bool {
		return bytes.Compare(canonicalBytes(vs[i].Image), canonicalBytes(vs[j].Image)) < 0
	})

	out := vs[:0:0]
	var lastBytes []byte
	for i, v := range vs {
		b := canonicalBytes(v.Image)
		if i == 0 || !bytes.Equal(b, lastBytes) {
			out = append(out, v)
			lastBytes = b
		}
	}
	*variants = out
}

func canonicalBytes(img image.Image) []byte {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			buf = append(buf, byte(r>>8), byte(g>>8), byte(bl>>8), byte(a>>8))
		}
	}
	return buf
}

func cropImage(src image.Image, rect image.Rectangle) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Set(x-rect.Min.X, y-rect.Min.Y, src.At(x, y))
		}
	}
	return dst
}

func rotateImage90(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Clockwise quarter turn: (x,y) -> (h-1-y, x)
			dst.Set(h-1-y, x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
