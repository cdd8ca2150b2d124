package builder

import (
	"github.com/tilefield/wfcgen/internal/chunk"
	"github.com/tilefield/wfcgen/internal/gridaddr"
)

// chunkModel adapts a set of deduplicated textual patterns into a
// wfc.Model, the pattern-overlap half of spec.md §9's "polymorphic
// variant sources" design. Compatibility between two patterns is
// precomputed once at construction, since each solver step may consult
// it many times.
type chunkModel struct {
	patterns []chunk.Pattern
	compat   [][4][]bool // compat[i][dir][j]
}

func newChunkModel(patterns []chunk.Pattern) *chunkModel {
	m := &chunkModel{patterns: patterns}
	m.compat = make([][4][]bool, len(patterns))
	for i, a := range patterns {
		for d := 0; d < 4; d++ {
			dir := gridaddr.Direction(d)
			row := make([]bool, len(patterns))
			for j, b := range patterns {
				row[j] = chunk.Compatible(a, b, dir)
			}
			m.compat[i][d] = row
		}
	}
	return m
}

func (m *chunkModel) NumVariants() int { return len(m.patterns) }

// Weight is uniform across patterns: the textual model carries no
// per-pattern weight concept in spec.md §4.4, unlike the image catalog.
func (m *chunkModel) Weight(int) float64 { return 1 }

func (m *chunkModel) Compatible(i int, dir gridaddr.Direction, j int) bool {
	return m.compat[i][dir][j]
}

// BoundaryOK reports whether pattern i may legally face the map edge in
// direction dir: its edge strip must contain no Floor opening, modelling
// "no connection leaves the map" for the symbol-based pattern domain.
func (m *chunkModel) BoundaryOK(i int, dir gridaddr.Direction) bool {
	return !chunk.HasFloorOnEdge(m.patterns[i], dir)
}

// HasExit reports whether pattern i's edge strip in direction dir
// contains a Floor opening, the pattern-domain analog of a non-zero
// image edge signature.
func (m *chunkModel) HasExit(i int, dir gridaddr.Direction) bool {
	return chunk.HasFloorOnEdge(m.patterns[i], dir)
}
