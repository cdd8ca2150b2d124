package chunk

import (
	"strconv"
	"strings"

	"github.com/tilefield/wfcgen/internal/gridaddr"
)

// Pattern is a KxK sub-region extracted from a sample map, the unit of
// chunk-mode constraint derivation.
type Pattern struct {
	Cells []TileType // row-major, length K*K
	K     int
}

func (p Pattern) at(x, y int) TileType {
	return p.Cells[y*p.K+x]
}

// key returns a value suitable for exact-equality deduplication.
func (p Pattern) key() string {
	var sb strings.Builder
	for _, c := range p.Cells {
		sb.WriteString(strconv.Itoa(int(c)))
		sb.WriteByte(',')
	}
	return sb.String()
}

// flipX mirrors a pattern horizontally, applying FlipX to every cell
// symbol (original_source build_patterns: flip horizontal branch).
func (p Pattern) flipX() Pattern {
	out := make([]TileType, len(p.Cells))
	for y := 0; y < p.K; y++ {
		for x := 0; x < p.K; x++ {
			out[y*p.K+x] = FlipX(p.at(p.K-1-x, y))
		}
	}
	return Pattern{Cells: out, K: p.K}
}

// flipY mirrors a pattern vertically, applying FlipY to every cell
// symbol.
func (p Pattern) flipY() Pattern {
	out := make([]TileType, len(p.Cells))
	for y := 0; y < p.K; y++ {
		for x := 0; x < p.K; x++ {
			out[y*p.K+x] = FlipY(p.at(x, p.K-1-y))
		}
	}
	return Pattern{Cells: out, K: p.K}
}

// ExtractPatterns enumerates all KxK aligned chunks of m. If
// includeFlipping is set, each chunk's horizontal, vertical, and
// both-axis flip variants are also included (applying the FlipX/FlipY
// tile-symbol mapping to each cell, not just the cell positions). If
// dedupe is set, patterns are reduced to their distinct representatives
// by exact cell-sequence equality.
//
// Grounded on original_source/src/builder/wfc/mod.rs: build_patterns.
func ExtractPatterns(m Map, k int, includeFlipping, dedupe bool) []Pattern {
	if k <= 0 {
		return nil
	}
	chunksX := m.Width / k
	chunksY := m.Height / k

	var patterns []Pattern
	for cy := 0; cy < chunksY; cy++ {
		for cx := 0; cx < chunksX; cx++ {
			startX, startY := cx*k, cy*k

			cells := make([]TileType, k*k)
			for y := 0; y < k; y++ {
				for x := 0; x < k; x++ {
					cells[y*k+x] = m.At(startX+x, startY+y)
				}
			}
			base := Pattern{Cells: cells, K: k}
			patterns = append(patterns, base)

			if includeFlipping {
				fx := base.flipX()
				fy := base.flipY()
				fxy := fx.flipY()
				patterns = append(patterns, fx, fy, fxy)
			}
		}
	}

	if dedupe {
		patterns = dedupePatterns(patterns)
	}

	return patterns
}

func dedupePatterns(patterns []Pattern) []Pattern {
	seen := make(map[string]bool, len(patterns))
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		k := p.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// MapChunk is a KxK pattern plus, for each of 4 directions, a
// compatibility vector of length K recording which cells along that edge
// may abut a compatible neighbor (spec.md §4.4).
type MapChunk struct {
	Pattern Pattern
	Exits   map[gridaddr.Direction][]bool
}

// edgeStrip returns the K cells along the given edge of the pattern, in a
// fixed per-direction order (x ascending for N/S, y ascending for W/E).
func edgeStrip(p Pattern, dir gridaddr.Direction) []TileType {
	k := p.K
	strip := make([]TileType, k)
	switch dir {
	case gridaddr.North:
		for x := 0; x < k; x++ {
			strip[x] = p.at(x, 0)
		}
	case gridaddr.South:
		for x := 0; x < k; x++ {
			strip[x] = p.at(x, k-1)
		}
	case gridaddr.West:
		for y := 0; y < k; y++ {
			strip[y] = p.at(0, y)
		}
	case gridaddr.East:
		for y := 0; y < k; y++ {
			strip[y] = p.at(k-1, y)
		}
	}
	return strip
}

// cellsCompatible reports whether two tile symbols may abut: equal, or
// either is the Constraint wildcard (spec.md §4.4).
func cellsCompatible(a, b TileType) bool {
	return a == b || a == Constraint || b == Constraint
}

// Compatible reports whether pattern a may have pattern b as its
// neighbor in direction dir: a's edge-d strip must be elementwise
// compatible with b's edge-(opposite d) strip (spec.md §4.4).
func Compatible(a, b Pattern, dir gridaddr.Direction) bool {
	return stripsCompatible(a, b, dir)
}

// HasFloorOnEdge reports whether any cell along the pattern's dir-facing
// edge is Floor (an opening), used to decide whether the pattern may
// legally face the outer map boundary.
func HasFloorOnEdge(p Pattern, dir gridaddr.Direction) bool {
	for _, t := range edgeStrip(p, dir) {
		if t == Floor {
			return true
		}
	}
	return false
}

// stripsCompatible reports whether pattern A's edge-d strip is
// elementwise compatible with pattern B's edge-(opposite d) strip.
func stripsCompatible(a, b Pattern, dir gridaddr.Direction) bool {
	sa := edgeStrip(a, dir)
	sb := edgeStrip(b, dir.Opposite())
	for i := range sa {
		if !cellsCompatible(sa[i], sb[i]) {
			return false
		}
	}
	return true
}

// PatternsToConstraints converts deduplicated patterns into MapChunk
// constraints. For each ordered pair (A,B) and direction d, A's exit
// vector at a given edge cell is true iff *any* B exists that is
// compatible with A at that cell in direction d (spec.md §4.4).
func PatternsToConstraints(patterns []Pattern, k int) []MapChunk {
	chunks := make([]MapChunk, len(patterns))
	for i, p := range patterns {
		chunks[i] = MapChunk{
			Pattern: p,
			Exits:   map[gridaddr.Direction][]bool{},
		}
		for _, dir := range gridaddr.All() {
			chunks[i].Exits[dir] = make([]bool, k)
		}
	}

	for i, a := range patterns {
		for _, dir := range gridaddr.All() {
			exitVec := chunks[i].Exits[dir]
			for j, b := range patterns {
				if i == j {
					continue
				}
				// Per-cell granularity (rather than all-or-nothing): an
				// edge cell is marked as soon as any B's opposite strip is
				// compatible at that cell, even if the rest of the strip
				// does not match.
				sa := edgeStrip(a, dir)
				sb := edgeStrip(b, dir.Opposite())
				for cellIdx := range sa {
					if cellsCompatible(sa[cellIdx], sb[cellIdx]) {
						exitVec[cellIdx] = true
					}
				}
			}
		}
	}

	return chunks
}
