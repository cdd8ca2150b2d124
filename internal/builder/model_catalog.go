package builder

import (
	"github.com/tilefield/wfcgen/internal/catalog"
	"github.com/tilefield/wfcgen/internal/edgesig"
	"github.com/tilefield/wfcgen/internal/gridaddr"
)

// catalogModel adapts an image-derived (or explicit-variant) catalog.Catalog
// into a wfc.Model, the edge-signature half of spec.md §9's "polymorphic
// variant sources" design.
type catalogModel struct {
	variants []catalog.Variant
}

func newCatalogModel(cat *catalog.Catalog) *catalogModel {
	return &catalogModel{variants: cat.Variants}
}

func (m *catalogModel) NumVariants() int { return len(m.variants) }

func (m *catalogModel) Weight(i int) float64 { return m.variants[i].Weight }

func (m *catalogModel) Compatible(i int, dir gridaddr.Direction, j int) bool {
	v, u := m.variants[i], m.variants[j]
	if byDirection(v.Edges, dir).Equal(byDirection(u.Edges, dir.Opposite())) {
		return true
	}
	// Neighbor allow-list override (spec.md §4.5): a listed asset-id is
	// accepted even if the edges mismatch.
	return v.Neighbors != nil && v.Neighbors[u.AssetID]
}

func (m *catalogModel) BoundaryOK(i int, dir gridaddr.Direction) bool {
	return !byDirection(m.variants[i].Edges, dir).NonZero()
}

// HasExit reports whether variant i's edge in direction dir carries any
// connection, the edge-connectivity rule pathfind.Graph consults.
func (m *catalogModel) HasExit(i int, dir gridaddr.Direction) bool {
	return byDirection(m.variants[i].Edges, dir).NonZero()
}

// byDirection is defined here rather than on edgesig.Edges to avoid
// edgesig depending on gridaddr for a single accessor used only by the
// solver-adapter layer.
func byDirection(e edgesig.Edges, dir gridaddr.Direction) edgesig.Signature {
	switch dir {
	case gridaddr.North:
		return e.North
	case gridaddr.East:
		return e.East
	case gridaddr.South:
		return e.South
	case gridaddr.West:
		return e.West
	}
	return nil
}
