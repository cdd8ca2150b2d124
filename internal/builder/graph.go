package builder

import (
	"github.com/tilefield/wfcgen/internal/gridaddr"
	"github.com/tilefield/wfcgen/internal/wfc"
)

// exitProvider is implemented by both model adapters: it reports
// whether a given variant index carries an edge connection in a
// direction, the fact pathfind.Graph needs per collapsed cell.
type exitProvider interface {
	HasExit(variant int, dir gridaddr.Direction) bool
}

// solvedGraph adapts a fully-collapsed wfc.Grid into a pathfind.Graph by
// looking up each cell's assigned variant's exits.
type solvedGraph struct {
	grid *wfc.Grid
	exits exitProvider
}

func (g solvedGraph) Size() int { return g.grid.Size }

func (g solvedGraph) HasExit(idx int, dir gridaddr.Direction) bool {
	return g.exits.HasExit(g.grid.Cells[idx].Variant, dir)
}
