package wfc

// Cell is a single grid position during solving: either collapsed to
// one variant, or holding a domain of variants still permissible given
// its currently-collapsed neighbors.
type Cell struct {
	X, Y      int
	Domain    Domain
	Collapsed bool
	Variant   int // valid only if Collapsed
}

// Grid is a flat, row-major sequence of cells, the solver's working
// state for one build attempt.
type Grid struct {
	Size  int
	Cells []Cell
}

// NewGrid returns a size x size grid with every cell's domain set to
// every variant in the model.
func NewGrid(size int, model Model) *Grid {
	g := &Grid{Size: size, Cells: make([]Cell, size*size)}
	for i := range g.Cells {
		g.Cells[i] = Cell{
			X:      i % size,
			Y:      i / size,
			Domain: NewDomain(model.NumVariants()),
		}
	}
	return g
}

// Values returns one variant index per cell, row-major, -1 for
// uncollapsed cells — the shape history.Snapshot expects.
func (g *Grid) Values() []int {
	out := make([]int, len(g.Cells))
	for i, c := range g.Cells {
		if c.Collapsed {
			out[i] = c.Variant
		} else {
			out[i] = -1
		}
	}
	return out
}

// AllCollapsed reports whether every cell has been assigned a variant.
func (g *Grid) AllCollapsed() bool {
	for _, c := range g.Cells {
		if !c.Collapsed {
			return false
		}
	}
	return true
}
