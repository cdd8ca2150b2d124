package wfc

import "github.com/tilefield/wfcgen/internal/gridaddr"

// Model is the compatibility rule a Solver consults: a source-agnostic
// view over a fixed catalog of variants, grounded in spec.md §9's
// "polymorphic variant sources" design note (image tiling and
// text-pattern extraction both reduce to this one interface rather than
// a shared base type). internal/builder provides one implementation
// backed by catalog.Catalog (edge comparison) and one backed by
// chunk.Pattern (precomputed pattern overlap).
type Model interface {
	// NumVariants returns the number of variants in the catalog.
	NumVariants() int

	// Weight returns the selection weight of variant i.
	Weight(i int) float64

	// Compatible reports whether variant i, placed at a cell, may have
	// variant j as its neighbor in direction dir.
	Compatible(i int, dir gridaddr.Direction, j int) bool

	// BoundaryOK reports whether variant i may legally face the grid
	// boundary in direction dir (i.e. its outward edge carries no
	// connection). Always consulted at map edges, per spec.md §9 open
	// question 4.
	BoundaryOK(i int, dir gridaddr.Direction) bool
}
