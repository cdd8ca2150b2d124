package wfc

import (
	"errors"
	"math/rand"

	"github.com/tilefield/wfcgen/internal/gridaddr"
	"github.com/tilefield/wfcgen/internal/history"
	"github.com/tilefield/wfcgen/internal/sampling"
)

// ErrContradiction is returned when a free cell's domain becomes empty
// before it can be collapsed. The caller (internal/builder) discards
// the attempt and retries from scratch.
var ErrContradiction = errors.New("wfc: contradiction")

// Solver runs one Wave Function Collapse attempt over a fixed-size
// grid. A Solver is single-use: construct a fresh one per attempt via
// NewSolver.
type Solver struct {
	Grid       *Grid
	model      Model
	rng        *rand.Rand
	ledger     *history.Ledger
	logHistory bool
}

// NewSolver builds a solver for a size x size grid under model. If
// logHistory is true, every collapse is snapshotted into ledger;
// otherwise only the final snapshot is (at least one snapshot is always
// pushed on a completed solve, per spec.md §4.5).
func NewSolver(size int, model Model, rng *rand.Rand, ledger *history.Ledger, logHistory bool) *Solver {
	return &Solver{
		Grid:       NewGrid(size, model),
		model:      model,
		rng:        rng,
		ledger:     ledger,
		logHistory: logHistory,
	}
}

// Solve runs the collapse loop to completion. It returns ErrContradiction
// if some free cell's filtered domain becomes empty before assignment.
func (s *Solver) Solve() error {
	if err := s.collapseInitial(); err != nil {
		return err
	}

	for !s.Grid.AllCollapsed() {
		idx, domain, ok := s.pickNextCell()
		if !ok {
			// No free neighbor of any collapsed cell remains reachable;
			// the grid must already be fully collapsed.
			break
		}
		if domain.Empty() {
			return ErrContradiction
		}

		variant := s.sampleVariant(domain)
		s.Grid.Cells[idx].Collapsed = true
		s.Grid.Cells[idx].Variant = variant

		if s.logHistory {
			s.pushSnapshot(nil)
		}
	}

	s.pushSnapshot(nil)
	return nil
}

// collapseInitial picks one random cell and assigns one random variant,
// per spec.md §4.5's initial step. The variant is drawn from the cell's
// filtered domain, so the boundary rule applies to the initial cell too;
// an empty domain there is a contradiction.
func (s *Solver) collapseInitial() error {
	idx := s.rng.Intn(len(s.Grid.Cells))
	domain := s.filterDomain(idx)
	if domain.Empty() {
		return ErrContradiction
	}

	variant := s.sampleVariant(domain)
	s.Grid.Cells[idx].Collapsed = true
	s.Grid.Cells[idx].Variant = variant

	if s.logHistory {
		s.pushSnapshot(nil)
	}
	return nil
}

// pickNextCell finds the free neighbor(s) of collapsed cells with the
// minimum filtered-domain weight-sum, breaking ties uniformly at
// random, and returns its index and filtered domain.
func (s *Solver) pickNextCell() (idx int, domain Domain, ok bool) {
	type candidate struct {
		idx    int
		domain Domain
		weight float64
	}

	var candidates []candidate
	for i, c := range s.Grid.Cells {
		if c.Collapsed {
			continue
		}
		if !s.hasCollapsedNeighbor(i) {
			continue
		}
		d := s.filterDomain(i)
		candidates = append(candidates, candidate{
			idx:    i,
			domain: d,
			weight: d.WeightSum(s.model.Weight),
		})
	}

	if len(candidates) == 0 {
		return 0, Domain{}, false
	}

	best := candidates[0].weight
	for _, c := range candidates[1:] {
		if c.weight < best {
			best = c.weight
		}
	}

	var tied []candidate
	for _, c := range candidates {
		if c.weight == best {
			tied = append(tied, c)
		}
	}

	chosen := tied[s.rng.Intn(len(tied))]
	return chosen.idx, chosen.domain, true
}

// hasCollapsedNeighbor reports whether cell idx is orthogonally adjacent
// to at least one already-collapsed cell.
func (s *Solver) hasCollapsedNeighbor(idx int) bool {
	for _, dir := range gridaddr.All() {
		n, inBounds := gridaddr.Move(idx, dir, s.Grid.Size)
		if inBounds && s.Grid.Cells[n].Collapsed {
			return true
		}
	}
	return false
}

// filterDomain computes cell idx's domain per spec.md §4.5: for each
// direction with a collapsed neighbor, keep only variants compatible
// with that neighbor; for each direction at the map boundary, keep only
// variants whose outward edge is legal there.
func (s *Solver) filterDomain(idx int) Domain {
	full := NewDomain(s.model.NumVariants())

	return full.Filter(func(v int) bool {
		for _, dir := range gridaddr.All() {
			n, inBounds := gridaddr.Move(idx, dir, s.Grid.Size)
			if !inBounds {
				if !s.model.BoundaryOK(v, dir) {
					return false
				}
				continue
			}
			neighbor := s.Grid.Cells[n]
			if neighbor.Collapsed && !s.model.Compatible(v, dir, neighbor.Variant) {
				return false
			}
		}
		return true
	})
}

func (s *Solver) sampleVariant(domain Domain) int {
	indices := domain.Indices()
	weights := make([]float64, len(indices))
	for i, v := range indices {
		weights[i] = s.model.Weight(v)
	}
	return indices[sampling.Weighted(s.rng, weights)]
}

func (s *Solver) pushSnapshot(path []bool) {
	if s.ledger == nil {
		return
	}
	s.ledger.Push(history.NewSnapshot(s.Grid.Size, s.Grid.Values(), path))
}
