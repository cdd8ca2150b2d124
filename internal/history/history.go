// Package history implements the append-only snapshot ledger consumed
// by presentation layers for solve playback.
package history

// Snapshot is an immutable copy of a solver grid at one point during a
// build attempt. Values holds one variant index per cell, row-major;
// -1 marks an uncollapsed (or pruned) cell. Path marks cells lying on
// the validated start->goal route; the builder sets it only on the
// path-marked snapshot it pushes after validation (nil elsewhere).
type Snapshot struct {
	Size   int
	Values []int
	Path   []bool
}

// NewSnapshot copies values (and, if non-nil, path) into a new Snapshot.
// The caller's slices are never retained, so later mutation of the live
// grid cannot corrupt a pushed snapshot.
func NewSnapshot(size int, values []int, path []bool) Snapshot {
	s := Snapshot{Size: size, Values: make([]int, len(values))}
	copy(s.Values, values)
	if path != nil {
		s.Path = make([]bool, len(path))
		copy(s.Path, path)
	}
	return s
}

// Ledger is an append-only, ordered sequence of snapshots. It supports
// no random-access mutation: once pushed, a snapshot is immutable.
type Ledger struct {
	snapshots []Snapshot
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Push appends a snapshot to the ledger.
func (l *Ledger) Push(s Snapshot) {
	l.snapshots = append(l.snapshots, s)
}

// Clear discards every snapshot, as done at the start of each build
// attempt and whenever an attempt is abandoned to contradiction.
func (l *Ledger) Clear() {
	l.snapshots = nil
}

// Len returns the number of snapshots currently held.
func (l *Ledger) Len() int {
	return len(l.snapshots)
}

// At returns the snapshot at the given index.
func (l *Ledger) At(i int) Snapshot {
	return l.snapshots[i]
}

// All returns the full snapshot sequence in push order. The returned
// slice aliases the ledger's backing array and must not be mutated by
// the caller.
func (l *Ledger) All() []Snapshot {
	return l.snapshots
}
