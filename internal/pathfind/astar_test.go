package pathfind

import (
	"testing"

	"github.com/tilefield/wfcgen/internal/gridaddr"
)

// edgeGraph is a minimal Graph backed by a per-cell, per-direction
// connectivity table, for exercising AStar/ReachableFrom independent of
// any concrete variant catalog.
type edgeGraph struct {
	size  int
	exits map[int]map[gridaddr.Direction]bool
}

func newEdgeGraph(size int) *edgeGraph {
	return &edgeGraph{size: size, exits: map[int]map[gridaddr.Direction]bool{}}
}

func (g *edgeGraph) Size() int { return g.size }

func (g *edgeGraph) HasExit(idx int, dir gridaddr.Direction) bool {
	return g.exits[idx][dir]
}

// connect marks a bidirectional exit between a and b (which must be
// orthogonally adjacent) in both directions.
func (g *edgeGraph) connect(a, b int, dir gridaddr.Direction) {
	if g.exits[a] == nil {
		g.exits[a] = map[gridaddr.Direction]bool{}
	}
	if g.exits[b] == nil {
		g.exits[b] = map[gridaddr.Direction]bool{}
	}
	g.exits[a][dir] = true
	g.exits[b][dir.Opposite()] = true
}

// fullyConnectedGrid returns a size x size graph where every orthogonal
// pair of adjacent cells is mutually connected.
func fullyConnectedGrid(size int) *edgeGraph {
	g := newEdgeGraph(size)
	for idx := 0; idx < size*size; idx++ {
		for _, dir := range gridaddr.All() {
			if n, ok := gridaddr.Move(idx, dir, size); ok {
				g.connect(idx, n, dir)
			}
		}
	}
	return g
}

func TestAStarFindsPathOnFullyConnectedGrid(t *testing.T) {
	g := fullyConnectedGrid(5)
	path, ok := AStar(g, gridaddr.Idx(0, 0, 5), gridaddr.Idx(4, 4, 5))
	if !ok {
		t.Fatal("expected a path on a fully connected grid")
	}
	if path[0] != gridaddr.Idx(0, 0, 5) || path[len(path)-1] != gridaddr.Idx(4, 4, 5) {
		t.Errorf("path endpoints = %v, want start/goal endpoints", path)
	}
	// Manhattan distance between corners of a 5x5 grid is 8; the
	// shortest path has 9 cells.
	if len(path) != 9 {
		t.Errorf("len(path) = %d, want 9", len(path))
	}
}

func TestAStarNoPathWhenDisconnected(t *testing.T) {
	g := newEdgeGraph(3)
	// Leave every cell with no exits: no path exists anywhere.
	_, ok := AStar(g, 0, 8)
	if ok {
		t.Error("expected no path in a graph with zero exits")
	}
}

func TestReachableFromFullyConnectedGridIsAllTrue(t *testing.T) {
	g := fullyConnectedGrid(4)
	got := ReachableFrom(g, 0)
	for i, ok := range got {
		if !ok {
			t.Errorf("cell %d not reachable from origin on a fully connected grid", i)
		}
	}
}

func TestReachableFromPrunesIsolatedCell(t *testing.T) {
	g := fullyConnectedGrid(3)
	isolated := gridaddr.Idx(2, 2, 3)

	// Sever every exit into and out of the isolated cell.
	for _, dir := range gridaddr.All() {
		delete(g.exits[isolated], dir)
		if n, ok := gridaddr.Move(isolated, dir, 3); ok {
			delete(g.exits[n], dir.Opposite())
		}
	}

	reachable := ReachableFrom(g, 0)
	if reachable[isolated] {
		t.Error("isolated cell should not be reachable from origin")
	}
	count := 0
	for _, ok := range reachable {
		if ok {
			count++
		}
	}
	if count != 8 {
		t.Errorf("reachable count = %d, want 8 (all but the isolated cell)", count)
	}
}
