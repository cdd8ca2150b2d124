// Package pathfind implements A* search and reachability pruning over a
// solved grid's edge-connectivity graph, run once after a successful
// collapse to validate and trim the result.
//
// Grounded on original_source/src/map/pathfinding.rs (successor rule,
// Manhattan heuristic, astar call) and lawnchairsociety-OpenTowerMUD's
// internal/wfc isConnected BFS, generalized to a container/heap priority
// queue since no equivalent third-party graph search library in the
// retrieval pack could be safely depended on (see DESIGN.md).
package pathfind

import (
	"container/heap"

	"github.com/tilefield/wfcgen/internal/gridaddr"
)

// Graph is the minimal view pathfind needs of a solved grid: its side
// length, and whether cell idx has a connection (non-zero edge) in a
// given direction.
type Graph interface {
	Size() int
	HasExit(idx int, dir gridaddr.Direction) bool
}

// successors returns the cells reachable from idx in one step, per the
// edge-connectivity successor rule: a direction is a successor iff idx
// has a non-zero edge that way AND the move stays in bounds.
func successors(g Graph, idx int) []int {
	var out []int
	for _, dir := range gridaddr.All() {
		if !g.HasExit(idx, dir) {
			continue
		}
		n, ok := gridaddr.Move(idx, dir, g.Size())
		if ok {
			out = append(out, n)
		}
	}
	return out
}

func manhattan(a, b, size int) int {
	ax, ay := gridaddr.XY(a, size)
	bx, by := gridaddr.XY(b, size)
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

type pqEntry struct {
	idx      int
	priority int // g + h
	index    int // heap bookkeeping
}

type priorityQueue []*pqEntry

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	e := x.(*pqEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

// AStar searches for a path from start to goal using edge-connectivity
// successors, a Manhattan-distance heuristic, and uniform edge cost 1.
// It returns the path (inclusive of start and goal, in order) and true
// on success, or (nil, false) if no path exists.
func AStar(g Graph, start, goal int) ([]int, bool) {
	size := g.Size()
	gScore := map[int]int{start: 0}
	cameFrom := map[int]int{}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqEntry{idx: start, priority: manhattan(start, goal, size)})

	visited := map[int]bool{}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*pqEntry)
		if visited[current.idx] {
			continue
		}
		visited[current.idx] = true

		if current.idx == goal {
			return reconstructPath(cameFrom, start, goal), true
		}

		for _, next := range successors(g, current.idx) {
			tentativeG := gScore[current.idx] + 1
			if existing, ok := gScore[next]; ok && tentativeG >= existing {
				continue
			}
			gScore[next] = tentativeG
			cameFrom[next] = current.idx
			heap.Push(pq, &pqEntry{idx: next, priority: tentativeG + manhattan(next, goal, size)})
		}
	}

	return nil, false
}

func reconstructPath(cameFrom map[int]int, start, goal int) []int {
	path := []int{goal}
	current := goal
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}

	// reverse into start->goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ReachableFrom returns, for every cell index, whether a path to origin
// exists using the same edge-connectivity successor rule — but walked
// in reverse, since reachability is computed back to (0,0) per
// spec.md §4.6. Implemented as a BFS from origin over the reversed
// adjacency (if A has an exit toward B, B can reach A).
func ReachableFrom(g Graph, origin int) []bool {
	size := g.Size()
	reachable := make([]bool, size*size)
	reachable[origin] = true

	queue := []int{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range gridaddr.All() {
			n, ok := gridaddr.Move(current, dir, size)
			if !ok || reachable[n] {
				continue
			}
			// n can reach current iff n has an exit toward current.
			if g.HasExit(n, dir.Opposite()) {
				reachable[n] = true
				queue = append(queue, n)
			}
		}
	}

	return reachable
}
