package graph

import (
	"container/heap"
	"fmt"
	"math"
)

// Unreachable is the distance of nodes which cannot be reached from the start.
const Unreachable = uint64(math.MaxUint64)

// Edge is a directed, weighted edge.
type Edge struct {
	To   int
	Cost uint64
}

// Dijkstra solves single-source shortest path problems with Dijkstra's
// algorithm. Nodes are identified by indices 0…n-1.
type Dijkstra struct {
	graph    [][]Edge // outgoing edges per node
	distance []uint64 // distance from start per node
}

// NewDijkstra creates a solver for a graph with size nodes and no edges.
func NewDijkstra(size int) *Dijkstra {
	d := &Dijkstra{
		graph:    make([][]Edge, size),
		distance: make([]uint64, size),
	}
	d.reset()
	return d
}

// Len returns the number of nodes.
func (d *Dijkstra) Len() int {
	return len(d.graph)
}

// AddEdge adds a directed edge from → to with cost. Both nodes are 0-indexed.
func (d *Dijkstra) AddEdge(from, to int, cost uint64) error {
	if !d.valid(from) || !d.valid(to) {
		return fmt.Errorf("%w: edge %d → %d in graph of %d nodes", ErrNodeOutOfRange, from, to, d.Len())
	}
	d.graph[from] = append(d.graph[from], Edge{To: to, Cost: cost})
	return nil
}

// Edges returns the outgoing edges of node from.
func (d *Dijkstra) Edges(from int) []Edge {
	return d.graph[from]
}

// Solve computes the distances of all nodes from start. Solve may be called
// repeatedly, with results of earlier calls being discarded. Paths whose cost
// does not fit below Unreachable are not followed.
func (d *Dijkstra) Solve(start int) error {
	if !d.valid(start) {
		return fmt.Errorf("%w: start node %d in graph of %d nodes", ErrNodeOutOfRange, start, d.Len())
	}
	d.reset()
	d.distance[start] = 0
	pq := &costQueue{{node: start, cost: 0}}
	settled := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(queued)
		if d.distance[current.node] < current.cost {
			continue // stale entry
		}
		settled++
		for _, e := range d.graph[current.node] {
			if e.Cost >= Unreachable-d.distance[current.node] {
				continue // path cost would overflow
			}
			candidate := d.distance[current.node] + e.Cost
			if candidate < d.distance[e.To] {
				d.distance[e.To] = candidate
				heap.Push(pq, queued{node: e.To, cost: candidate})
			}
		}
	}
	tracer().Debugf("dijkstra: settled %d of %d nodes from %d", settled, d.Len(), start)
	return nil
}

// Distance returns the distance of node to from the start node of the last
// call to Solve. The second return value is false if to is unreachable or
// out of range.
func (d *Dijkstra) Distance(to int) (uint64, bool) {
	if !d.valid(to) || d.distance[to] == Unreachable {
		return Unreachable, false
	}
	return d.distance[to], true
}

func (d *Dijkstra) valid(node int) bool {
	return node >= 0 && node < len(d.graph)
}

func (d *Dijkstra) reset() {
	for i := range d.distance {
		d.distance[i] = Unreachable
	}
}

// --- Priority queue --------------------------------------------------------

type queued struct {
	node int
	cost uint64
}

// costQueue is a min-heap of queued nodes, ordered by cost.
// costQueue implements heap.Interface.
type costQueue []queued

func (q costQueue) Len() int           { return len(q) }
func (q costQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q costQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *costQueue) Push(x any) {
	*q = append(*q, x.(queued))
}

func (q *costQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
