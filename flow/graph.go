package flow

import "fmt"

// edgeState is the arena record backing one directed edge.
// The residual counterpart of the edge at arena index i sits at i^1.
type edgeState[N comparable] struct {
	from, to N
	capacity int64
	flow     int64
}

// Graph is a directed capacitated graph with per-edge flow state, keyed by
// any comparable node type. Nodes exist implicitly: they appear the first
// time an edge touches them and are never removed. Adjacency grows
// append-only; AddEdge never deduplicates by value.
//
// Not safe for concurrent use. See the package documentation for the
// construct-then-solve ownership contract.
type Graph[N comparable] struct {
	edges     []edgeState[N]
	adjacency map[N][]EdgeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{
		adjacency: make(map[N][]EdgeID),
	}
}

// AddEdge creates a forward edge from→to with the given capacity together
// with its reverse residual edge to→from of capacity 0, links them as each
// other's counterpart, and registers each under its own source node.
// It returns the forward edge's ID; the reverse edge's ID is id.Residual().
//
// Rejected atomically, with no state committed:
//   - ErrSelfLoop if from == to,
//   - ErrNegativeCapacity if capacity < 0.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to N, capacity int64) (EdgeID, error) {
	if from == to {
		return 0, fmt.Errorf("%w: self-loop at %v", ErrSelfLoop, from)
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: %d on %v→%v", ErrNegativeCapacity, capacity, from, to)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges,
		edgeState[N]{from: from, to: to, capacity: capacity},
		edgeState[N]{from: to, to: from, capacity: 0},
	)
	g.adjacency[from] = append(g.adjacency[from], id)
	g.adjacency[to] = append(g.adjacency[to], id.Residual())

	return id, nil
}

// EdgesFrom returns snapshots of all edges leaving n, forward and reverse
// residual edges alike, in insertion order. A node no edge has touched
// yields an empty slice, never an error.
// Complexity: O(deg(n)).
func (g *Graph[N]) EdgesFrom(n N) []Edge[N] {
	ids := g.adjacency[n]
	out := make([]Edge[N], len(ids))
	for i, id := range ids {
		out[i] = g.snapshot(id)
	}

	return out
}

// Edge returns a snapshot of the edge with the given ID, or ErrEdgeNotFound
// for an ID this graph never issued.
func (g *Graph[N]) Edge(id EdgeID) (Edge[N], error) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge[N]{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}

	return g.snapshot(id), nil
}

// Residual returns a snapshot of the residual counterpart of the edge with
// the given ID, or ErrEdgeNotFound for an unknown ID.
func (g *Graph[N]) Residual(id EdgeID) (Edge[N], error) {
	return g.Edge(id.Residual())
}

// ResidualCapacity reports capacity minus current flow for the given edge.
// It is never negative while the graph's invariants hold.
func (g *Graph[N]) ResidualCapacity(id EdgeID) (int64, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return 0, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	e := &g.edges[id]

	return e.capacity - e.flow, nil
}

// Reset zeroes the flow on every edge, making the graph ready for a fresh
// MaxFlow computation over the same topology.
// Complexity: O(E).
func (g *Graph[N]) Reset() {
	for i := range g.edges {
		g.edges[i].flow = 0
	}
}

// Order reports the number of distinct nodes any edge has touched.
func (g *Graph[N]) Order() int { return len(g.adjacency) }

// Size reports the number of forward/reverse edge pairs added so far.
func (g *Graph[N]) Size() int { return len(g.edges) / 2 }

// snapshot copies the arena record at id into the public Edge form.
func (g *Graph[N]) snapshot(id EdgeID) Edge[N] {
	e := &g.edges[id]

	return Edge[N]{
		ID:       id,
		From:     e.from,
		To:       e.to,
		Capacity: e.capacity,
		Flow:     e.flow,
	}
}
