package flow

// MaxFlow computes the maximum feasible flow from source to sink using the
// Edmonds–Karp algorithm: breadth-first search finds the augmenting path
// with the fewest edges, the path's bottleneck residual capacity is pushed
// along it (incrementing forward flow, decrementing the residual
// counterparts), and the loop repeats until no augmenting path remains.
//
// It returns the net flow out of source: the sum of flow over every edge
// registered under source, where reverse residual edges keyed at source
// contribute their (non-positive) flow, so flow routed into source cancels
// out of the total.
//
// A sink unreachable from source legitimately yields 0. source == sink also
// yields 0 without searching. The flow assignment is left in g; see the
// package documentation for re-query semantics and Reset.
//
// Complexity: O(V·E²) time, O(V + E) memory.
func MaxFlow[N comparable](g *Graph[N], source, sink N, opts ...Option[N]) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	// No positive-capacity self-path is meaningful.
	if source == sink {
		return 0, nil
	}

	for {
		path := findAugmentingPath(g, source, sink)
		if path == nil {
			break
		}
		bottle := bottleneck(g, path)
		augment(g, path, bottle)
		o.OnAugment(snapshotPath(g, path), bottle)
	}

	return netFlowFrom(g, source), nil
}

// findAugmentingPath runs a breadth-first search from source over edges with
// strictly positive residual capacity, recording for each newly discovered
// node the edge used to reach it. The search exits the instant sink is
// discovered, which guarantees the returned path has the minimum number of
// edges among all augmenting paths. Returns nil when sink is unreachable.
// Complexity: O(V + E).
func findAugmentingPath[N comparable](g *Graph[N], source, sink N) []EdgeID {
	prev := make(map[N]EdgeID, len(g.adjacency))
	visited := make(map[N]bool, len(g.adjacency))
	visited[source] = true

	queue := []N{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, id := range g.adjacency[u] {
			e := &g.edges[id]
			if e.capacity-e.flow <= 0 || visited[e.to] {
				continue
			}
			visited[e.to] = true
			prev[e.to] = id
			if e.to == sink {
				return walkBack(g, prev, source, sink)
			}
			queue = append(queue, e.to)
		}
	}

	return nil
}

// walkBack reconstructs the source→sink edge sequence by following the
// predecessor map backward from sink, then reversing in place.
func walkBack[N comparable](g *Graph[N], prev map[N]EdgeID, source, sink N) []EdgeID {
	var path []EdgeID
	for at := sink; at != source; {
		id := prev[at]
		path = append(path, id)
		at = g.edges[id].from
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// bottleneck returns the minimum residual capacity along the path.
// The path is non-empty and every edge on it has positive residual.
func bottleneck[N comparable](g *Graph[N], path []EdgeID) int64 {
	min := g.edges[path[0]].capacity - g.edges[path[0]].flow
	for _, id := range path[1:] {
		if r := g.edges[id].capacity - g.edges[id].flow; r < min {
			min = r
		}
	}

	return min
}

// augment pushes amount units along every edge of the path and withdraws the
// same amount from each residual counterpart, preserving the antisymmetry
// flow(e) == -flow(residual(e)).
func augment[N comparable](g *Graph[N], path []EdgeID, amount int64) {
	for _, id := range path {
		g.edges[id].flow += amount
		g.edges[id.Residual()].flow -= amount
	}
}

// netFlowFrom sums the flow over all edges registered under source.
// Reverse residual edges pointing out of source carry non-positive flow, so
// the sum is the net amount leaving source.
func netFlowFrom[N comparable](g *Graph[N], source N) int64 {
	var sum int64
	for _, id := range g.adjacency[source] {
		sum += g.edges[id].flow
	}

	return sum
}

// snapshotPath copies the path's current arena state into public Edge form
// for the OnAugment hook.
func snapshotPath[N comparable](g *Graph[N], path []EdgeID) []Edge[N] {
	out := make([]Edge[N], len(path))
	for i, id := range path {
		out[i] = g.snapshot(id)
	}

	return out
}
