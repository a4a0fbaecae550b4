// Package flow implements a maximum-flow engine over a directed capacitated
// graph with generic node identifiers. It provides a residual graph that
// tracks per-edge flow and a solver that computes the maximum feasible flow
// from a source to a sink via Edmonds–Karp (breadth-first shortest augmenting
// paths).
//
// # What
//
//   - Graph[N]: adjacency plus per-edge flow state for any comparable node
//     type N. Every AddEdge call creates a forward edge (capacity c, flow 0)
//     and its reverse residual edge (capacity 0, flow 0), linked as each
//     other's counterpart. Edges are never deduplicated by value: two calls
//     with identical endpoints and capacity yield two independent edge pairs,
//     which node-splitting constructions rely on.
//   - MaxFlow: repeatedly finds the shortest (fewest-edge) augmenting path by
//     breadth-first search over strictly-positive residual capacities, pushes
//     the bottleneck amount along it, and terminates when no path remains.
//
// # Why Edmonds–Karp
//
// Shortest-path selection is what bounds the number of augmentations by
// O(V·E) regardless of capacity magnitudes; plain Ford–Fulkerson under
// adversarial path choice is only bounded by the total flow value. BFS is
// therefore mandatory here, not an optimization.
//
// # Representation
//
// Edges live in an index arena: the pair created by the k-th AddEdge occupies
// arena slots 2k (forward) and 2k+1 (reverse), so an edge's residual
// counterpart is its index with the low bit flipped — a plain index
// reference, no pointer cycles. Adjacency maps each node to the slice of its
// outgoing edge IDs in insertion order, which makes BFS tie-breaking, and
// with it the whole computation, deterministic for a fixed insertion order.
//
// # Invariants
//
//   - 0 ≤ flow(e) and residualCapacity(e) = capacity(e) − flow(e) ≥ 0 on
//     every forward edge, before and after every augmentation.
//   - flow(e) == −flow(residual(e)) for every edge pair.
//   - Flow is conserved at every node other than source and sink.
//   - All quantities are int64; only integer amounts ever move.
//
// # Ownership
//
// A Graph is built single-threaded, solved single-threaded: finish all
// AddEdge calls before MaxFlow, and do not mutate the graph or call MaxFlow
// concurrently on the same instance. MaxFlow leaves its flow assignment in
// the graph; calling it again without Reset is a re-query of the converged
// state (it finds no augmenting path and returns the same total), not a
// recomputation from scratch. Use Reset for a fresh solve.
//
// # Complexity (V = nodes, E = edge pairs)
//
//   - AddEdge: O(1) amortized. EdgesFrom: O(deg).
//   - MaxFlow: O(V·E²) time, O(V + E) memory.
//
// # Errors
//
//   - ErrSelfLoop            — AddEdge with source == sink.
//   - ErrNegativeCapacity    — AddEdge with capacity < 0.
//   - ErrEdgeNotFound        — edge lookup with an ID this graph never issued.
//   - ErrGraphNil            — MaxFlow over a nil graph.
package flow
