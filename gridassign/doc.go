// Package gridassign turns a textual grid world into a maximum-assignment
// answer: how many hub cells can simultaneously be matched with one reachable
// supply cell and one reachable demand cell, every cell used at most once.
//
// # What
//
//   - World: an immutable rectangular grid of terrain glyphs
//     ('.' passable, 'X' blocked, 'S' supply, 'D' demand, 'H' hub)
//     plus a search radius, parsed from the "rows, cols, maxDist" text format
//     or built from in-memory rows.
//   - For every hub, a bounded breadth-first search over passable cells
//     discovers the supply and demand cells within the radius. Supply and
//     demand cells terminate the search: they are collected, never walked
//     through.
//   - MaxAssignments encodes the discovered (supply, hub, demand) candidate
//     triples as a flow network and answers with one max-flow call.
//
// # Reduction
//
// Exclusivity — each cell used by at most one assignment — is node-splitting:
// every supply, hub, and demand cell becomes an in/out twin pair joined by a
// single capacity-1 edge. Wiring, all unit capacity:
//
//	source → S(in), S(out) → H(in), H(out) → D(in), D(out) → sink
//
// A global source feeds every supply and a global sink drains every demand,
// so the max-flow value from source to sink is exactly the number of
// satisfiable assignments. Twin identities are explicit composite keys
// (cell, in|out); the engine accepts any comparable node type, so no encoding
// tricks are needed. The engine never deduplicates edges, so this package
// tracks already-wired node pairs and adds each logical unit edge once.
//
// # Radius semantics
//
// A supply or demand cell counts as reachable when some path of passable
// cells connects it to the hub with total length ≤ MaxDist steps. Passable
// cells are only expanded strictly below the radius; terminals sitting at
// exactly MaxDist are still collected.
//
// # Errors
//
//	ErrBadHeader         - malformed "rows, cols, maxDist" header line.
//	ErrEmptyWorld        - no rows or no columns.
//	ErrRaggedRow         - rows of differing lengths.
//	ErrDimensionMismatch - grid body does not match the header dimensions.
//	ErrBadTerrain        - a glyph outside the terrain alphabet.
//	ErrBadRadius         - search radius below 1.
//	ErrNilWorld          - MaxAssignments over a nil world.
//
// Complexity: parsing O(R·C); reachability O(R·C) per hub; the final
// max-flow is O(V·E²) on the reduced network, which in practice is small and
// unit-capacity.
package gridassign
