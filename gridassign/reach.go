package gridassign

// reachItem pairs a cell with its distance from the hub.
type reachItem struct {
	cell  Cell
	depth int
}

// reachable finds every supply and demand cell connected to hub by a path of
// passable cells of length ≤ w.MaxDist. Supply and demand cells are
// terminals: they are collected at their first discovery but never expanded.
// Passable cells are expanded only while strictly below the radius, so
// terminals sitting at exactly MaxDist are still found.
//
// Discovery order is deterministic: breadth-first, neighbors in
// north/west/east/south order.
//
// Complexity: O(R·C) time and memory.
func (w *World) reachable(hub Cell) (supplies, demands []Cell) {
	visited := map[Cell]bool{hub: true}
	seenSupply := make(map[Cell]bool)
	seenDemand := make(map[Cell]bool)

	queue := []reachItem{{cell: hub, depth: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighborOffsets {
			next := Cell{Row: cur.cell.Row + d[0], Col: cur.cell.Col + d[1]}
			switch w.At(next) {
			case Supply:
				if !seenSupply[next] {
					seenSupply[next] = true
					supplies = append(supplies, next)
				}
			case Demand:
				if !seenDemand[next] {
					seenDemand[next] = true
					demands = append(demands, next)
				}
			case Passable:
				if !visited[next] && cur.depth+1 < w.MaxDist {
					visited[next] = true
					queue = append(queue, reachItem{cell: next, depth: cur.depth + 1})
				}
			}
		}
	}

	return supplies, demands
}
