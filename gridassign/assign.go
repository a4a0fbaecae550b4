package gridassign

import "github.com/katalvlaran/flownet/flow"

// half labels one side of a split cell.
type half uint8

const (
	halfIn half = iota
	halfOut
)

// nodeKind separates the two terminal nodes from split cell twins.
type nodeKind uint8

const (
	kindSource nodeKind = iota
	kindSink
	kindCell
)

// node keys the flow network: either a terminal, or one twin of a cell.
// An explicit composite key keeps twin identities unambiguous for any
// coordinate values.
type node struct {
	kind nodeKind
	cell Cell
	half half
}

var (
	sourceNode = node{kind: kindSource}
	sinkNode   = node{kind: kindSink}
)

func cellIn(c Cell) node { return node{kind: kindCell, cell: c, half: halfIn} }
func cellOut(c Cell) node { return node{kind: kindCell, cell: c, half: halfOut} }

// reducer accumulates the flow network for one world. The engine keeps every
// AddEdge as an independent edge pair, so the reducer dedups wiring itself:
// each logical unit edge is added exactly once no matter how many hub
// searches rediscover it.
type reducer struct {
	g     *flow.Graph[node]
	wired map[[2]node]bool
}

func newReducer() *reducer {
	return &reducer{
		g:     flow.NewGraph[node](),
		wired: make(map[[2]node]bool),
	}
}

// wire adds a capacity-1 edge from→to unless it exists already.
func (r *reducer) wire(from, to node) error {
	key := [2]node{from, to}
	if r.wired[key] {
		return nil
	}
	r.wired[key] = true
	_, err := r.g.AddEdge(from, to, 1)

	return err
}

// split joins c's twins with the single capacity-1 edge that models
// "this cell serves at most one assignment".
func (r *reducer) split(c Cell) error {
	return r.wire(cellIn(c), cellOut(c))
}

// link wires a(out)→b(in) and splits both endpoints.
func (r *reducer) link(a, b Cell) error {
	if err := r.split(a); err != nil {
		return err
	}
	if err := r.wire(cellOut(a), cellIn(b)); err != nil {
		return err
	}

	return r.split(b)
}

// MaxAssignments answers how many hubs can simultaneously be matched with
// one reachable supply and one reachable demand, each supply, hub, and
// demand cell used at most once.
//
// For every hub the bounded reachability search yields its candidate supply
// and demand cells; candidates are wired source→supply→hub→demand→sink
// through split twins, all unit capacity, and a single max-flow call over
// the finished network is the answer. A world with no hubs, or whose hubs
// reach no candidates, yields 0.
func MaxAssignments(w *World) (int64, error) {
	if w == nil {
		return 0, ErrNilWorld
	}

	r := newReducer()
	for row := 0; row < w.Rows; row++ {
		for col := 0; col < w.Cols; col++ {
			hub := Cell{Row: row, Col: col}
			if w.At(hub) != Hub {
				continue
			}
			supplies, demands := w.reachable(hub)
			for _, s := range supplies {
				if err := r.wire(sourceNode, cellIn(s)); err != nil {
					return 0, err
				}
				if err := r.link(s, hub); err != nil {
					return 0, err
				}
			}
			for _, d := range demands {
				if err := r.link(hub, d); err != nil {
					return 0, err
				}
				if err := r.wire(cellOut(d), sinkNode); err != nil {
					return 0, err
				}
			}
		}
	}

	return flow.MaxFlow(r.g, sourceNode, sinkNode)
}
