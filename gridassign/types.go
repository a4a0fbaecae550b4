package gridassign

import "errors"

// Sentinel errors for world construction and solving.
var (
	// ErrBadHeader indicates a malformed "rows, cols, maxDist" header line.
	ErrBadHeader = errors.New(`gridassign: header must be "rows, cols, maxDist"`)

	// ErrEmptyWorld indicates the grid has no rows or no columns.
	ErrEmptyWorld = errors.New("gridassign: world must have at least one row and one column")

	// ErrRaggedRow indicates rows of differing lengths.
	ErrRaggedRow = errors.New("gridassign: all rows must have the same length")

	// ErrDimensionMismatch indicates the grid body disagrees with the header.
	ErrDimensionMismatch = errors.New("gridassign: grid does not match header dimensions")

	// ErrBadTerrain indicates a glyph outside the terrain alphabet.
	ErrBadTerrain = errors.New("gridassign: unknown terrain glyph")

	// ErrBadRadius indicates a search radius below 1.
	ErrBadRadius = errors.New("gridassign: search radius must be at least 1")

	// ErrNilWorld is returned if a nil world pointer is passed.
	ErrNilWorld = errors.New("gridassign: world is nil")
)

// Terrain is one grid cell's category, stored as its text glyph.
type Terrain byte

const (
	// Passable cells can be walked through by the reachability search.
	Passable Terrain = '.'
	// Blocked cells can never be entered.
	Blocked Terrain = 'X'
	// Supply cells feed one assignment each.
	Supply Terrain = 'S'
	// Demand cells complete one assignment each.
	Demand Terrain = 'D'
	// Hub cells are the assignment midpoints the search radiates from.
	Hub Terrain = 'H'
)

// Cell addresses one grid position, row-major from the top-left corner.
type Cell struct {
	Row, Col int
}

// neighborOffsets orders the 4-neighborhood north, west, east, south.
// All traversals use this order, which keeps discovery deterministic.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// World is an immutable grid of terrain plus the reachability radius.
// Construct via NewWorld or ParseWorld; the cell matrix is deep-copied.
type World struct {
	// Rows and Cols are the grid dimensions.
	Rows, Cols int

	// MaxDist bounds the hub reachability search, in steps.
	MaxDist int

	cells [][]Terrain
}

// InBounds reports whether c lies within the grid.
func (w *World) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < w.Rows && c.Col >= 0 && c.Col < w.Cols
}

// At returns the terrain at c. Out-of-bounds cells read as Blocked.
func (w *World) At(c Cell) Terrain {
	if !w.InBounds(c) {
		return Blocked
	}

	return w.cells[c.Row][c.Col]
}
