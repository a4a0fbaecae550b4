package gridassign

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NewWorld builds a World from in-memory rows of terrain glyphs.
// Dimensions are taken from the rows themselves; the input is deep-copied.
// Returns ErrEmptyWorld, ErrRaggedRow, ErrBadTerrain, or ErrBadRadius on
// invalid input.
// Complexity: O(R·C) time and memory.
func NewWorld(maxDist int, rows []string) (*World, error) {
	if maxDist < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRadius, maxDist)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyWorld
	}
	cols := len(rows[0])

	cells := make([][]Terrain, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, r, len(row), cols)
		}
		cells[r] = make([]Terrain, cols)
		for c := 0; c < cols; c++ {
			t := Terrain(row[c])
			switch t {
			case Passable, Blocked, Supply, Demand, Hub:
				cells[r][c] = t
			default:
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrBadTerrain, row[c], r, c)
			}
		}
	}

	return &World{
		Rows:    len(rows),
		Cols:    cols,
		MaxDist: maxDist,
		cells:   cells,
	}, nil
}

// ParseWorld reads the textual world format: a header line
// "rows, cols, maxDist" followed by exactly rows lines of cols glyphs each.
// Returns ErrBadHeader or ErrDimensionMismatch for format violations, plus
// any NewWorld validation error.
func ParseWorld(r io.Reader) (*World, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("gridassign: read header: %w", err)
		}

		return nil, fmt.Errorf("%w: missing header line", ErrBadHeader)
	}
	rows, cols, maxDist, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, rows)
	for len(lines) < rows && sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("gridassign: read grid: %w", err)
	}
	if len(lines) < rows {
		return nil, fmt.Errorf("%w: header promises %d rows, got %d", ErrDimensionMismatch, rows, len(lines))
	}
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: header promises %d cols, row %d has %d", ErrDimensionMismatch, cols, i, len(line))
		}
	}

	return NewWorld(maxDist, lines)
}

// parseHeader splits "rows, cols, maxDist" into its three integers.
func parseHeader(line string) (rows, cols, maxDist int, err error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: got %q", ErrBadHeader, line)
	}
	fields := [3]*int{&rows, &cols, &maxDist}
	for i, part := range parts {
		v, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: got %q", ErrBadHeader, line)
		}
		*fields[i] = v
	}
	if rows < 1 || cols < 1 {
		return 0, 0, 0, fmt.Errorf("%w: non-positive dimensions in %q", ErrBadHeader, line)
	}

	return rows, cols, maxDist, nil
}
