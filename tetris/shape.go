package tetris

import (
	"cmp"
	"slices"
)

// Color is a display color carried alongside locked cells so renderers can
// paint the board without knowing which piece produced each cell.
// The zero value means an empty cell.
type Color struct {
	R, G, B, A uint8
}

// ShapeKind identifies one of the seven tetromino shapes.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ

	// ShapeKindCount is the number of distinct shape kinds.
	ShapeKindCount = 7
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	}
	return "?"
}

// Color returns the kind's display color.
func (k ShapeKind) Color() Color {
	return shapeColors[k]
}

// RotationStates returns the canonical rotation states for the kind.
// Each state is a normalized, sorted set of cell offsets relative to the
// piece origin. The returned slices are shared static data; callers must
// not mutate them.
func (k ShapeKind) RotationStates() [][]Cell {
	return shapeStates[k]
}

var shapeColors = [ShapeKindCount]Color{
	ShapeI: {0, 240, 240, 255},
	ShapeJ: {0, 0, 240, 255},
	ShapeL: {240, 160, 0, 255},
	ShapeO: {240, 240, 0, 255},
	ShapeS: {0, 240, 0, 255},
	ShapeT: {160, 0, 240, 255},
	ShapeZ: {240, 0, 0, 255},
}

// Base patterns for each kind. Rows are strings of '.' (empty) and 'X'
// (filled); patterns may be smaller than 4x4 and are padded during
// catalog construction.
var shapePatterns = [ShapeKindCount][]string{
	ShapeI: {
		"....",
		"XXXX",
		"....",
		"....",
	},
	ShapeJ: {
		"X..",
		"XXX",
		"...",
	},
	ShapeL: {
		"..X",
		"XXX",
		"...",
	},
	ShapeO: {
		"XX",
		"XX",
	},
	ShapeS: {
		".XX",
		"XX.",
		"...",
	},
	ShapeT: {
		".X.",
		"XXX",
		"...",
	},
	ShapeZ: {
		"XX.",
		".XX",
		"...",
	},
}

// shapeStates holds the derived rotation states for every kind. It is built
// once at package init and never mutated afterwards.
var shapeStates = buildCatalog()

func buildCatalog() [ShapeKindCount][][]Cell {
	var catalog [ShapeKindCount][][]Cell
	for kind, pattern := range shapePatterns {
		catalog[kind] = rotationsFromPattern(pattern)
	}
	return catalog
}

// rotationsFromPattern derives the deduplicated rotation states for a base
// pattern. The pattern is embedded into a 4x4 working grid and rotated 90
// degrees four times; after each rotation the filled coordinates are
// normalized so the minimum row and column are zero, which keeps states
// independent of where the bounding box sits inside the working grid.
// Symmetric shapes produce fewer than four states.
func rotationsFromPattern(pattern []string) [][]Cell {
	var grid [4][4]bool
	for r, row := range pattern {
		for c, mark := range row {
			grid[r][c] = mark == 'X'
		}
	}

	var states [][]Cell
	for range 4 {
		state := normalizedCells(grid)
		if !slices.ContainsFunc(states, func(s []Cell) bool {
			return slices.Equal(s, state)
		}) {
			states = append(states, state)
		}
		grid = rotateGrid(grid)
	}
	return states
}

func normalizedCells(grid [4][4]bool) []Cell {
	var cells []Cell
	minRow, minCol := 4, 4
	for r := range 4 {
		for c := range 4 {
			if !grid[r][c] {
				continue
			}
			cells = append(cells, Cell{Col: c, Row: r})
			minRow = min(minRow, r)
			minCol = min(minCol, c)
		}
	}

	for i := range cells {
		cells[i].Col -= minCol
		cells[i].Row -= minRow
	}

	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return cells
}

// rotateGrid rotates the 4x4 working grid 90 degrees clockwise.
func rotateGrid(grid [4][4]bool) [4][4]bool {
	var rotated [4][4]bool
	for r := range 4 {
		for c := range 4 {
			rotated[r][c] = grid[3-c][r]
		}
	}
	return rotated
}
