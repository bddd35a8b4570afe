package tetris

import (
	"github.com/kamstrup/intmap"
)

// Board dimensions. The core honors these exactly; they are not
// configurable.
const (
	Cols = 10
	Rows = 20
)

// Board owns the grid of locked cells and the logic to test placement
// validity, lock pieces, clear completed rows and detect a full board.
// Locked cells live in a sparse map keyed by packed (col,row); every key
// has a column in [0, Cols) and a non-negative row.
type Board struct {
	locked *intmap.Map[CellKey, Color]
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		locked: intmap.New[CellKey, Color](Cols * Rows / 2),
	}
}

// IsValidPlacement reports whether the piece's occupied cells all fit on the
// board: no cell outside the side walls or below the floor, and no cell on
// top of a locked cell. Cells above the visible board (row < 0) are allowed;
// they form the spawn buffer and can never coincide with a locked cell.
func (b *Board) IsValidPlacement(p *Piece) bool {
	for _, cell := range p.Cells() {
		if cell.Col < 0 || cell.Col >= Cols || cell.Row >= Rows {
			return false
		}
		if cell.Row < 0 {
			continue
		}
		if _, occupied := b.locked.Get(cell.Key()); occupied {
			return false
		}
	}
	return true
}

// IsLost reports whether a piece has locked so high that the board is full:
// any locked cell with row < 1. Lock never records cells above row 0, so
// only the top row needs checking.
func (b *Board) IsLost() bool {
	for col := range Cols {
		if _, occupied := b.locked.Get(NewCellKey(col, 0)); occupied {
			return true
		}
	}
	return false
}

// Lock commits the piece's cells into the board, painting each with the
// piece's color. Cells above the visible board (row < 0) are skipped;
// deciding whether such a lock ends the game is the session's business,
// not the board's.
func (b *Board) Lock(p *Piece) {
	color := p.Color()
	for _, cell := range p.Cells() {
		if cell.Row < 0 {
			continue
		}
		b.locked.Put(cell.Key(), color)
	}
}

// ClearFullRows removes every row in which all Cols columns are locked and
// shifts the cells above each cleared row down by one. Rows are scanned from
// the bottom up, and after a clear the same row index is re-examined against
// the shifted state, so simultaneous clears compound correctly. Returns the
// number of rows cleared.
func (b *Board) ClearFullRows() int {
	cleared := 0

	row := Rows - 1
	for row >= 0 {
		if !b.rowFull(row) {
			row--
			continue
		}

		cleared++
		for col := range Cols {
			b.locked.Del(NewCellKey(col, row))
		}

		// Shift everything above the cleared row down one, nearest row
		// first so no cell lands on a still-occupied key.
		for r := row - 1; r >= 0; r-- {
			for col := range Cols {
				color, ok := b.locked.Get(NewCellKey(col, r))
				if !ok {
					continue
				}
				b.locked.Del(NewCellKey(col, r))
				b.locked.Put(NewCellKey(col, r+1), color)
			}
		}
	}

	return cleared
}

func (b *Board) rowFull(row int) bool {
	for col := range Cols {
		if _, occupied := b.locked.Get(NewCellKey(col, row)); !occupied {
			return false
		}
	}
	return true
}

// ColorAt returns the color of the locked cell at (col,row) and whether one
// exists there.
func (b *Board) ColorAt(col, row int) (Color, bool) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return Color{}, false
	}
	return b.locked.Get(NewCellKey(col, row))
}

// LockedCount returns the number of locked cells on the board.
func (b *Board) LockedCount() int {
	return b.locked.Len()
}

// SnapshotGrid builds a fresh Rows x Cols grid with the locked cells painted
// in. Empty cells hold the zero Color. The grid is a copy; mutating it does
// not touch the board.
func (b *Board) SnapshotGrid() [][]Color {
	grid := make([][]Color, Rows)
	for row := range grid {
		grid[row] = make([]Color, Cols)
		for col := range grid[row] {
			if color, ok := b.locked.Get(NewCellKey(col, row)); ok {
				grid[row][col] = color
			}
		}
	}
	return grid
}
