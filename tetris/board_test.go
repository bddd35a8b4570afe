package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testColor = Color{200, 200, 200, 255}

func fillCells(b *Board, cells ...Cell) {
	for _, cell := range cells {
		b.locked.Put(cell.Key(), testColor)
	}
}

func fillRow(b *Board, row int) {
	for col := range Cols {
		b.locked.Put(NewCellKey(col, row), testColor)
	}
}

func TestIsValidPlacement(t *testing.T) {
	t.Run("empty board accepts interior placement", func(t *testing.T) {
		board := NewBoard()
		assert.True(t, board.IsValidPlacement(NewPiece(ShapeT, 3, 5)))
	})

	t.Run("rejects cells beyond the side walls", func(t *testing.T) {
		board := NewBoard()
		assert.False(t, board.IsValidPlacement(NewPiece(ShapeT, -1, 5)))
		assert.False(t, board.IsValidPlacement(NewPiece(ShapeT, Cols-2, 5)))
	})

	t.Run("rejects cells below the floor", func(t *testing.T) {
		board := NewBoard()
		assert.False(t, board.IsValidPlacement(NewPiece(ShapeT, 3, Rows-1)))
		assert.True(t, board.IsValidPlacement(NewPiece(ShapeT, 3, Rows-2)))
	})

	t.Run("allows the spawn buffer above the board", func(t *testing.T) {
		board := NewBoard()
		assert.True(t, board.IsValidPlacement(NewPiece(ShapeI, 3, -1)))
	})

	t.Run("rejects overlap with locked cells", func(t *testing.T) {
		board := NewBoard()
		fillCells(board, Cell{Col: 4, Row: 6})

		// T at (3,5) occupies (4,5),(3,6),(4,6),(5,6).
		assert.False(t, board.IsValidPlacement(NewPiece(ShapeT, 3, 5)))
		assert.True(t, board.IsValidPlacement(NewPiece(ShapeT, 3, 3)))
	})
}

func TestLock(t *testing.T) {
	t.Run("records visible cells with the piece color", func(t *testing.T) {
		board := NewBoard()
		piece := NewPiece(ShapeO, 4, 10)

		board.Lock(piece)

		assert.Equal(t, 4, board.LockedCount())
		for _, cell := range piece.Cells() {
			color, ok := board.ColorAt(cell.Col, cell.Row)
			assert.True(t, ok)
			assert.Equal(t, ShapeO.Color(), color)
		}
	})

	t.Run("skips cells above the visible board", func(t *testing.T) {
		board := NewBoard()

		// O at row -1 straddles the top edge: two cells above, two on row 0.
		board.Lock(NewPiece(ShapeO, 4, -1))

		assert.Equal(t, 2, board.LockedCount())
		_, ok := board.ColorAt(4, 0)
		assert.True(t, ok)
	})
}

func TestIsLost(t *testing.T) {
	board := NewBoard()
	assert.False(t, board.IsLost())

	fillCells(board, Cell{Col: 5, Row: 1})
	assert.False(t, board.IsLost())

	fillCells(board, Cell{Col: 5, Row: 0})
	assert.True(t, board.IsLost())
}

func TestClearFullRows(t *testing.T) {
	t.Run("no full rows clears nothing", func(t *testing.T) {
		board := NewBoard()
		fillCells(board, Cell{Col: 0, Row: 19}, Cell{Col: 9, Row: 19})

		assert.Equal(t, 0, board.ClearFullRows())
		assert.Equal(t, 2, board.LockedCount())
	})

	t.Run("single row shifts the cells above down one", func(t *testing.T) {
		board := NewBoard()
		fillRow(board, 19)
		fillCells(board, Cell{Col: 0, Row: 18})

		assert.Equal(t, 1, board.ClearFullRows())
		assert.Equal(t, 1, board.LockedCount())

		_, ok := board.ColorAt(0, 18)
		assert.False(t, ok)
		_, ok = board.ColorAt(0, 19)
		assert.True(t, ok)
	})

	t.Run("cells below a cleared row stay put", func(t *testing.T) {
		board := NewBoard()
		fillRow(board, 18)
		fillCells(board, Cell{Col: 3, Row: 19})

		assert.Equal(t, 1, board.ClearFullRows())

		color, ok := board.ColorAt(3, 19)
		assert.True(t, ok)
		assert.Equal(t, testColor, color)
		assert.Equal(t, 1, board.LockedCount())
	})

	t.Run("four simultaneous rows", func(t *testing.T) {
		board := NewBoard()
		for row := 16; row <= 19; row++ {
			fillRow(board, row)
		}
		fillCells(board, Cell{Col: 7, Row: 15})

		assert.Equal(t, 4, board.ClearFullRows())
		assert.Equal(t, 1, board.LockedCount())

		_, ok := board.ColorAt(7, 19)
		assert.True(t, ok)
	})

	t.Run("full rows separated by a partial row compound correctly", func(t *testing.T) {
		board := NewBoard()
		fillRow(board, 19)
		fillRow(board, 17)
		fillCells(board, Cell{Col: 2, Row: 18})

		assert.Equal(t, 2, board.ClearFullRows())
		assert.Equal(t, 1, board.LockedCount())

		// The partial row between the two cleared rows lands on the floor.
		_, ok := board.ColorAt(2, 19)
		assert.True(t, ok)
	})
}

func TestSnapshotGrid(t *testing.T) {
	board := NewBoard()
	fillCells(board, Cell{Col: 1, Row: 2})

	grid := board.SnapshotGrid()

	assert.Len(t, grid, Rows)
	assert.Len(t, grid[0], Cols)
	assert.Equal(t, testColor, grid[2][1])
	assert.Equal(t, Color{}, grid[0][0])

	// The snapshot is a copy; scribbling on it must not leak back.
	grid[5][5] = testColor
	_, ok := board.ColorAt(5, 5)
	assert.False(t, ok)
}
