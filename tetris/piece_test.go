package tetris_test

import (
	"testing"

	"github.com/plus3/gridfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPieceCellsUnique(t *testing.T) {
	for _, kind := range allKinds() {
		piece := tetris.NewPiece(kind, 3, 5)
		for rot := range kind.RotationStates() {
			piece.Rotation = rot

			cells := piece.Cells()
			assert.Len(t, cells, 4, "kind %s rotation %d", kind, rot)

			seen := make(map[tetris.Cell]bool)
			for _, cell := range cells {
				assert.False(t, seen[cell], "kind %s rotation %d repeats %v", kind, rot, cell)
				seen[cell] = true
			}
		}
	}
}

func TestPieceRotateFullCircle(t *testing.T) {
	for _, kind := range allKinds() {
		piece := tetris.NewPiece(kind, 4, 2)
		original := piece.Cells()

		for range 4 {
			piece.Rotate(1)
		}

		assert.Equal(t, 0, piece.Rotation, "kind %s", kind)
		assert.Equal(t, original, piece.Cells(), "kind %s", kind)
	}
}

func TestPieceRotateWrapsBothDirections(t *testing.T) {
	piece := tetris.NewPiece(tetris.ShapeT, 0, 0)

	piece.Rotate(-1)
	assert.Equal(t, 3, piece.Rotation)

	piece.Rotate(1)
	assert.Equal(t, 0, piece.Rotation)

	// Symmetric shapes wrap on their shorter state list.
	bar := tetris.NewPiece(tetris.ShapeI, 0, 0)
	bar.Rotate(-1)
	assert.Equal(t, 1, bar.Rotation)
	bar.Rotate(1)
	assert.Equal(t, 0, bar.Rotation)
}

func TestPieceCellsAtDoesNotMutate(t *testing.T) {
	piece := tetris.NewPiece(tetris.ShapeL, 2, 7)
	before := piece.Cells()

	hypothetical := piece.CellsAt(1)
	assert.NotEqual(t, before, hypothetical)
	assert.Equal(t, 0, piece.Rotation)
	assert.Equal(t, before, piece.Cells())
}

func TestPieceTranslate(t *testing.T) {
	piece := tetris.NewPiece(tetris.ShapeO, 4, 4)
	before := piece.Cells()

	piece.Translate(-2, 3)

	after := piece.Cells()
	for i := range before {
		assert.Equal(t, before[i].Col-2, after[i].Col)
		assert.Equal(t, before[i].Row+3, after[i].Row)
	}
}
