package tetris

import "slices"

// Snapshot is the read-only view of a session handed to external renderers.
// Everything in it is a copy; renderers can hold onto one or draw from it
// without ever touching core state.
type Snapshot struct {
	// Grid holds the locked cells, Rows x Cols, zero Color for empty.
	Grid [][]Color

	// ActiveCells are the absolute cells of the piece in play. Cells with
	// Row < 0 sit in the spawn buffer and are not on the visible grid.
	ActiveCells []Cell
	ActiveColor Color

	// NextKind and NextCells preview the upcoming piece; NextCells are the
	// rotation-0 offsets, not board coordinates.
	NextKind  ShapeKind
	NextCells []Cell

	Score    int
	Level    int
	Lines    int
	Paused   bool
	GameOver bool
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:        s.board.SnapshotGrid(),
		ActiveCells: s.current.Cells(),
		ActiveColor: s.current.Color(),
		NextKind:    s.next.Kind,
		NextCells:   slices.Clone(s.next.Kind.RotationStates()[0]),
		Score:       s.score,
		Level:       s.level,
		Lines:       s.linesTotal,
		Paused:      s.paused,
		GameOver:    s.gameOver,
	}
}
