package tetris

// Piece is a live instance of a shape: a kind plus an origin and a rotation
// index into the kind's rotation states. A piece is purely a coordinate
// generator; it holds no board state and none of its mutations validate
// against a board. Callers test the result with Board.IsValidPlacement and
// revert when it fails.
type Piece struct {
	Kind     ShapeKind
	X        int
	Y        int
	Rotation int
}

// NewPiece creates a piece of the given kind at the given origin, in its
// first rotation state.
func NewPiece(kind ShapeKind, x, y int) *Piece {
	return &Piece{Kind: kind, X: x, Y: y}
}

// Cells returns the absolute board coordinates occupied by the piece in its
// current rotation.
func (p *Piece) Cells() []Cell {
	return p.CellsAt(p.Rotation)
}

// CellsAt returns the absolute coordinates the piece would occupy in a
// hypothetical rotation state, without mutating the piece.
func (p *Piece) CellsAt(rotation int) []Cell {
	states := p.Kind.RotationStates()
	offsets := states[rotation%len(states)]

	cells := make([]Cell, len(offsets))
	for i, off := range offsets {
		cells[i] = Cell{Col: p.X + off.Col, Row: p.Y + off.Row}
	}
	return cells
}

// Translate moves the origin by the given delta. The move is never
// validated here.
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate advances the rotation index by dir steps, wrapping in both
// directions modulo the kind's rotation state count.
func (p *Piece) Rotate(dir int) {
	n := len(p.Kind.RotationStates())
	p.Rotation = ((p.Rotation+dir)%n + n) % n
}

// Color returns the piece's display color.
func (p *Piece) Color() Color {
	return p.Kind.Color()
}
