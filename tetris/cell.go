package tetris

// Cell is a board coordinate. Col runs left to right in [0, Cols);
// Row runs top to bottom, with negative rows above the visible board.
type Cell struct {
	Col int
	Row int
}

// CellKey encodes both the column (upper 32 bits) and the row (lower 32 bits)
// of a locked cell. Locked cells only ever exist at non-negative coordinates,
// so the packing never has to represent the spawn buffer above the board.
type CellKey uint64

// NewCellKey creates a CellKey from a column and a row
func NewCellKey(col, row int) CellKey {
	return CellKey(uint64(uint32(col))<<32 | uint64(uint32(row)))
}

// Key returns the packed form of the cell
func (c Cell) Key() CellKey {
	return NewCellKey(c.Col, c.Row)
}

// Col extracts the column from the key
func (k CellKey) Col() int {
	return int(uint32(k >> 32))
}

// Row extracts the row from the key
func (k CellKey) Row() int {
	return int(uint32(k & 0xFFFFFFFF))
}

// Cell unpacks the key back into a coordinate
func (k CellKey) Cell() Cell {
	return Cell{Col: k.Col(), Row: k.Row()}
}
