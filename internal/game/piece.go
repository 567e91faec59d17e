package game

// Piece is the falling tetromino: a catalog shape in a specific rotation
// state, anchored at a board position. The board holds the piece's cells;
// Piece itself is just the descriptor used to find and move them.
type Piece struct {
	Shape    ShapeType
	Rotation int
	Pos      Coord
	Color    int
}

// offsets returns the relative cells of the current rotation state.
func (p Piece) offsets() []Coord {
	return shapes[p.Shape][p.Rotation]
}

// cells returns the absolute board coordinates the piece occupies.
func (p Piece) cells() []Coord {
	return p.cellsAt(p.Pos, p.Rotation)
}

// cellsAt returns the absolute coordinates the piece would occupy with
// the given anchor and rotation state.
func (p Piece) cellsAt(pos Coord, rotation int) []Coord {
	offs := shapes[p.Shape][rotation]
	abs := make([]Coord, len(offs))
	for i, o := range offs {
		abs[i] = Coord{Y: pos.Y + o.Y, X: pos.X + o.X}
	}
	return abs
}

// rotated returns the rotation index turned by delta quarter turns,
// wrapped to the shape's distinct state count.
func (p Piece) rotated(delta int) int {
	n := p.Shape.RotationCount()
	return ((p.Rotation+delta)%n + n) % n
}
