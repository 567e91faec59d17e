package game

// The board carries the falling piece's cells at all times, so every
// legality check erases the piece first, tests the target cells against
// the remaining (settled) geometry and repaints the piece before
// returning. The repaint is unconditional; a failed check leaves the
// board exactly as it was.

// erase removes the piece's cells from the board.
func (g *Game) erase() {
	for _, c := range g.piece.cells() {
		g.board.setCell(c, 0)
	}
}

// paint writes the piece's cells back with its color tag.
func (g *Game) paint() {
	for _, c := range g.piece.cells() {
		g.board.setCell(c, g.piece.Color)
	}
}

// fits reports whether every given cell is inside the board and empty.
// The live piece must be erased before calling.
func (g *Game) fits(cells []Coord) bool {
	for _, c := range cells {
		if !g.board.InBounds(c) || g.board.Cell(c) != 0 {
			return false
		}
	}
	return true
}

// canMove reports whether the piece can shift by (dy, dx).
func (g *Game) canMove(dy, dx int) bool {
	g.erase()
	target := Coord{Y: g.piece.Pos.Y + dy, X: g.piece.Pos.X + dx}
	ok := g.fits(g.piece.cellsAt(target, g.piece.Rotation))
	g.paint()
	return ok
}

// canRotate reports whether the piece can turn by delta quarter turns
// in place. There are no wall kicks: a rotation blocked by a wall or by
// settled cells simply stays blocked.
func (g *Game) canRotate(delta int) bool {
	g.erase()
	ok := g.fits(g.piece.cellsAt(g.piece.Pos, g.piece.rotated(delta)))
	g.paint()
	return ok
}

// movePiece shifts the piece by (dy, dx) when the target placement is
// legal and reports whether the move happened.
func (g *Game) movePiece(dy, dx int) bool {
	if !g.canMove(dy, dx) {
		return false
	}
	g.erase()
	g.piece.Pos.Y += dy
	g.piece.Pos.X += dx
	g.paint()
	return true
}

// rotatePiece turns the piece by delta quarter turns when legal and
// reports whether the rotation happened.
func (g *Game) rotatePiece(delta int) bool {
	if !g.canRotate(delta) {
		return false
	}
	g.erase()
	g.piece.Rotation = g.piece.rotated(delta)
	g.paint()
	return true
}
