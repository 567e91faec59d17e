package game

import "fmt"

// rollShape picks the next shape the NES way: a first draw over
// shapeCount+1 values, rerolled once uniformly when it lands on the
// sentinel or repeats the previous shape. Repeats stay possible, just
// less likely.
func (g *Game) rollShape() ShapeType {
	roll := g.rng.Intn(shapeCount + 1)
	if roll == shapeCount || roll == g.prevShape {
		roll = g.rng.Intn(shapeCount)
	}
	g.prevShape = roll
	return ShapeType(roll)
}

// spawn rolls a new piece and paints it at the top of the board, with
// its topmost cell on the first visible row and a uniformly drawn column
// that keeps the whole piece inside the walls. It reports false when the
// spawn cells are already occupied; the board is then left untouched so
// the final stack stays visible.
func (g *Game) spawn() bool {
	shape := g.rollShape()
	color := 1 + g.rng.Intn(numColors)
	rotation := g.rng.Intn(shape.RotationCount())

	ext := extentOf(shapes[shape][rotation])
	minX, maxX := -ext.MinX, g.board.Width()-ext.MaxX-1
	pos := Coord{
		Y: bufferRows - ext.MinY,
		X: minX + g.rng.Intn(maxX-minX+1),
	}

	p := Piece{Shape: shape, Rotation: rotation, Pos: pos, Color: color}
	for _, c := range p.cells() {
		if g.board.Cell(c) != 0 {
			return false
		}
	}
	g.piece = p
	g.paint()
	return true
}

// spawnFeasible verifies that a board of the given size can spawn every
// rotation state of every catalog shape: at least one legal column and
// the whole piece inside the grid at the spawn row.
func spawnFeasible(height, width int) error {
	for si, states := range shapes {
		for r, offs := range states {
			ext := extentOf(offs)
			if -ext.MinX > width-ext.MaxX-1 {
				return fmt.Errorf("game: width %d cannot fit shape %s rotation %d", width, ShapeType(si), r)
			}
			if bufferRows-ext.MinY+ext.MaxY >= height+bufferRows {
				return fmt.Errorf("game: height %d cannot fit shape %s rotation %d", height, ShapeType(si), r)
			}
		}
	}
	return nil
}
