package game

// clearLines removes the rows the landed piece completed, adds them to
// the score and reports how many were cleared.
//
// Only rows inside the piece's extent can have become full, so only those
// are scanned. Compaction is a single bottom-up pass: each destination
// row pulls the nearest row above it that was neither removed nor already
// consumed as a source. When no source remains the destination is cleared
// instead. The first visible row never receives a source from the buffer
// above it and is cleared explicitly at the end.
func (g *Game) clearLines() int {
	ext := extentOf(g.piece.offsets())
	removed := make(map[int]bool)
	maxRemoved := -1
	for y := g.piece.Pos.Y + ext.MaxY; y >= g.piece.Pos.Y+ext.MinY; y-- {
		if g.board.isRowFull(y) {
			removed[y] = true
			maxRemoved = max(maxRemoved, y)
		}
	}
	if len(removed) == 0 {
		return 0
	}
	g.score += len(removed)

	moved := make([]bool, g.board.Rows())
	for y := maxRemoved; y >= bufferRows+1; y-- {
		from := y - 1
		for from >= 0 && (removed[from] || moved[from]) {
			from--
		}
		if from >= 0 {
			g.board.copyRow(y, from)
			moved[from] = true
		} else {
			g.board.clearRow(y)
		}
	}
	g.board.clearRow(bufferRows)

	return len(removed)
}
