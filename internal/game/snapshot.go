package game

// Snapshot captures the observable game state for determinism testing
// and debugging. The grid covers only the visible playfield, top row
// first, holding the same 0/color-tag values as the board.
type Snapshot struct {
	Tick   uint64
	Score  int
	Status Status
	Paused bool
	Width  int
	Height int
	Grid   [][]int
}

// Snapshot returns a copy of the current observable state.
func (g *Game) Snapshot() Snapshot {
	grid := make([][]int, g.board.Height())
	for y := range grid {
		row := make([]int, g.board.Width())
		copy(row, g.board.cells[y+bufferRows])
		grid[y] = row
	}
	return Snapshot{
		Tick:   g.tick,
		Score:  g.score,
		Status: g.status,
		Paused: g.paused,
		Width:  g.board.Width(),
		Height: g.board.Height(),
		Grid:   grid,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	for _, b := range []byte(snap.Status) {
		h = h*31 + uint64(b)
	}
	if snap.Paused {
		h = h*31 + 1
	}
	for _, row := range snap.Grid {
		for _, v := range row {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
