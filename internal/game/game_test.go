package game

import (
	"reflect"
	"testing"

	"github.com/mdanilov/blockfall/internal/core"
)

// testConfig returns a small-threshold ruleset: gravity every 5 ticks.
func testConfig() Config {
	return Config{Height: 20, Width: 10, TickRate: 10, StepInterval: 0.5}
}

// newTestGame builds a game driven by the scripted draws.
func newTestGame(t *testing.T, cfg Config, draws ...int) *Game {
	t.Helper()
	g, err := NewWithSource(cfg, &script{draws: draws})
	if err != nil {
		t.Fatalf("NewWithSource() failed: %v", err)
	}
	return g
}

// setPiece swaps the live piece for a crafted one painted at pos.
func setPiece(g *Game, shape ShapeType, rotation int, pos Coord, color int) {
	g.erase()
	g.piece = Piece{Shape: shape, Rotation: rotation, Pos: pos, Color: color}
	g.paint()
}

// occupiedCells counts non-empty cells over the whole grid, buffer included.
func occupiedCells(g *Game) int {
	n := 0
	for y := 0; y < g.board.Rows(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if g.board.Cell(Coord{Y: y, X: x}) != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewSpawnsFirstPiece(t *testing.T) {
	g := newTestGame(t, testConfig(), 0, 0, 0, 0) // I, color 1, horizontal, leftmost

	if g.Status() != StatusRunning {
		t.Fatalf("Status() = %q, expected running", g.Status())
	}
	if occupiedCells(g) != 4 {
		t.Errorf("board has %d occupied cells after first spawn, expected 4", occupiedCells(g))
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

func TestGravityCadence(t *testing.T) {
	g := newTestGame(t, testConfig(), 6, 0, 0, 4) // T, color 1, rotation 0, column draw
	startY := g.piece.Pos.Y

	// Gravity steps every 5 ticks with this config
	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if g.piece.Pos.Y != startY {
		t.Fatalf("piece moved after %d ticks, expected none before the threshold", 4)
	}

	g.Tick()
	if g.piece.Pos.Y != startY+1 {
		t.Errorf("piece at row %d after gravity step, expected %d", g.piece.Pos.Y, startY+1)
	}

	// The counter restarts after each step
	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if g.piece.Pos.Y != startY+1 {
		t.Error("piece moved again before the next threshold")
	}
	g.Tick()
	if g.piece.Pos.Y != startY+2 {
		t.Errorf("piece at row %d after second gravity step, expected %d", g.piece.Pos.Y, startY+2)
	}
}

func TestSoftDropSteps(t *testing.T) {
	g := newTestGame(t, testConfig(), 6, 0, 0, 4)
	startY := g.piece.Pos.Y

	if !g.Handle(core.ActionSoftDrop) {
		t.Fatal("soft drop on an open board rejected")
	}
	if g.piece.Pos.Y != startY+1 {
		t.Errorf("piece at row %d after soft drop, expected %d", g.piece.Pos.Y, startY+1)
	}

	// Soft drop against the floor is a silent no-op
	setPiece(g, ShapeO, 0, Coord{Y: g.board.Rows() - 2, X: 4}, 2)
	if g.Handle(core.ActionSoftDrop) {
		t.Error("soft drop at the floor reported a state change")
	}
}

func TestLandingSpawnsNextPiece(t *testing.T) {
	g := newTestGame(t, testConfig(), 1, 2, 0, 4, 4, 3, 0, 3) // O then S
	setPiece(g, ShapeO, 0, Coord{Y: g.board.Rows() - 2, X: 4}, 3)

	// Run one full gravity interval; the blocked step lands the piece.
	for i := 0; i < 5; i++ {
		g.Tick()
	}

	if g.Status() != StatusRunning {
		t.Fatalf("Status() = %q, expected running", g.Status())
	}
	if g.piece.Shape != ShapeS {
		t.Errorf("next piece is %s, expected S", g.piece.Shape)
	}
	// Settled O stays on the board alongside the fresh piece
	if occupiedCells(g) != 8 {
		t.Errorf("board has %d occupied cells, expected 8 (settled O + new piece)", occupiedCells(g))
	}
	for _, c := range []Coord{{20, 4}, {20, 5}, {21, 4}, {21, 5}} {
		if g.board.Cell(c) != 3 {
			t.Errorf("settled cell %+v = %d, expected color 3", c, g.board.Cell(c))
		}
	}
}

func TestHardDropSlides(t *testing.T) {
	// Default policy: the piece falls but locks only on the next
	// blocked gravity step, so it can still slide.
	g := newTestGame(t, testConfig(), 1, 4, 0, 4)

	if !g.Handle(core.ActionHardDrop) {
		t.Fatal("hard drop rejected")
	}
	bottomY := g.board.Rows() - 2 // O occupies two rows
	if g.piece.Pos.Y != bottomY {
		t.Fatalf("piece at row %d after hard drop, expected %d", g.piece.Pos.Y, bottomY)
	}

	// Still the same piece, still movable sideways
	if !g.Handle(core.ActionLeft) {
		t.Error("slide after hard drop rejected")
	}
	if g.piece.Pos.X != 3 {
		t.Errorf("piece at column %d after slide, expected 3", g.piece.Pos.X)
	}

	// The gravity counter restarted: the piece locks only after a full
	// interval, spawning the next piece.
	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if g.piece.Pos.Y != bottomY {
		t.Fatal("piece locked before the gravity interval elapsed")
	}
	g.Tick()
	if g.piece.Pos.Y == bottomY && g.piece.Shape == ShapeO {
		t.Error("piece did not lock on the blocked gravity step")
	}
}

func TestHardDropLocks(t *testing.T) {
	cfg := testConfig()
	cfg.LockOnHardDrop = true
	g := newTestGame(t, cfg, 1, 4, 0, 4, 6, 0, 0, 4) // O then T

	if !g.Handle(core.ActionHardDrop) {
		t.Fatal("hard drop rejected")
	}

	// The O settled at the floor and the next piece spawned immediately.
	if g.piece.Shape != ShapeT {
		t.Errorf("live piece is %s after locking drop, expected T", g.piece.Shape)
	}
	bottom := g.board.Rows() - 1
	if g.board.Cell(Coord{Y: bottom, X: 4}) == 0 {
		t.Error("hard-dropped piece left no settled cells at the floor")
	}
}

func TestPauseSuspendsEverything(t *testing.T) {
	g := newTestGame(t, testConfig(), 6, 0, 0, 4)

	if !g.Handle(core.ActionPause) {
		t.Fatal("pause rejected")
	}
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}

	before := g.Snapshot()
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	if g.Handle(core.ActionLeft) {
		t.Error("movement accepted while paused")
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("game state changed while paused")
	}

	// Unpause resumes the simulation
	g.Handle(core.ActionPause)
	for i := 0; i < 5; i++ {
		g.Tick()
	}
	if g.Snapshot().Hash() == before.Hash() {
		t.Error("game did not resume after unpause")
	}
}

func TestGameOverRejectsInput(t *testing.T) {
	g := newTestGame(t, testConfig(), 6, 0, 0, 4)
	g.status = StatusGameOver

	actions := []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionRotateCW,
		core.ActionRotateCCW, core.ActionSoftDrop, core.ActionHardDrop,
		core.ActionPause,
	}
	before := g.Snapshot()
	for _, a := range actions {
		if g.Handle(a) {
			t.Errorf("Handle(%s) accepted after game over", a)
		}
	}
	g.Tick()
	if g.Snapshot().Hash() != before.Hash() {
		t.Error("state changed after game over")
	}
}

func TestResetStartsFresh(t *testing.T) {
	g := newTestGame(t, testConfig(), 6, 0, 0, 4)
	g.score = 17
	g.status = StatusGameOver

	g.Reset(99)

	if g.Status() != StatusRunning {
		t.Errorf("Status() = %q after reset, expected running", g.Status())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d after reset, expected 0", g.Score())
	}
	if occupiedCells(g) != 4 {
		t.Errorf("board has %d occupied cells after reset, expected 4", occupiedCells(g))
	}
}

func TestLineClearEndToEnd(t *testing.T) {
	// On a four-wide board a horizontal I has exactly one legal column
	// and fills a complete row every time it lands.
	cfg := Config{Height: 6, Width: 4, TickRate: 10, StepInterval: 0.5, LockOnHardDrop: true}
	g := newTestGame(t, cfg,
		0, 0, 0, 0, // I, color 1, horizontal, only column
		1, 1, 0, 0, // O next
	)

	if !g.Handle(core.ActionHardDrop) {
		t.Fatal("hard drop rejected")
	}

	if g.Score() != 1 {
		t.Fatalf("Score() = %d after a full row landed, expected 1", g.Score())
	}
	// The cleared row is gone; only the fresh O remains.
	if occupiedCells(g) != 4 {
		t.Errorf("board has %d occupied cells after the clear, expected 4", occupiedCells(g))
	}
	if g.piece.Shape != ShapeO {
		t.Errorf("live piece is %s, expected O", g.piece.Shape)
	}
	bottom := g.board.Rows() - 1
	for x := 0; x < 4; x++ {
		if v := g.board.Cell(Coord{Y: bottom, X: x}); v != 0 {
			t.Errorf("bottom row cell %d = %d after the clear, expected 0", x, v)
		}
	}
}

func TestScoreAccumulatesAcrossClears(t *testing.T) {
	cfg := Config{Height: 6, Width: 4, TickRate: 10, StepInterval: 0.5, LockOnHardDrop: true}
	g := newTestGame(t, cfg,
		0, 0, 0, 0, // I
		1, 1, 0, 0, // O, would not clear, replaced below
	)

	g.Handle(core.ActionHardDrop) // first clear
	setPiece(g, ShapeI, 0, Coord{Y: 3, X: 2}, 2)
	g.Handle(core.ActionHardDrop) // second clear

	if g.Score() != 2 {
		t.Errorf("Score() = %d after two cleared rows, expected 2", g.Score())
	}
}

func TestShiftDropFillsGap(t *testing.T) {
	// The full player path: steer the piece over a gap in the settled
	// stack, hard drop, and let the next gravity tick land and clear it.
	g := newTestGame(t, testConfig(), 1, 0, 0, 4) // O, color 1, column draw 4
	bottom := g.board.Rows() - 1
	fillRow(g, bottom, 3, 6, 7)

	// Two shifts right line the O up with the gap columns
	if !g.Handle(core.ActionRight) || !g.Handle(core.ActionRight) {
		t.Fatal("shift toward the gap rejected")
	}
	if !g.Handle(core.ActionHardDrop) {
		t.Fatal("hard drop rejected")
	}
	if g.Score() != 0 {
		t.Fatalf("Score() = %d before the landing tick, expected 0", g.Score())
	}

	// The piece lands on the next gravity step
	for i := 0; i < 5; i++ {
		g.Tick()
	}

	if g.Score() != 1 {
		t.Errorf("Score() = %d after the gap row cleared, expected 1", g.Score())
	}
	if g.board.Cell(Coord{Y: bottom, X: 0}) != 0 {
		t.Error("settled fill survived the clear")
	}
	// The O's top half compacted onto the floor
	for _, x := range []int{6, 7} {
		if v := g.board.Cell(Coord{Y: bottom, X: x}); v != 1 {
			t.Errorf("floor cell %d = %d, expected the piece remnant 1", x, v)
		}
	}
	if occupiedCells(g) != 6 {
		t.Errorf("board has %d occupied cells, expected remnant plus the new piece", occupiedCells(g))
	}
}

func TestDeterminismSameSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 10
	cfg.Seed = 1234

	run := func() Snapshot {
		g, err := New(cfg)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		actions := []core.Action{
			core.ActionLeft, core.ActionRotateCW, core.ActionSoftDrop,
			core.ActionRight, core.ActionHardDrop, core.ActionRotateCCW,
		}
		for i := 0; i < 200; i++ {
			g.Handle(actions[i%len(actions)])
			g.Tick()
		}
		return g.Snapshot()
	}

	first, second := run(), run()
	if first.Hash() != second.Hash() {
		t.Error("same seed and inputs produced different state hashes")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed and inputs produced different snapshots")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, testConfig(), 6, 0, 0, 4)

	snap := g.Snapshot()
	if snap.Width != 10 || snap.Height != 20 {
		t.Fatalf("snapshot is %dx%d, expected 10x20", snap.Width, snap.Height)
	}
	if len(snap.Grid) != 20 || len(snap.Grid[0]) != 10 {
		t.Fatalf("snapshot grid is %dx%d, expected 20x10", len(snap.Grid), len(snap.Grid[0]))
	}

	snap.Grid[5][5] = 99
	if g.board.Cell(Coord{Y: 5 + bufferRows, X: 5}) == 99 {
		t.Error("mutating the snapshot grid leaked into the board")
	}
}

func TestStateReporting(t *testing.T) {
	g := newTestGame(t, testConfig(), 6, 0, 0, 4)
	g.score = 7

	st := g.State()
	if st.Score != 7 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, expected score 7, running, unpaused", st)
	}

	g.status = StatusGameOver
	if !g.State().GameOver {
		t.Error("State().GameOver = false after game over")
	}
}
