package game

import (
	"github.com/mdanilov/blockfall/internal/core"
)

// Status is the engine lifecycle state.
type Status string

const (
	StatusRunning  Status = "running"
	StatusGameOver Status = "game_over"
)

// Game holds the complete state of one falling-block session. The
// platform drives it through Tick for time and Handle for player input;
// both are no-ops once the game is over.
type Game struct {
	cfg Config
	rng Source

	board     *Board
	piece     Piece
	prevShape int // last spawned shape index, -1 before the first spawn

	status Status
	paused bool
	score  int

	tick        uint64 // simulation ticks advanced while running and unpaused
	gravityTick int    // ticks since the last gravity step
	moveTicks   int    // gravity step threshold in ticks
}

// New creates a game with the default randomness source seeded from
// cfg.Seed. It fails when the configuration cannot produce a playable
// game, including a board too small to spawn every catalog shape.
func New(cfg Config) (*Game, error) {
	return NewWithSource(cfg, newSource(cfg.Seed))
}

// NewWithSource creates a game driven by the given randomness source.
func NewWithSource(cfg Config, src Source) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := spawnFeasible(cfg.Height, cfg.Width); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:       cfg,
		rng:       src,
		moveTicks: cfg.gravityTicks(),
	}
	g.start()
	return g, nil
}

// start resets the board and counters and spawns the first piece.
func (g *Game) start() {
	g.board = newBoard(g.cfg.Height, g.cfg.Width)
	g.prevShape = -1
	g.status = StatusRunning
	g.paused = false
	g.score = 0
	g.tick = 0
	g.gravityTick = 0
	if !g.spawn() {
		g.status = StatusGameOver
	}
}

// Reset restarts the game with a fresh randomness source for the seed.
func (g *Game) Reset(seed int64) {
	g.rng = newSource(seed)
	g.start()
}

// Tick advances the simulation by one tick. Gravity pulls the piece one
// row down every moveTicks ticks; a blocked pull is a landing.
func (g *Game) Tick() {
	if g.status != StatusRunning || g.paused {
		return
	}
	g.tick++
	g.gravityTick++
	if g.gravityTick < g.moveTicks {
		return
	}
	g.gravityTick = 0
	if !g.movePiece(1, 0) {
		g.land()
	}
}

// land settles the piece where it is, clears any completed lines and
// spawns the next piece. A spawn into occupied cells ends the game.
func (g *Game) land() {
	g.clearLines()
	if !g.spawn() {
		g.status = StatusGameOver
	}
}

// Handle applies a player action between ticks and reports whether it
// changed the game state. Illegal moves are silently rejected, and all
// movement is ignored while paused or after game over.
func (g *Game) Handle(a core.Action) bool {
	if a == core.ActionPause {
		if g.status != StatusRunning {
			return false
		}
		g.paused = !g.paused
		return true
	}
	if g.status != StatusRunning || g.paused {
		return false
	}

	switch a {
	case core.ActionLeft:
		return g.movePiece(0, -1)
	case core.ActionRight:
		return g.movePiece(0, 1)
	case core.ActionRotateCW:
		return g.rotatePiece(1)
	case core.ActionRotateCCW:
		return g.rotatePiece(-1)
	case core.ActionSoftDrop:
		return g.movePiece(1, 0)
	case core.ActionHardDrop:
		return g.hardDrop()
	}
	return false
}

// hardDrop sends the piece straight down. With LockOnHardDrop it settles
// in the same action; otherwise the gravity counter restarts and the
// piece can still slide until the next gravity step finds it blocked.
func (g *Game) hardDrop() bool {
	dropped := false
	for g.movePiece(1, 0) {
		dropped = true
	}
	if g.cfg.LockOnHardDrop {
		g.land()
		return true
	}
	g.gravityTick = 0
	return dropped
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// State reports score and lifecycle flags to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusGameOver,
		Paused:   g.paused,
	}
}
