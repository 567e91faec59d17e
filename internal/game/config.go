package game

import "fmt"

// Config defines the rules of a single game.
type Config struct {
	Height int // visible board rows
	Width  int // board columns

	TickRate     int     // simulation ticks per second
	StepInterval float64 // seconds between gravity steps

	// LockOnHardDrop makes a hard drop settle the piece in the same
	// action. When false the gravity counter restarts instead, leaving a
	// short window to slide the piece before it locks.
	LockOnHardDrop bool

	Seed int64 // RNG seed; the platform substitutes the clock for 0
}

// DefaultConfig returns the classic ruleset: a 20x10 board stepping
// down every half second at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Height:       20,
		Width:        10,
		TickRate:     60,
		StepInterval: 0.5,
	}
}

// gravityTicks returns the number of ticks between gravity steps.
func (c Config) gravityTicks() int {
	return int(float64(c.TickRate) * c.StepInterval)
}

// validate rejects rule sets the engine cannot run. Board geometry is
// checked against the shape catalog separately at construction.
func (c Config) validate() error {
	if c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("game: board size %dx%d is not positive", c.Height, c.Width)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("game: tick rate %d is not positive", c.TickRate)
	}
	if c.StepInterval <= 0 {
		return fmt.Errorf("game: step interval %gs is not positive", c.StepInterval)
	}
	if c.gravityTicks() < 1 {
		return fmt.Errorf("game: step interval %gs is under one tick at %d ticks/s", c.StepInterval, c.TickRate)
	}
	return nil
}
