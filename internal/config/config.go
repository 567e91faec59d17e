// Package config provides YAML-based configuration loading for the
// blockfall binary.
package config

// GameConfig contains every tunable parameter of a session.
type GameConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Height int `yaml:"height"` // visible rows
	Width  int `yaml:"width"`  // columns
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickRate     int     `yaml:"tick_rate"`     // simulation ticks per second
	StepInterval float64 `yaml:"step_interval"` // seconds between gravity steps
}

// RulesConfig toggles optional gameplay behavior.
type RulesConfig struct {
	// LockOnHardDrop settles the piece in the same action instead of
	// leaving a slide window until the next gravity step.
	LockOnHardDrop bool `yaml:"lock_on_hard_drop"`
}
