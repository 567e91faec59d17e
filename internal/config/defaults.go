package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the classic ruleset: a 20x10 well stepping
// down every half second.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Height: 20,
			Width:  10,
		},
		Timing: TimingConfig{
			TickRate:     60,
			StepInterval: 0.5,
		},
		Rules: RulesConfig{
			LockOnHardDrop: false,
		},
	}
}
