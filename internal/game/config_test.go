package game

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero height", func(c *Config) { c.Height = 0 }, true},
		{"negative width", func(c *Config) { c.Width = -1 }, true},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, true},
		{"zero step interval", func(c *Config) { c.StepInterval = 0 }, true},
		{"negative step interval", func(c *Config) { c.StepInterval = -0.5 }, true},
		{"step shorter than one tick", func(c *Config) {
			c.TickRate = 10
			c.StepInterval = 0.05
		}, true},
		{"one tick per step", func(c *Config) {
			c.TickRate = 10
			c.StepInterval = 0.1
		}, false},
		{"tiny but playable board", func(c *Config) {
			c.Height = 4
			c.Width = 4
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.validate()
			if tc.wantErr && err == nil {
				t.Error("validate() = nil, expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("validate() = %v, expected nil", err)
			}
		})
	}
}

func TestConfigGravityTicks(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		interval float64
		want     int
	}{
		{"defaults", 60, 0.5, 30},
		{"whole second", 60, 1.0, 60},
		{"coarse clock", 10, 0.5, 5},
		{"rounds down", 60, 0.33, 19},
		{"one tick", 10, 0.1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Height: 20, Width: 10, TickRate: tc.tickRate, StepInterval: tc.interval}
			if got := cfg.gravityTicks(); got != tc.want {
				t.Errorf("gravityTicks() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 0
	if _, err := New(cfg); err == nil {
		t.Error("New() accepted a zero tick rate, expected an error")
	}
}
