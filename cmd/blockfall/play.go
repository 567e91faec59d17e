package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mdanilov/blockfall/internal/config"
	"github.com/mdanilov/blockfall/internal/core"
	"github.com/mdanilov/blockfall/internal/game"
	"github.com/mdanilov/blockfall/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	// Terminal size, with a fallback for non-terminal stdout
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = fileCfg.Timing.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	cfg := game.Config{
		Height:         fileCfg.Board.Height,
		Width:          fileCfg.Board.Width,
		TickRate:       rt.TickRate,
		StepInterval:   fileCfg.Timing.StepInterval,
		LockOnHardDrop: fileCfg.Rules.LockOnHardDrop,
		Seed:           rt.Seed,
	}

	if err := tui.Run(cfg, rt.ScreenW, rt.ScreenH); err != nil {
		logger.Fatal("could not run game", "error", err)
	}
}
