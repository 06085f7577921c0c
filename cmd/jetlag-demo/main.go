package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/oliverbestmann/jetlag/jetlagebiten"
	"github.com/oliverbestmann/jetlag/stage"
	"github.com/pkg/profile"
)

func main() {
	profileMode := flag.String("profile", "", "write a profile: cpu or mem")
	debug := flag.Bool("debug", true, "draw the physics world")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.MemProfileRate(512)).Stop()
	}

	st := stage.NewStage(stage.DefaultConfig())

	game := jetlagebiten.NewGame(st, jetlagebiten.DefaultWindowConfig())
	game.Debug = *debug

	level := &Level{Stage: st, Game: game}
	level.Build()

	if err := jetlagebiten.Run(game); err != nil {
		slog.Error("Game failed", slog.Any("err", err))
		os.Exit(1)
	}
}
