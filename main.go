package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/logger"
)

func main() {
	configPath := flag.String("config", "", "game config yaml (embedded default if empty)")
	debug := flag.Bool("debug", false, "enable debug mode")
	placeholder := flag.Bool("placeholder", false, "draw flat placeholder frames instead of sprite sheets")
	watch := flag.Bool("watch", false, "reload prefabs and scripts from prefabs/ when they change")
	wall := flag.Bool("wall", false, "step the simulation by measured wall time instead of 1/TPS")
	logLevel := flag.String("log", "", "log level (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	if *debug {
		cfg.Debug = true
		if cfg.Log.Level == "" || cfg.Log.Level == "info" {
			cfg.Log.Level = "debug"
		}
	}
	if *watch {
		cfg.WatchPrefabs = true
	}
	if *wall {
		cfg.WallClock = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger.Init(cfg.Log)

	var loader assets.Loader = assets.NewSheetLoader(nil)
	if *placeholder {
		loader = assets.PlaceholderLoader{Size: 24}
	}

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, loader)
	if err != nil {
		logger.Log.WithError(err).Fatal("setup")
	}
	defer game.Close()

	logger.Log.WithField("players", len(game.players)).WithField("enemies", len(game.enemies)).Info("starting")
	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Error("game exited")
	}
}
