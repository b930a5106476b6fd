// Package main provides the entry point for the GeoSketch application.
package main

import (
	"flag"
	"fmt"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"geosketch/internal/app"
	"geosketch/internal/config"
	"geosketch/internal/version"
	"geosketch/ui/mainwindow"
)

func main() {
	configPath := flag.String("config", "geosketch.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "geosketch: %v\n", err)
		os.Exit(1)
	}

	logger, err := app.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "geosketch: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting geosketch",
		zap.String("version", version.Version),
		zap.String("config", *configPath))

	state := app.NewState(cfg, logger)

	// Restore the autosaved diagram, or load an explicit one.
	if path := flag.Arg(0); path != "" {
		if err := state.OpenDiagram(path); err != nil {
			logger.Warn("could not load diagram", zap.String("path", path), zap.Error(err))
		}
	} else if cfg.Storage.Autosave && cfg.Storage.AutosavePath != "" {
		if err := state.OpenDiagram(cfg.Storage.AutosavePath); err != nil {
			logger.Debug("no autosaved diagram", zap.Error(err))
		}
	}

	fyneApp := fyneapp.NewWithID("io.geosketch.app")
	fyneApp.Settings().SetTheme(&app.GeoSketchTheme{})
	win := mainwindow.New(fyneApp, state)
	win.ShowAndRun()
}
