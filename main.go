package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/game/config"
	"cyberharvest/pkg/game/machine"
	"cyberharvest/pkg/game/renderer"
	"cyberharvest/pkg/game/renderer/ebiten"
	"cyberharvest/pkg/game/renderer/tui"
	"cyberharvest/pkg/game/state"
	"cyberharvest/pkg/logger"
)

func initGettext(cfg config.Config) {
	gotext.Configure(filepath.Join(cfg.Assets, "locales"), cfg.Language, "default")
}

// openLogFile sends logs to a file so they do not scribble over the
// terminal host's screen.
func openLogFile(path string) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Log.WithError(err).Warn("cannot open log file, logging to stderr")
		return
	}
	logger.SetOutput(f)
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	room := flag.String("room", "", "start in the given room (for developer testing)")
	debug := flag.Bool("debug", false, "enable developer keys (P deep dive, F8 map dump)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("loading config")
	}
	if *room != "" {
		if _, ok := state.ParseRoom(*room); !ok {
			logger.Log.WithField("room", *room).Fatal("unknown room")
		}
		cfg.StartRoom = *room
	}
	if *debug {
		cfg.Debug = true
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	initGettext(cfg)

	m := machine.New(machine.Options{
		Assets:  os.DirFS(cfg.Assets),
		Start:   cfg.Room(),
		Debug:   cfg.Debug,
		DumpDir: ".",
	})

	if *useTUI {
		if !input.IsTerminal() {
			logger.Log.Fatal("the terminal host needs an interactive terminal")
		}
		openLogFile("cyberharvest.log")
		renderer.SetRenderer(tui.New())
	} else {
		renderer.SetRenderer(ebiten.New(cfg))
	}

	logger.Log.WithFields(logrus.Fields{
		"host":  renderer.Current.Name(),
		"room":  cfg.StartRoom,
		"debug": cfg.Debug,
	}).Info("starting CyberHarvest")

	if err := renderer.Run(m); err != nil {
		logger.Log.WithError(err).Fatal("game stopped")
	}
}
