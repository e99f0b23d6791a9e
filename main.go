package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/padrunner/common"
	"github.com/milk9111/padrunner/ecs/component"
	"github.com/milk9111/padrunner/input"
	"github.com/milk9111/padrunner/logger"
	"github.com/milk9111/padrunner/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the state overlay and log motion events")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	width := flag.Int("w", common.BaseWidth, "scene width")
	height := flag.Int("h", common.BaseHeight, "scene height")
	watch := flag.Bool("watch", false, "reload prefabs/player.yaml when it changes")
	keyboard := flag.Bool("keyboard", true, "accept keyboard input alongside the controller")
	demo := flag.String("demo", "", "drive the character from a script in prefabs/scripts (e.g. demo.tengo)")
	logLevel := flag.String("log-level", "info", "log level")
	logFormat := flag.String("log-format", "console", "log encoding: console or json")
	flag.Parse()

	level := *logLevel
	if *debug {
		level = "debug"
	}
	zl, err := logger.New(logger.Config{Level: level, Format: *logFormat, Development: *debug})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	tuning, err := prefabs.LoadTuning(prefabs.PlayerFile)
	if err != nil {
		zl.Warn("using default tuning", zap.Error(err))
		tuning = component.DefaultTuning()
	}

	opts := GameOptions{
		Bounds:   component.LevelBounds{Width: float64(*width), Height: float64(*height)},
		Tuning:   tuning,
		Debug:    *debug,
		Keyboard: *keyboard,
	}

	if *demo != "" {
		src, err := prefabs.LoadScript(*demo)
		if err != nil {
			zl.Fatal("load demo script", zap.String("script", *demo), zap.Error(err))
		}
		script, err := input.NewScript(*demo, src, zl)
		if err != nil {
			zl.Fatal("compile demo script", zap.Error(err))
		}
		opts.Script = script
	}

	if *watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			zl.Warn("prefab hot reload disabled", zap.Error(err))
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("padrunner")
	ebiten.SetTPS(tuning.TickRate)

	game := NewGame(opts, zl)
	zl.Info("starting",
		zap.Int("width", *width),
		zap.Int("height", *height),
		zap.Int("tick_rate", tuning.TickRate),
	)

	if err := ebiten.RunGame(game); err != nil {
		zl.Fatal("run game", zap.Error(err))
	}
}
