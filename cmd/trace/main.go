// Command trace runs the character without a window and prints one line
// per tick: tick, x, y, vx, vy, on_ground.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/milk9111/padrunner/common"
	"github.com/milk9111/padrunner/ecs"
	"github.com/milk9111/padrunner/ecs/component"
	"github.com/milk9111/padrunner/ecs/system"
	"github.com/milk9111/padrunner/input"
	"github.com/milk9111/padrunner/logger"
	"github.com/milk9111/padrunner/prefabs"
)

func main() {
	scriptPath := flag.String("script", "", "tengo input script; empty means no controller")
	ticks := flag.Int("ticks", 90, "number of ticks to run (0 runs until interrupted with -realtime)")
	realtime := flag.Bool("realtime", false, "space ticks at the tuned tick rate")
	width := flag.Float64("width", common.BaseWidth, "scene width")
	height := flag.Float64("height", common.BaseHeight, "scene height")
	tuningPath := flag.String("tuning", "", "player spec YAML; defaults to the built-in prefab")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	zl, err := logger.New(logger.Config{Level: *logLevel, Format: "console"})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(zl, *scriptPath, *tuningPath, *ticks, *realtime, component.LevelBounds{Width: *width, Height: *height}); err != nil {
		zl.Error("trace failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(zl *zap.Logger, scriptPath, tuningPath string, ticks int, realtime bool, bounds component.LevelBounds) error {
	tuning := component.DefaultTuning()
	var err error
	if tuningPath != "" {
		tuning, err = prefabs.LoadTuningFile(tuningPath)
	} else {
		tuning, err = prefabs.LoadTuning(prefabs.PlayerFile)
	}
	if err != nil {
		return err
	}

	source := input.Neutral
	if scriptPath != "" {
		src, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("trace: read script: %w", err)
		}
		script, err := input.NewScript(scriptPath, src, zl)
		if err != nil {
			return err
		}
		source = script
	}

	world := ecs.NewWorld(bounds, tuning)
	world.AddSystem(system.NewInputSystem(source))
	world.AddSystem(system.NewMotionSystem())

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	fmt.Fprintln(out, "tick,x,y,vx,vy,on_ground")

	onTick := func(w *ecs.World) bool {
		k := w.Snapshot()
		fmt.Fprintf(out, "%d,%.4f,%.4f,%.4f,%.4f,%t\n",
			w.Tick(), k.Position.X, k.Position.Y, k.Velocity.X, k.Velocity.Y, k.OnGround)
		for _, evt := range w.Events() {
			zl.Debug("motion event", zap.String("kind", string(evt.Kind)), zap.Uint64("tick", evt.Tick))
		}
		return ticks <= 0 || int(w.Tick()) < ticks
	}

	if !realtime {
		if ticks <= 0 {
			return errors.New("trace: -ticks must be positive without -realtime")
		}
		ecs.RunTicks(world, ticks, onTick)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := ecs.Run(ctx, world, tuning.TickInterval(), onTick); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
