package main

import (
	"fmt"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/padrunner/ecs"
	"github.com/milk9111/padrunner/ecs/component"
	"github.com/milk9111/padrunner/ecs/system"
	"github.com/milk9111/padrunner/input"
	"github.com/milk9111/padrunner/prefabs"
)

type Game struct {
	world   *ecs.World
	device  *input.Device
	pads    []ebiten.GamepadID
	watcher *prefabs.Watcher
	tuning  *prefabs.TuningReloader
	script  *input.Script
	log     *zap.Logger

	debug        bool
	paused       bool
	pauseUI      *ebitenui.UI
	clipboardOK  bool
	screenWidth  int
	screenHeight int
}

type GameOptions struct {
	Bounds   component.LevelBounds
	Tuning   component.Tuning
	Debug    bool
	Script   *input.Script
	Watcher  *prefabs.Watcher
	Keyboard bool
}

func NewGame(opts GameOptions, log *zap.Logger) *Game {
	device := &input.Device{}
	device.OnChange = func(id input.PadID, ok bool) {
		if ok {
			log.Info("controller active", zap.Int("pad", int(id)), zap.String("name", ebiten.GamepadName(ebiten.GamepadID(id))))
		} else {
			log.Info("no controller connected")
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		device.Connect(input.PadID(id))
	}

	providers := []input.Provider{input.NewGamepad(device, ebitenPad{})}
	if opts.Keyboard {
		providers = append(providers, input.NewKeyboard(ebitenKeys{}))
	}
	if opts.Script != nil {
		providers = append(providers, opts.Script)
	}

	world := ecs.NewWorld(opts.Bounds, opts.Tuning)
	// Snapshot runs inside world.Update, so the unlocked accessor sees
	// reloaded tuning on the next tick.
	deadZone := func() float64 { return world.Tuning().DeadZone }
	world.AddSystem(system.NewInputSystem(input.Merge(deadZone, providers...)))
	world.AddSystem(system.NewMotionSystem())

	g := &Game{
		world:        world,
		device:       device,
		watcher:      opts.Watcher,
		script:       opts.Script,
		log:          log,
		debug:        opts.Debug,
		screenWidth:  int(opts.Bounds.Width),
		screenHeight: int(opts.Bounds.Height),
	}
	g.pauseUI = NewPauseUI(g)
	if opts.Watcher != nil {
		g.tuning = prefabs.NewTuningReloader(prefabs.PlayerFile)
	}

	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", zap.Error(err))
	} else {
		g.clipboardOK = true
	}
	return g
}

func (g *Game) Update() error {
	g.pads = pollConnections(g.device, g.pads)
	g.reloadTuning()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.startJustPressed() {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyTuning()
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Update()
	for _, evt := range g.world.Events() {
		k := g.world.Snapshot()
		g.log.Debug("motion event",
			zap.String("kind", string(evt.Kind)),
			zap.Uint64("tick", evt.Tick),
			zap.Float64("x", k.Position.X),
			zap.Float64("y", k.Position.Y),
		)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.world.Snapshot(), g.world.CurrentTuning())

	if g.debug {
		k := g.world.Snapshot()
		pad := "none"
		if id, ok := g.device.Current(); ok {
			pad = fmt.Sprintf("%d", id)
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"TPS: %.1f  tick: %d  pad: %s\npos: (%.1f, %.1f)  vel: (%.2f, %.2f)  ground: %t",
			ebiten.ActualTPS(), g.world.Tick(), pad,
			k.Position.X, k.Position.Y, k.Velocity.X, k.Velocity.Y, k.OnGround,
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Layout keeps the scene the size of the window, so resizing moves the
// ground line and the side walls.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth, g.screenHeight = outsideWidth, outsideHeight
		g.world.Resize(component.LevelBounds{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) Reset() {
	g.world.Reset()
	g.paused = false
	g.log.Info("character reset")
}

func (g *Game) startJustPressed() bool {
	id, ok := g.device.Current()
	if !ok {
		return false
	}
	return inpututil.IsStandardGamepadButtonJustPressed(ebiten.GamepadID(id), ebiten.StandardGamepadButtonCenterRight)
}

func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		switch {
		case name == g.tuning.Name():
			t, ok, err := g.tuning.Reload()
			if err != nil {
				g.log.Warn("keeping previous tuning", zap.String("file", name), zap.Error(err))
				continue
			}
			if !ok {
				continue
			}
			g.world.SetTuning(t)
			ebiten.SetTPS(t.TickRate)
			g.log.Info("tuning reloaded", zap.String("file", name), zap.Int("tick_rate", t.TickRate))
		case g.script != nil && name == filepath.Base(g.script.Name()):
			g.reloadScript()
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("prefab watcher", zap.Error(err))
		}
	default:
	}
}

// reloadScript recompiles the demo script from its disk copy. A deleted
// file keeps the running program.
func (g *Game) reloadScript() {
	name := g.script.Name()
	if _, ok := prefabs.ScriptModTime(name); !ok {
		return
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		g.log.Warn("keeping previous script", zap.String("script", name), zap.Error(err))
		return
	}
	if err := g.script.Reload(src); err != nil {
		g.log.Warn("keeping previous script", zap.String("script", name), zap.Error(err))
		return
	}
	g.log.Info("script reloaded", zap.String("script", name), zap.Int("tick", g.script.Tick()))
}

func (g *Game) copyTuning() {
	if !g.clipboardOK {
		return
	}
	data, err := prefabs.MarshalTuning(g.world.CurrentTuning())
	if err != nil {
		g.log.Warn("copy tuning", zap.Error(err))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.log.Info("tuning copied to clipboard")
}
