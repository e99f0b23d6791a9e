package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/padrunner/ecs/component"
)

func drawScene(screen *ebiten.Image, k component.Kinematic, t component.Tuning) {
	screen.Fill(colornames.Blue)

	box := k.Box(t.Width, t.Height)
	vector.DrawFilledRect(
		screen,
		float32(box.L), float32(box.B),
		float32(box.R-box.L), float32(box.T-box.B),
		colornames.Red,
		false,
	)
}
