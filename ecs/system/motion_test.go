package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/padrunner/ecs"
	"github.com/milk9111/padrunner/ecs/component"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

var scene = component.LevelBounds{Width: 800, Height: 600}

func grounded(x float64) component.Kinematic {
	return component.Kinematic{
		Position: cp.Vector{X: x, Y: scene.Ground(component.DefaultTuning().GroundMargin)},
		OnGround: true,
	}
}

func TestStepRunRightScenario(t *testing.T) {
	tuning := component.DefaultTuning()
	k := grounded(400)
	right := component.Input{MoveX: 1}

	wantVX := []float64{2, 4, 6, 8, 10}
	wantX := []float64{402, 406, 412, 420, 430}
	for i := range wantVX {
		k = Step(k, right, scene, tuning)
		if !near(k.Velocity.X, wantVX[i]) {
			t.Fatalf("tick %d: vx = %v, want %v", i+1, k.Velocity.X, wantVX[i])
		}
		if !near(k.Position.X, wantX[i]) {
			t.Fatalf("tick %d: x = %v, want %v", i+1, k.Position.X, wantX[i])
		}
		if k.Position.Y != 570 || k.Velocity.Y != 0 || !k.OnGround {
			t.Fatalf("tick %d: expected to stay grounded at 570, got y=%v vy=%v onGround=%t",
				i+1, k.Position.Y, k.Velocity.Y, k.OnGround)
		}
	}
}

func TestStepVelocityCap(t *testing.T) {
	tuning := component.DefaultTuning()
	cases := []struct {
		name  string
		input component.Input
		want  float64
	}{
		{"walk_right", component.Input{MoveX: 1}, 10},
		{"walk_left", component.Input{MoveX: -1}, -10},
		{"sprint_right", component.Input{MoveX: 0.5, Sprint: true}, 20},
		{"sprint_left", component.Input{MoveX: -0.2, Sprint: true}, -20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := grounded(400)
			for i := 0; i < 40; i++ {
				k = Step(k, c.input, component.LevelBounds{Width: 1e6, Height: 600}, tuning)
				if math.Abs(k.Velocity.X) > math.Abs(c.want) {
					t.Fatalf("tick %d: |vx| = %v exceeds cap %v", i+1, math.Abs(k.Velocity.X), math.Abs(c.want))
				}
			}
			if k.Velocity.X != c.want {
				t.Fatalf("steady state vx = %v, want %v", k.Velocity.X, c.want)
			}
		})
	}
}

func TestStepReleasingSprintClampsNextTick(t *testing.T) {
	tuning := component.DefaultTuning()
	k := grounded(400)
	k.Velocity.X = 20

	k = Step(k, component.Input{MoveX: 1}, scene, tuning)
	if k.Velocity.X != 10 {
		t.Fatalf("vx = %v, want 10 once sprint is released", k.Velocity.X)
	}
}

func TestStepFrictionDecay(t *testing.T) {
	tuning := component.DefaultTuning()
	k := grounded(100)
	k.Velocity.X = 10

	k = Step(k, component.NeutralInput(), scene, tuning)
	if !near(k.Velocity.X, 9) {
		t.Fatalf("after one tick vx = %v, want 9", k.Velocity.X)
	}

	prev := k.Velocity.X
	for n := 2; n <= 60; n++ {
		k = Step(k, component.NeutralInput(), scene, tuning)
		want := 10 * math.Pow(0.9, float64(n))
		if math.Abs(k.Velocity.X-want) > 1e-9 {
			t.Fatalf("tick %d: vx = %v, want %v", n, k.Velocity.X, want)
		}
		if k.Velocity.X >= prev || k.Velocity.X == 0 {
			t.Fatalf("tick %d: vx = %v not strictly decreasing toward zero (prev %v)", n, k.Velocity.X, prev)
		}
		prev = k.Velocity.X
	}
}

func TestStepDeadZone(t *testing.T) {
	tuning := component.DefaultTuning()
	for _, axis := range []float64{-0.1, -0.05, 0, 0.05, 0.1} {
		k := grounded(400)
		k.Velocity.X = 5
		k = Step(k, component.Input{MoveX: axis}, scene, tuning)
		if !near(k.Velocity.X, 4.5) {
			t.Fatalf("axis %v: vx = %v, want friction to give 4.5", axis, k.Velocity.X)
		}
	}
}

func TestStepJumpEdgeTrigger(t *testing.T) {
	tuning := component.DefaultTuning()
	k := grounded(400)
	jump := component.Input{Jump: true}

	// -30 on take-off, then +2 every held tick.
	wantVY := []float64{-28, -26, -24}
	wantY := []float64{542, 516, 492}
	for i := range wantVY {
		k = Step(k, jump, scene, tuning)
		if !near(k.Velocity.Y, wantVY[i]) {
			t.Fatalf("tick %d: vy = %v, want %v", i+1, k.Velocity.Y, wantVY[i])
		}
		if !near(k.Position.Y, wantY[i]) {
			t.Fatalf("tick %d: y = %v, want %v", i+1, k.Position.Y, wantY[i])
		}
		if k.OnGround {
			t.Fatalf("tick %d: still on ground while jumping", i+1)
		}
	}
}

func TestStepJumpHeldWhileAirborneOnlyNudges(t *testing.T) {
	tuning := component.DefaultTuning()
	k := component.Kinematic{Position: cp.Vector{X: 400, Y: 300}, Velocity: cp.Vector{Y: 5}}

	k = Step(k, component.Input{Jump: true}, scene, tuning)
	// jumpStrength/15 is -2, so each held tick adds 2 to vy.
	if !near(k.Velocity.Y, 7) {
		t.Fatalf("vy = %v, want 7 (no take-off while airborne)", k.Velocity.Y)
	}
}

func TestStepJumpRetriggersAfterLanding(t *testing.T) {
	tuning := component.DefaultTuning()
	k := grounded(400)

	k = Step(k, component.Input{Jump: true}, scene, tuning)
	for i := 0; i < 200 && !k.OnGround; i++ {
		k = Step(k, component.NeutralInput(), scene, tuning)
	}
	if !k.OnGround {
		t.Fatalf("character never landed")
	}

	k = Step(k, component.Input{Jump: true}, scene, tuning)
	if !near(k.Velocity.Y, -28) || k.OnGround {
		t.Fatalf("second jump: vy = %v onGround = %t, want -28 and airborne", k.Velocity.Y, k.OnGround)
	}
}

func TestStepGroundCollision(t *testing.T) {
	tuning := component.DefaultTuning()
	k := component.Kinematic{Position: cp.Vector{X: 400, Y: 560}, Velocity: cp.Vector{Y: 15}}

	k = Step(k, component.NeutralInput(), scene, tuning)
	if k.Position.Y != 570 {
		t.Fatalf("y = %v, want clamp to 570", k.Position.Y)
	}
	if k.Velocity.Y != 0 {
		t.Fatalf("vy = %v, want 0 after landing", k.Velocity.Y)
	}
	if !k.OnGround {
		t.Fatalf("onGround should be set on landing")
	}
}

func TestStepNeutralInputFromRest(t *testing.T) {
	tuning := component.DefaultTuning()

	t.Run("airborne", func(t *testing.T) {
		k := component.Kinematic{Position: cp.Vector{X: 400, Y: 100}}
		k = Step(k, component.NeutralInput(), scene, tuning)
		if !near(k.Velocity.Y, 9.8) || k.Velocity.X != 0 {
			t.Fatalf("vel = %+v, want (0, 9.8)", k.Velocity)
		}
		if !near(k.Position.Y, 109.8) {
			t.Fatalf("y = %v, want 109.8", k.Position.Y)
		}
	})

	t.Run("ground_level", func(t *testing.T) {
		k := component.NewKinematic(scene, tuning)
		k = Step(k, component.NeutralInput(), scene, tuning)
		if k.Velocity.X != 0 {
			t.Fatalf("vx = %v, want 0", k.Velocity.X)
		}
		// Gravity pushes it through the ground line and the clamp zeroes vy.
		if k.Velocity.Y != 0 || k.Position.Y != 570 || !k.OnGround {
			t.Fatalf("got y=%v vy=%v onGround=%t, want resting at 570", k.Position.Y, k.Velocity.Y, k.OnGround)
		}
	})
}

func TestStepHorizontalClamp(t *testing.T) {
	tuning := component.DefaultTuning()
	cases := []struct {
		name  string
		x, vx float64
		axis  float64
		wantX float64
	}{
		{"right_wall", 795, 10, 1, 800},
		{"left_wall", 3, -10, -1, 0},
		{"inside", 400, 0, 0, 400},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := grounded(c.x)
			k.Velocity.X = c.vx
			k = Step(k, component.Input{MoveX: c.axis}, scene, tuning)
			if k.Position.X != c.wantX {
				t.Fatalf("x = %v, want %v", k.Position.X, c.wantX)
			}
			if c.axis != 0 && k.Velocity.X != c.vx {
				t.Fatalf("vx = %v, wall should not change it (want %v)", k.Velocity.X, c.vx)
			}
		})
	}
}

func TestStepBoundsInvariant(t *testing.T) {
	tuning := component.DefaultTuning()
	k := component.NewKinematic(scene, tuning)

	inputs := []component.Input{
		{MoveX: 1, Sprint: true},
		{MoveX: 1, Jump: true},
		{MoveX: -1},
		{MoveX: -0.7, Sprint: true, Jump: true},
		{},
		{Jump: true},
	}
	for i := 0; i < 2000; i++ {
		in := inputs[(i/37)%len(inputs)]
		k = Step(k, in, scene, tuning)
		if k.Position.X < 0 || k.Position.X > scene.Width {
			t.Fatalf("tick %d: x = %v outside [0, %v]", i, k.Position.X, scene.Width)
		}
		if k.Position.Y > scene.Ground(tuning.GroundMargin) {
			t.Fatalf("tick %d: y = %v below ground", i, k.Position.Y)
		}
		if math.Abs(k.Velocity.X) > tuning.SprintMaxVelocity {
			t.Fatalf("tick %d: |vx| = %v above sprint cap", i, math.Abs(k.Velocity.X))
		}
	}
}

func TestStepDegenerateBounds(t *testing.T) {
	tuning := component.DefaultTuning()
	cases := []component.LevelBounds{
		{Width: 0, Height: 0},
		{Width: -50, Height: -10},
	}
	for _, b := range cases {
		k := component.Kinematic{Position: cp.Vector{X: 20, Y: 5}, Velocity: cp.Vector{X: 3}}
		k = Step(k, component.Input{MoveX: 1}, b, tuning)
		if k.Position.X != 0 {
			t.Fatalf("bounds %+v: x = %v, want 0", b, k.Position.X)
		}
		if k.Position.Y != b.Ground(tuning.GroundMargin) || !k.OnGround {
			t.Fatalf("bounds %+v: y = %v onGround = %t", b, k.Position.Y, k.OnGround)
		}
	}
}

func TestStepDoesNotTouchArguments(t *testing.T) {
	tuning := component.DefaultTuning()
	k := grounded(400)
	before := k

	_ = Step(k, component.Input{MoveX: 1, Jump: true}, scene, tuning)
	if k != before {
		t.Fatalf("Step modified its input state: %+v != %+v", k, before)
	}
}

func TestMotionSystemEvents(t *testing.T) {
	tuning := component.DefaultTuning()
	held := false
	w := ecs.NewWorld(scene, tuning)
	w.AddSystem(NewInputSystem(providerFunc(func() component.Input {
		return component.Input{Jump: held}
	})))
	w.AddSystem(NewMotionSystem())

	// Spawn is not grounded; the first tick lands.
	w.Update()
	if got := w.Events(); len(got) != 1 || got[0].Kind != ecs.EventLanded || got[0].Tick != 1 {
		t.Fatalf("tick 1 events = %+v, want one landed", got)
	}

	held = true
	w.Update()
	if got := w.Events(); len(got) != 1 || got[0].Kind != ecs.EventJumped {
		t.Fatalf("tick 2 events = %+v, want one jumped", got)
	}

	w.Update()
	if got := w.Events(); len(got) != 0 {
		t.Fatalf("tick 3 events = %+v, want none while rising", got)
	}
}
