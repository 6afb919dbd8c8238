package slither

import (
	"strings"
	"testing"

	"github.com/hellno/tiny-slither/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "slither" {
		t.Errorf("ID() = %q, expected slither", g.ID())
	}
	if g.Title() != "Tiny Slither" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 30 {
			input.Set(core.ActionDown)
		}
		if i == 90 {
			input.Set(core.ActionLeft)
		}
		if i == 150 {
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMovePacing(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.engine.food = Cell{X: 0, Y: 0}

	// 150ms at 60fps is 9 platform ticks per engine move
	if g.moveEveryTicks != 9 {
		t.Fatalf("moveEveryTicks = %d, expected 9", g.moveEveryTicks)
	}

	start := g.engine.Head()
	input := core.NewInputFrame()

	for i := 0; i < g.moveEveryTicks-1; i++ {
		g.Step(input)
	}
	if g.engine.Head() != start {
		t.Error("snake should not move before the pacing interval elapses")
	}

	g.Step(input)
	if g.engine.Head() == start {
		t.Error("snake should move once the pacing interval elapses")
	}
}

func TestInputMapping(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   Direction
	}{
		{"down", core.ActionDown, DirDown},
		{"up then left", core.ActionLeft, DirLeft}, // from down, left is legal
	}

	g := New()
	g.Reset(testConfig())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := core.NewInputFrame()
			input.Set(tc.action)
			g.Step(input)
			if g.engine.Direction() != tc.want {
				t.Errorf("direction = %v, expected %v", g.engine.Direction(), tc.want)
			}
		})
	}
}

func TestPauseAction(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	res := g.Step(input)

	if !res.State.Paused {
		t.Error("ActionPause should pause the game")
	}

	res = g.Step(input)
	if res.State.Paused {
		t.Error("ActionPause again should resume the game")
	}
}

func TestRestartAction(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.engine.over = true
	g.engine.score = 40

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	res := g.Step(input)

	if res.State.GameOver {
		t.Error("restart should clear game over")
	}
	if res.State.Score != 0 {
		t.Errorf("score after restart = %d, expected 0", res.State.Score)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.engine.score = 30

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	res := g.Step(input)

	if res.State.Score != 30 {
		t.Error("restart should be ignored while the game is running")
	}
}

func TestWindowTooSmall(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW = 10
	cfg.ScreenH = 5

	g := New()
	g.Reset(cfg)

	if !g.tooSmall {
		t.Fatal("game should detect the window is too small")
	}

	// Simulation is held while the window is too small
	head := g.engine.Head()
	input := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if g.engine.Head() != head {
		t.Error("snake should not move while the window is too small")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Tiny Slither") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "O") {
		t.Error("render should draw the snake head")
	}
	if !strings.Contains(content, "*") {
		t.Error("render should draw the food")
	}
}

func TestRenderGameOverPrecedence(t *testing.T) {
	// Both flags set: the game over overlay wins.
	g := New()
	g.Reset(testConfig())
	g.engine.over = true
	g.engine.paused = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Game Over") {
		t.Error("game over overlay should be drawn")
	}
	if strings.Contains(content, "Paused") {
		t.Error("paused overlay must not be drawn when the game is over")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.engine.paused = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused overlay should be drawn")
	}
}
