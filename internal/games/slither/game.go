package slither

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hellno/tiny-slither/internal/config"
	"github.com/hellno/tiny-slither/internal/core"
	"github.com/hellno/tiny-slither/internal/registry"
)

// Game adapts the Engine to the platform: it paces engine ticks against
// the platform tick rate, maps input actions to engine operations, and
// renders the board into the screen buffer.
type Game struct {
	engine  *Engine
	gameCfg config.GameConfig

	tick           uint64
	moveEveryTicks int
	moveTicker     int

	screenW   int
	screenH   int
	hudHeight int
	tooSmall  bool
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new slither game. Reset must be called before stepping.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("slither", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "slither"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tiny Slither"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.Load(configPath)
	if err != nil {
		loaded = config.Default()
	}
	g.gameCfg = loaded.Game

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	// One engine step per TickIntervalMS of wall time at the platform rate.
	g.moveEveryTicks = max(1, g.gameCfg.TickIntervalMS*tickRate/1000)
	g.moveTicker = 0
	g.tick = 0

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.engine = NewEngine(g.gameCfg.GridSize, g.gameCfg.FoodReward, rand.New(rand.NewSource(seed)))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.checkSize()
}

// checkSize verifies the board plus HUD fits the screen.
func (g *Game) checkSize() {
	requiredW := g.engine.Size() + 2
	requiredH := g.engine.Size() + g.hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.engine.GameOver() {
		g.engine.Reset()
		g.moveTicker = 0
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.engine.TogglePause()
	}

	// Only the most recent direction choice matters; no buffering.
	switch {
	case input.Has(core.ActionUp):
		g.engine.RequestDirection(DirUp)
	case input.Has(core.ActionDown):
		g.engine.RequestDirection(DirDown)
	case input.Has(core.ActionLeft):
		g.engine.RequestDirection(DirLeft)
	case input.Has(core.ActionRight):
		g.engine.RequestDirection(DirRight)
	}

	if !g.tooSmall {
		g.moveTicker++
		if g.moveTicker >= g.moveEveryTicks {
			g.moveTicker = 0
			g.engine.Tick()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused(),
	}
}

// Engine exposes the underlying state engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	size := g.engine.Size()
	offsetX := (dst.Width() - size - 2) / 2
	offsetY := g.hudHeight

	dst.DrawBox(core.NewRect(offsetX, offsetY, size+2, size+2), core.ColorGray)

	food := g.engine.Food()
	dst.SetCell(offsetX+1+food.X, offsetY+1+food.Y, '*', core.ColorBrightRed)

	for i, seg := range g.engine.Snake() {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetCell(offsetX+1+seg.X, offsetY+1+seg.Y, r, c)
	}

	// Game over display wins over paused when both flags are set.
	switch g.engine.Status() {
	case StatusOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tiny Slither — Score: %d  Length: %d", g.engine.Score(), len(g.engine.Snake()))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
