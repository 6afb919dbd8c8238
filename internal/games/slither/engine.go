// Package slither implements the Snake game: a pure state engine plus the
// platform adapter that paces and renders it.
package slither

import "math/rand"

// Cell is a grid coordinate: 0-indexed column and row on a square board.
type Cell struct {
	X, Y int
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Opposite returns the 180-degree reversal of the direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Status is the observable game status. Internally the engine tracks game
// over and paused as independent flags; game over wins when both are set.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Engine holds the complete Snake game state and applies discrete
// transitions. All operations are total: illegal requests are silent
// no-ops, never errors. The engine owns its state; callers observe it
// through accessors that return copies.
type Engine struct {
	size   int
	reward int
	rng    *rand.Rand

	snake  []Cell // Head at index 0; all cells distinct, contiguous path
	dir    Direction
	food   Cell
	score  int
	over   bool
	paused bool
}

// NewEngine creates an engine for a size x size board awarding reward
// points per food, and resets it to the initial state. The caller supplies
// the RNG so simulations are reproducible.
func NewEngine(size, reward int, rng *rand.Rand) *Engine {
	e := &Engine{size: size, reward: reward, rng: rng}
	e.Reset()
	return e
}

// Reset unconditionally restores the initial state: a 3-cell snake lying
// horizontally on the middle row, heading right, score zero, running.
func (e *Engine) Reset() {
	row := e.size / 2
	col := e.size / 3
	e.snake = []Cell{
		{X: col + 2, Y: row}, // Head
		{X: col + 1, Y: row},
		{X: col, Y: row},
	}
	e.dir = DirRight
	e.score = 0
	e.over = false
	e.paused = false
	e.spawnFood()
}

// spawnFood draws the column and row independently from [0, size). The
// food may land on a snake-occupied cell; it stays there, temporarily
// unreachable, until the body moves on.
func (e *Engine) spawnFood() {
	e.food = Cell{X: e.rng.Intn(e.size), Y: e.rng.Intn(e.size)}
}

// RequestDirection replaces the current direction with d. Ignored after
// game over and when d would reverse the snake through its own neck.
func (e *Engine) RequestDirection(d Direction) {
	if e.over || d == e.dir.Opposite() {
		return
	}
	e.dir = d
}

// Tick advances the simulation by one cell of movement. It is a no-op
// while paused or after game over. Leaving the board or biting the body
// ends the game with the snake, food, and score preserved as they were.
func (e *Engine) Tick() {
	if e.over || e.paused {
		return
	}

	head := e.snake[0]
	next := Cell{X: head.X + e.dir.DX, Y: head.Y + e.dir.DY}

	if next.X < 0 || next.X >= e.size || next.Y < 0 || next.Y >= e.size {
		e.over = true
		return
	}
	for _, c := range e.snake {
		if c == next {
			e.over = true
			return
		}
	}

	e.snake = append([]Cell{next}, e.snake...)

	if next == e.food {
		e.score += e.reward
		e.spawnFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}
}

// TogglePause flips the paused flag. The flag is independent of game
// over: it can still flip afterwards, but StatusOver keeps precedence.
func (e *Engine) TogglePause() {
	e.paused = !e.paused
}

// Status reports the observable status, with game over taking precedence
// over paused.
func (e *Engine) Status() Status {
	switch {
	case e.over:
		return StatusOver
	case e.paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// GameOver reports the raw game-over flag.
func (e *Engine) GameOver() bool {
	return e.over
}

// Paused reports the raw paused flag, regardless of game over.
func (e *Engine) Paused() bool {
	return e.paused
}

// Snake returns a copy of the snake cells, head first.
func (e *Engine) Snake() []Cell {
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}

// Head returns the snake's leading cell.
func (e *Engine) Head() Cell {
	return e.snake[0]
}

// Food returns the current food cell.
func (e *Engine) Food() Cell {
	return e.food
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Size returns the board side length.
func (e *Engine) Size() int {
	return e.size
}

// Direction returns the current movement direction.
func (e *Engine) Direction() Direction {
	return e.dir
}
