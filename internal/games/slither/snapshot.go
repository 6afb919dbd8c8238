package slither

// Snapshot captures the observable game state for determinism testing
// and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Status   Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.engine.Head()
	food := g.engine.Food()
	return Snapshot{
		Tick:     g.tick,
		Score:    g.engine.Score(),
		SnakeLen: len(g.engine.Snake()),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.engine.Direction(),
		FoodX:    food.X,
		FoodY:    food.Y,
		Status:   g.engine.Status(),
	}
}
