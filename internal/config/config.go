// Package config provides YAML-based configuration loading with embedded
// defaults for the slither platform.
package config

// Config is the top-level configuration document.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Preview PreviewConfig `yaml:"preview"`
}

// GameConfig holds the Snake engine parameters. Defaults reproduce the
// classic rules: a 15x15 board, one move every 150ms, 10 points per food.
type GameConfig struct {
	GridSize       int `yaml:"grid_size"`
	TickIntervalMS int `yaml:"tick_interval_ms"`
	FoodReward     int `yaml:"food_reward"`
}

// PreviewConfig holds the social preview image parameters.
type PreviewConfig struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	RegularFont  string `yaml:"regular_font"`  // Regular-weight font file name
	SemiBoldFont string `yaml:"semibold_font"` // Semi-bold font file name

	// FontDirs overrides the font search path. When empty the renderer
	// uses ./assets/fonts then a fonts directory next to the binary.
	FontDirs []string `yaml:"font_dirs"`
}
