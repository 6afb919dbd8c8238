package config

import (
	_ "embed"
)

//go:embed defaults/slither.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found on disk and as the last-resort fallback if the embedded YAML ever
// fails to parse.
func Default() Config {
	return Config{
		Game: GameConfig{
			GridSize:       15,
			TickIntervalMS: 150,
			FoodReward:     10,
		},
		Preview: PreviewConfig{
			Title:        "tiny-slither",
			Description:  "A tiny snake living in your terminal. Eat, grow, and don't bite yourself.",
			RegularFont:  "Inter-Regular.ttf",
			SemiBoldFont: "Inter-SemiBold.ttf",
		},
	}
}

// DefaultYAML returns the embedded default document. Useful for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultYAML
}
