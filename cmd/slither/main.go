// slither is a terminal Snake arcade with remote play over SSH and a
// social preview image server.
//
// Usage:
//
//	slither play             - Play in the current terminal
//	slither scores           - Show high scores
//	slither serve            - Start the SSH server for remote play
//	slither preview          - Serve the social preview image over HTTP
//
// Global flags:
//
//	--fps <rate>    - Platform tick rate (default: 60)
//	--seed <value>  - RNG seed for reproducible gameplay
//	--db <path>     - Scores database path (default: ~/.slither/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/hellno/tiny-slither/internal/games/slither"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slither",
	Short: "Tiny Slither - Snake in your terminal",
	Long: `Tiny Slither is a terminal Snake game: eat, grow, and don't bite
yourself. Play locally, host remote play over SSH, and serve the
project's social preview card over HTTP.

Examples:
  slither play
  slither play --seed 42
  slither scores
  slither serve --ssh :2222
  slither preview --http :8080`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slither/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
}
