// runner is a terminal lane-runner: dodge obstacles across three lanes,
// jump barriers, slide under wires, and collect coins.
//
// Usage:
//
//	runner play              - Play in the current terminal
//	runner menu              - Start the interactive session menu
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.lane-runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "runner",
	Short: "Lane Runner - a 3-lane endless runner in your terminal",
	Long: `Lane Runner is a terminal endless runner. Switch lanes to dodge
trains, jump over barriers, slide under wires, and grab coins while the
track speeds up.

Available commands:
  play     - Play in the current terminal
  menu     - Interactive session menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 44225
  runner serve --ssh :2222
  runner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lane-runner/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
