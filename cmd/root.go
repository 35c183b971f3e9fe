// Package cmd wires the amazeing command tree.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "amazeing",
	Short: "Generate, play and serve mazes",
	Long: `amazeing carves mazes with DFS or Prim style algorithms, draws them in
the terminal and serves them over a REST API. The generate and play
commands read their settings from a KEY=VALUE maze config file, the
serve command from the environment.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "maze_config.txt", "Maze config file")
}

// Execute runs the amazeing command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
