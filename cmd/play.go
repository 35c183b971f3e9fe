package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/service"
	"github.com/spf13/cobra"
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play mazes interactively in the terminal",
		Long: `Play opens an interactive session. Every action redraws the maze and
rewrites the configured output file.

Controls:
  g  carve a new maze
  s  show or hide the solution
  t  switch the color theme
  q  quit`,
		RunE: runPlay,
	}

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.ParseMazeFile(configFile)
	if err != nil {
		return err
	}

	session, err := service.NewPlaySession(&service.PlayConfig{
		MazeConfig: cfg,
		Logger:     log.New(os.Stderr, "", log.LstdFlags),
	})
	if err != nil {
		return err
	}

	return playLoop(session, cmd.InOrStdin(), cmd.OutOrStdout())
}

// playLoop redraws the maze and prompts until the player quits or the
// input drains.
func playLoop(session *service.PlaySession, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		frame, err := session.Frame()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, frame)
		if !session.Solvable() {
			fmt.Fprintln(out, "This maze has no route from entry to exit.")
		}

		solutionLabel := "show solution"
		if session.ShowingSolution() {
			solutionLabel = "hide solution"
		}
		fmt.Fprintf(out, "[g] new maze  [s] %s  [t] next theme  [q] quit > ", solutionLabel)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "g":
			err = session.Regenerate()
		case "s":
			err = session.ToggleSolution()
		case "t":
			err = session.CycleTheme()
		case "q":
			return nil
		}
		if err != nil {
			return err
		}
	}
}
