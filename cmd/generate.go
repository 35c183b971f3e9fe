package cmd

import (
	"strings"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/render"
	"github.com/beka-birhanu/amazeing/service"
	"github.com/spf13/cobra"
)

var (
	genTheme    int
	genSolution bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one maze from a config file",
		Long: `Generate carves a maze according to the config file, writes its
encoded document to the configured output file and draws it on stdout.

Examples:
  amazeing generate
  amazeing generate -c maze_config.txt --solution --theme 3`,
		RunE: runGenerate,
	}

	genCmd.Flags().IntVar(&genTheme, "theme", 0, "Color theme index")
	genCmd.Flags().BoolVar(&genSolution, "solution", false, "Draw the solution walk")

	rootCmd.AddCommand(genCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.ParseMazeFile(configFile)
	if err != nil {
		return err
	}

	m, path, err := service.BuildMaze(service.SpecOf(cfg))
	if err != nil {
		return err
	}

	if err := maze.EncodeFile(cfg.OutputFile, m, path); err != nil {
		return err
	}

	if genSolution && path != nil {
		m.MarkSolution(path)
	}

	var art strings.Builder
	if err := render.Draw(&art, m, render.ThemeAt(genTheme)); err != nil {
		return err
	}
	cmd.Println(art.String())

	if path != nil {
		cmd.Printf("Solved in %d steps. Maze written to %s\n", len(path)-1, cfg.OutputFile)
	} else {
		cmd.Printf("No route from entry to exit. Maze written to %s\n", cfg.OutputFile)
	}
	return nil
}
