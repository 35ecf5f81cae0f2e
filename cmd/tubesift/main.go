package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tubesift/tubesift/internal/app"
	"github.com/tubesift/tubesift/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config: %v (using defaults)\n", err)
		cfg = config.GetDefaults()
	}

	app := app.New(cfg)

	// Optional positional argument: a JSON results file from a previous export
	if len(os.Args) > 1 {
		if err := app.LoadResultsFromFile(os.Args[1]); err != nil {
			log.Printf("Warning: %v\n", err)
		}
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
