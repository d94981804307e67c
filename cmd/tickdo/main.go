package main

import (
	"fmt"
	"os"

	"github.com/pablasso/tickdo/internal/cli"
	"github.com/pablasso/tickdo/internal/config"
	"github.com/pablasso/tickdo/internal/tui"
)

func main() {
	// If no args, launch TUI with default preferences; otherwise route to CLI
	if len(os.Args) == 1 {
		cfg, err := config.Load(config.DefaultPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := tui.Run(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
