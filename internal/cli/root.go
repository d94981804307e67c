package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/tickdo/internal/config"
	"github.com/pablasso/tickdo/internal/tui"
	"github.com/pablasso/tickdo/internal/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tickdo",
	Short: "A to-do list with per-task countdown timers",
	Long: `Tickdo is a terminal to-do list. Each task may carry a duration budget
that ticks down once per second until the task is completed or expires.`,
	Version:      fmt.Sprintf("%s (%s, built %s)", version.Version, version.CommitSHA, version.BuildDate),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		return tui.Run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an alternate preferences file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
