package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdfeed/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game rules",
	Long: `Print the rules the game would run with, after the config file search
and the difficulty preset, as YAML. Save the output to
~/.birdfeed/birdfeed.yaml to customize it.

Examples:
  birdfeed config
  birdfeed config --difficulty hard > ~/.birdfeed/birdfeed.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	data, err := config.Marshal(rules)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
