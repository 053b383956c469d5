package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elivatehq/planner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	outDir, err := cfg.OutputDir()
	if err != nil {
		return err
	}
	fmt.Printf("    Output dir: %s\n", outDir)
	fmt.Printf("    Plan year:  %d\n", cfg.General.PlanYear)
	fmt.Println()

	fmt.Println("  [Team]")
	if len(cfg.Team.ExtraMemberIDs) > 0 {
		fmt.Printf("    Extra member IDs: %s\n", strings.Join(cfg.Team.ExtraMemberIDs, ", "))
	} else {
		fmt.Println("    Extra member IDs: none")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	if cfg.Appearance.TeamName != "" {
		fmt.Printf("    Team name: %s\n", cfg.Appearance.TeamName)
	} else {
		fmt.Println("    Team name: default")
	}
	if cfg.Appearance.Theme != "" {
		fmt.Printf("    Theme:     %s\n", cfg.Appearance.Theme)
	} else {
		fmt.Println("    Theme:     default")
	}
	fmt.Println()

	fmt.Println("  Run `planner branding set` to override branding for future runs.")
	return nil
}
