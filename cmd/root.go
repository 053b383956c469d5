// Package cmd implements the planner CLI commands.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/elivatehq/planner/internal/branding"
	"github.com/elivatehq/planner/internal/config"
	"github.com/elivatehq/planner/internal/export"
	"github.com/elivatehq/planner/internal/member"
	"github.com/elivatehq/planner/internal/render"
	"github.com/elivatehq/planner/internal/store"
	"github.com/elivatehq/planner/internal/wizard"
)

var (
	flagTeam   string
	flagTheme  string
	flagOutput string
	flagYear   int
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Team goal-planning wizard",
	Long:  "Walk through your yearly or monthly goal plan and export it as a branded PDF.",
	RunE:  runWizard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTeam, "team", "", "Team name shown on documents")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (see `planner branding themes`)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Directory for downloaded PDFs")
	rootCmd.Flags().IntVar(&flagYear, "year", 0, "Plan year (defaults to the current year)")
}

// loadConfigOrDefault loads config, returning defaults on error so the
// wizard can always start.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// resolveBranding layers the branding sources: flags win over the saved
// branding in the settings store, which wins over the config file.
func resolveBranding(cfg config.Config) branding.Branding {
	team := cfg.Appearance.TeamName
	theme := cfg.Appearance.Theme

	if db, err := store.Open(store.DefaultPath()); err == nil {
		var saved savedBranding
		if ok, err := db.Get(store.BrandingKey, &saved); err == nil && ok {
			if saved.Team != "" {
				team = saved.Team
			}
			if saved.Theme != "" {
				theme = saved.Theme
			}
		}
		db.Close()
	}

	if flagTeam != "" {
		team = flagTeam
	}
	if flagTheme != "" {
		theme = flagTheme
	}
	return branding.Resolve(team, theme)
}

func runWizard(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	if flagTheme != "" && !branding.Known(flagTheme) {
		return fmt.Errorf("unknown theme %q, run `planner branding themes` for the list", flagTheme)
	}
	brand := resolveBranding(cfg)

	outputDir := flagOutput
	if outputDir == "" {
		dir, err := cfg.OutputDir()
		if err != nil {
			return err
		}
		outputDir = dir
	}

	year := flagYear
	if year == 0 {
		year = cfg.General.PlanYear
	}

	gate := member.NewGate(cfg.Team.ExtraMemberIDs)
	machine := wizard.New(gate.Allow, member.Normalize)
	pipeline := export.NewPipeline(render.NewPDF(brand), outputDir)

	// Force TrueColor so the brand colors render regardless of terminal
	// detection.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := wizard.NewApp(machine, brand, pipeline, year)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
