package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elivatehq/planner/internal/branding"
	"github.com/elivatehq/planner/internal/store"
)

// savedBranding is the branding record persisted in the settings store.
type savedBranding struct {
	Team  string `json:"team"`
	Theme string `json:"theme"`
}

var brandingCmd = &cobra.Command{
	Use:   "branding",
	Short: "Show the active team branding",
	RunE:  runBrandingShow,
}

var brandingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save team name and theme for future runs",
	RunE:  runBrandingSet,
}

var brandingResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved branding",
	RunE:  runBrandingReset,
}

var brandingThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	RunE:  runBrandingThemes,
}

func init() {
	brandingCmd.AddCommand(brandingSetCmd, brandingResetCmd, brandingThemesCmd)
	rootCmd.AddCommand(brandingCmd)
}

func openSettings() (*store.Settings, error) {
	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return nil, fmt.Errorf("opening settings store: %w", err)
	}
	return db, nil
}

func runBrandingShow(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	brand := resolveBranding(cfg)

	fmt.Printf("  Team:  %s\n", brand.Team)
	fmt.Printf("  Theme: %s (%s)\n", brand.Theme.Key, brand.Theme.Primary)

	db, err := openSettings()
	if err != nil {
		return err
	}
	defer db.Close()

	var saved savedBranding
	ok, err := db.Get(store.BrandingKey, &saved)
	if err != nil {
		return err
	}
	if ok {
		fmt.Println("  Saved: yes (overrides the config file)")
	} else {
		fmt.Println("  Saved: no")
	}
	return nil
}

func runBrandingSet(_ *cobra.Command, _ []string) error {
	if flagTeam == "" && flagTheme == "" {
		return fmt.Errorf("nothing to save, pass --team and/or --theme")
	}
	if flagTheme != "" && !branding.Known(flagTheme) {
		return fmt.Errorf("unknown theme %q, run `planner branding themes` for the list", flagTheme)
	}

	db, err := openSettings()
	if err != nil {
		return err
	}
	defer db.Close()

	var saved savedBranding
	if _, err := db.Get(store.BrandingKey, &saved); err != nil {
		return err
	}
	if flagTeam != "" {
		saved.Team = flagTeam
	}
	if flagTheme != "" {
		saved.Theme = flagTheme
	}
	if err := db.Set(store.BrandingKey, saved); err != nil {
		return err
	}

	brand := branding.Resolve(saved.Team, saved.Theme)
	fmt.Printf("  Saved: %s / %s\n", brand.Team, brand.Theme.Key)
	return nil
}

func runBrandingReset(_ *cobra.Command, _ []string) error {
	db, err := openSettings()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Delete(store.BrandingKey); err != nil {
		return err
	}
	fmt.Println("  Saved branding cleared.")
	return nil
}

func runBrandingThemes(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	active := resolveBranding(cfg).Theme.Key

	for _, t := range branding.All() {
		marker := " "
		if t.Key == active {
			marker = "*"
		}
		fmt.Printf("  %s %-8s %s  %s\n", marker, t.Key, t.Primary, t.Name)
	}
	return nil
}
