package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ProfileCut/internal/engine"
	"github.com/piwi3910/ProfileCut/internal/model"
	"github.com/piwi3910/ProfileCut/internal/project"
)

var (
	cfgPath   string
	companyID string
	config    model.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "profilecut",
	Short: "1D cut list optimizer for aluminium profiles",
	Long: `ProfileCut - profile consumption calculator for fabrication shops.

Packs required cut lengths onto standard purchasable stock lengths,
accounting for saw kerf, and reports pipes to buy, usable offcuts
and scrap.`,
	SilenceUsage: true,
}

// Execute runs the root command. Errors have already been printed by
// cobra, so only the exit code is handled here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.profilecut/config.json)")
	rootCmd.PersistentFlags().StringVar(&companyID, "company", "", "company the materials belong to")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = project.DefaultConfigPath()
		}
		var err error
		config, err = project.LoadAppConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if companyID == "" {
			companyID = config.CompanyID
		}
		return nil
	}

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(backupCmd)
}

// stderrDiagnostics routes engine warnings to stderr so they do not mix
// with the plan written to stdout.
var stderrDiagnostics = engine.DiagnosticsFunc(func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
})

// loadCatalogue loads the material catalogue from the default location,
// creating it with the built-in defaults on first run.
func loadCatalogue() (model.Catalogue, error) {
	cat, _, err := project.LoadOrCreateCatalogue(companyID)
	if err != nil {
		return model.Catalogue{}, fmt.Errorf("failed to load material catalogue: %w", err)
	}
	return cat, nil
}
