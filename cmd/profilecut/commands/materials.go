package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ProfileCut/internal/project"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Manage the material catalogue",
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List materials and their standard stock lengths",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		for _, m := range cat.Materials {
			fmt.Printf("%s  %s (%s)\n", m.ID, m.Name, m.Category)
			for _, sl := range m.StandardLengths {
				fmt.Printf("    %g%s (%.0fin)\n", sl.Length, sl.Unit, sl.LengthIn)
			}
		}
		return nil
	},
}

var materialsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the catalogue to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		if err := project.ExportCatalogue(args[0], cat); err != nil {
			return fmt.Errorf("failed to export catalogue: %w", err)
		}
		fmt.Printf("Catalogue exported to %s\n", args[0])
		return nil
	},
}

var materialsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge materials from a JSON file into the catalogue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, path, err := project.LoadOrCreateCatalogue(companyID)
		if err != nil {
			return fmt.Errorf("failed to load material catalogue: %w", err)
		}
		before := len(cat.Materials)
		merged, err := project.ImportCatalogue(args[0], cat)
		if err != nil {
			return fmt.Errorf("failed to import catalogue: %w", err)
		}
		if err := project.SaveCatalogue(path, merged); err != nil {
			return fmt.Errorf("failed to save catalogue: %w", err)
		}
		fmt.Printf("Imported %d new materials\n", len(merged.Materials)-before)
		return nil
	},
}

func init() {
	materialsCmd.AddCommand(materialsListCmd)
	materialsCmd.AddCommand(materialsExportCmd)
	materialsCmd.AddCommand(materialsImportCmd)
}
