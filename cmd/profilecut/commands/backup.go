package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ProfileCut/internal/project"
)

var backupKeep int

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import all application data",
}

var backupSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a timestamped backup to ~/.profilecut/backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		dir, err := project.DefaultBackupsDir()
		if err != nil {
			return err
		}
		path, err := project.WriteTimestampedBackup(dir, config, cat, backupKeep)
		if err != nil {
			return err
		}
		fmt.Printf("Snapshot written to %s\n", path)
		return nil
	},
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write config and catalogue to a single backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], config, cat); err != nil {
			return err
		}
		fmt.Printf("Backup written to %s\n", args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore config and catalogue from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}

		// Snapshot the current state before overwriting it
		if cat, catErr := loadCatalogue(); catErr == nil {
			if dir, dirErr := project.DefaultBackupsDir(); dirErr == nil {
				if _, snapErr := project.WriteTimestampedBackup(dir, config, cat, backupKeep); snapErr != nil {
					fmt.Printf("warning: could not snapshot current state: %v\n", snapErr)
				}
			}
		}

		cfgTarget := cfgPath
		if cfgTarget == "" {
			cfgTarget = project.DefaultConfigPath()
		}
		if err := project.SaveAppConfig(cfgTarget, backup.Config); err != nil {
			return fmt.Errorf("failed to restore config: %w", err)
		}

		catPath, err := project.DefaultCataloguePath()
		if err != nil {
			return err
		}
		if err := project.SaveCatalogue(catPath, backup.Catalogue); err != nil {
			return fmt.Errorf("failed to restore catalogue: %w", err)
		}

		fmt.Printf("Backup from %s restored\n", backup.CreatedAt)
		return nil
	},
}

func init() {
	backupCmd.PersistentFlags().IntVar(&backupKeep, "keep", 10, "number of timestamped backups to keep")
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
	backupCmd.AddCommand(backupSnapshotCmd)
}
