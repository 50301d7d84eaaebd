package main

import (
	"github.com/spf13/cobra"

	"github.com/quillpad-dev/quillpad/internal/storage/pg"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		storage, err := pg.New(cfg)
		if err != nil {
			return err
		}
		defer storage.Cleanup()
		return storage.Migrate()
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		storage, err := pg.New(cfg)
		if err != nil {
			return err
		}
		defer storage.Cleanup()
		return storage.MigrateDown()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
