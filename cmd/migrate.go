package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := repository.NewDB(cfg.Database, cfg.IsDev(), logger)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := repository.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("Migration completed", "driver", cfg.Database.Driver)
		cmd.Printf("%s schema is up to date\n", config.AppName)
		return nil
	},
}
