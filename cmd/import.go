package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vocab_trainer/internal/app"
	"vocab_trainer/internal/importer"
	"vocab_trainer/internal/repository"
)

var importOpts struct {
	file     string
	email    string
	sheet    string
	column   string
	startRow int
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import words for a user from an .xlsx or .csv file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importOpts.file == "" || importOpts.email == "" {
			return errors.New("--file and --email are required")
		}

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		terms, err := importer.ReadTerms(importOpts.file, importer.Options{
			Sheet:    importOpts.sheet,
			Column:   importOpts.column,
			StartRow: importOpts.startRow,
		})
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := repository.Migrate(a.DB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		user, err := repository.NewGormUserRepository().FindByEmail(ctx, a.DB, strings.ToLower(strings.TrimSpace(importOpts.email)))
		if err != nil {
			return fmt.Errorf("find user %s: %w", importOpts.email, err)
		}

		created, err := a.Words.ImportWords(ctx, user.UserID, terms)
		if err != nil {
			return err
		}
		cmd.Printf("Imported %d of %d words for %s\n", created, len(terms), user.Email)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importOpts.file, "file", "f", "", "path to the .xlsx or .csv file")
	importCmd.Flags().StringVar(&importOpts.email, "email", "", "email of the user who receives the words")
	importCmd.Flags().StringVar(&importOpts.sheet, "sheet", "", "sheet name (default: first sheet)")
	importCmd.Flags().StringVar(&importOpts.column, "column", "A", "column holding the terms")
	importCmd.Flags().IntVar(&importOpts.startRow, "start-row", 2, "first data row, 1-based")
}
