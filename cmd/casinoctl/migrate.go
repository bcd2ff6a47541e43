package main

import (
	"fmt"

	"casino-backend/internal/config"
	"casino-backend/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	dsn := func() (string, error) {
		cfg, err := config.Load()
		if err != nil {
			return "", err
		}
		return cfg.Database.DSN(), nil
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dsn()
			if err != nil {
				return err
			}
			if err := database.Migrate(d); err != nil {
				return err
			}
			success.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dsn()
			if err != nil {
				return err
			}
			if err := database.Rollback(d, steps); err != nil {
				return err
			}
			warn.Fprintf(cmd.OutOrStdout(), "reverted %d migration(s)\n", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dsn()
			if err != nil {
				return err
			}
			v, dirty, err := database.Version(d)
			if err != nil {
				return err
			}
			state := success.Sprint("clean")
			if dirty {
				state = danger.Sprint("dirty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (%s)\n", v, state)
			return nil
		},
	}

	migrate.AddCommand(up, down, version)
	return migrate
}
