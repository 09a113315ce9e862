package main

import (
	"pulse-network-organizer/internal/repository/postgres"

	"github.com/spf13/cobra"
)

// migrateCmd applies goose migrations without starting the server
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return postgres.New(cmd.Context(), log, cfg).Migrate(cmd.Context())
	},
}
