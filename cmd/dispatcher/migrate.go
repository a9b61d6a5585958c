package main

import (
	"fmt"

	"webhook-dispatcher/config"
	pgStorage "webhook-dispatcher/internal/adapter/storage/postgres"
	"webhook-dispatcher/migrations"
	"webhook-dispatcher/pkg/logger"

	"github.com/spf13/cobra"
)

var cmdMigrate = &cobra.Command{
	Use:   "migrate",
	Short: "apply the embedded postgres schema",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := config.Load(rootOpts.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

		pool, err := pgStorage.NewPool(c.Context(), cfg.Database, log)
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pool.Close()

		return pgStorage.Migrate(c.Context(), pool, migrations.FS, log)
	},
}

func init() {
	cmdDispatcher.AddCommand(cmdMigrate)
}
