package main

import (
	"context"

	"vocab/internal/config"
	"vocab/pkg/logger"
	"vocab/pkg/storage/postgres"
	"vocab/pkg/storage/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := openStorage(ctx, cfg)
			defer closeStrg()

			var err error
			switch cfg.Database.Driver {
			case config.DriverSQLite:
				err = sqlite.Migrate(ctx, strg)
			default:
				err = postgres.Migrate(ctx, strg)
			}
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
			}

			logger.Info(ctx, "database is up to date", zap.String("driver", cfg.Database.Driver))
		},
	}

	return cmd
}
