// Package main provides the CLI entrypoint for the vocab service.
// It wires subcommands (serve, migrate, password), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"vocab/internal/config"
	"vocab/pkg/logger"
	"vocab/pkg/password"
	"vocab/pkg/storage/postgres"
	"vocab/pkg/storage/sqlite"
	"vocab/pkg/storage/sqlstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openStorage creates the storage selected by cfg.Database.Driver and returns
// it along with a cleanup function that closes it.
func openStorage(ctx context.Context, cfg *config.Config) (*sqlstore.Store, func()) {
	var (
		store *sqlstore.Store
		err   error
	)

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		store, err = sqlite.New(ctx, cfg.Database.SQLitePath)
	default:
		store, err = postgres.New(ctx, postgres.Options{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MaxIdleConnections: cfg.Database.MaxIdleConnections,
			SslMode:            cfg.Database.SslMode,
		})
	}
	if err != nil {
		logger.Fatal(ctx, "could not open storage", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}

	return store, func() {
		logger.Info(ctx, "closing storage...")
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}
}

// newHasher builds the password hasher from the configured cost parameters.
func newHasher(cfg *config.Config) *password.Argon2id {
	return password.New(password.Params{
		Memory:      cfg.Password.Memory,
		Iterations:  cfg.Password.Iterations,
		Parallelism: cfg.Password.Parallelism,
		SaltLength:  cfg.Password.SaltLength,
		KeyLength:   cfg.Password.KeyLength,
	})
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "vocab",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	configPath := flags.String("c", "config.yml", "The config file path")
	flags.SetOutput(io.Discard)
	_ = flags.Parse(os.Args[1:])

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		passwordCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
