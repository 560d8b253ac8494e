package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"vocab/internal/api"
	"vocab/internal/api/handler/v1handler"
	"vocab/internal/config"
	"vocab/internal/translate"
	"vocab/internal/users"
	"vocab/internal/wordpairs"
	"vocab/pkg/domain"
	"vocab/pkg/logger"
	"vocab/pkg/storage/sqlstore"
	"vocab/pkg/translator/google"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDeps(cfg *config.Config, store *sqlstore.Store) api.Deps {
	ids := domain.RandomIDs{}
	clock := domain.SystemClock{}

	return api.Deps{
		Deps: v1handler.Deps{
			Users:     users.New(store, newHasher(cfg), users.Options{IDs: ids, Clock: clock}),
			WordPairs: wordpairs.New(store, wordpairs.Options{IDs: ids, Clock: clock}),
			Translate: translate.New(google.New(google.Options{
				BaseURL: cfg.Translator.BaseURL,
				Timeout: cfg.Translator.Timeout,
			})),
		},
		DB: store.SQLDB(),
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := openStorage(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, newDeps(cfg, strg))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
