package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/epiview/epiview/pkg/cli/config"
	controller "github.com/epiview/epiview/pkg/controller/http"
	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/usecase"
	"github.com/epiview/epiview/pkg/utils/apperr"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		storageCfg   config.Storage
		dashboardCfg config.Dashboard
		generatorCfg config.Generator
	)

	flags := joinFlags(
		serverCfg.Flags(),
		storageCfg.Flags(),
		dashboardCfg.Flags(),
		generatorCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting epiview server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("storage", storageCfg),
				slog.Any("dashboard", dashboardCfg),
				slog.Any("generator", generatorCfg),
			)

			repo, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			appearance, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			gen, err := generatorCfg.Configure()
			if err != nil {
				return err
			}

			var datasetUC interfaces.Dataset = usecase.NewDataset(repo, gen, appearance)
			dashboardUC := usecase.NewDashboard(repo, appearance)

			// Seed an initial dataset when the store is empty so the
			// dashboard has something to show
			if _, err := repo.GetLatestDataset(ctx); err != nil {
				if !errors.Is(err, model.ErrDatasetNotFound) {
					return goerr.Wrap(err, "failed to check for existing dataset")
				}
				if _, err := datasetUC.Generate(ctx); err != nil {
					return goerr.Wrap(err, "failed to generate initial dataset")
				}
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, dashboardUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					apperr.Handle(ctx, err)
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
