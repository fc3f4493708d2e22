package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/epiview/epiview/pkg/cli/config"
	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/service/render"
	"github.com/epiview/epiview/pkg/usecase"
)

func cmdExport() *cli.Command {
	var (
		storageCfg   config.Storage
		dashboardCfg config.Dashboard
		generatorCfg config.Generator
		outputDir    string
	)

	flags := joinFlags(
		storageCfg.Flags(),
		dashboardCfg.Flags(),
		generatorCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Directory to write the static dashboard page and chart images",
				Value:       "outputs",
				Sources:     cli.EnvVars("EPIVIEW_OUTPUT"),
				Destination: &outputDir,
			},
		},
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Write a static dashboard (HTML page plus chart PNGs)",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

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

			// Export from the latest dataset, generating one if the
			// store is empty
			d, err := dashboardUC.BuildLatest(ctx)
			if errors.Is(err, model.ErrDatasetNotFound) {
				if _, genErr := datasetUC.Generate(ctx); genErr != nil {
					return genErr
				}
				d, err = dashboardUC.BuildLatest(ctx)
			}
			if err != nil {
				return err
			}

			page, err := render.NewPage()
			if err != nil {
				return goerr.Wrap(err, "failed to prepare page renderer")
			}

			if err := render.Export(ctx, page, d, outputDir); err != nil {
				return err
			}

			logger.Info("Static dashboard exported",
				slog.String("dir", outputDir),
				slog.String("dataset", d.Dataset.String()),
			)
			return nil
		},
	}
}
