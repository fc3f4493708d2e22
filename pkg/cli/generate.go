package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/epiview/epiview/pkg/cli/config"
	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/usecase"
)

func cmdGenerate() *cli.Command {
	var (
		storageCfg   config.Storage
		dashboardCfg config.Dashboard
		generatorCfg config.Generator
		dataDir      string
		importPath   string
	)

	flags := joinFlags(
		storageCfg.Flags(),
		dashboardCfg.Flags(),
		generatorCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "Directory to also write dataset and summary CSV files (skipped when empty)",
				Sources:     cli.EnvVars("EPIVIEW_DATA_DIR"),
				Destination: &dataDir,
			},
			&cli.StringFlag{
				Name:        "import",
				Usage:       "Import a dataset from an existing CSV file instead of generating one",
				Sources:     cli.EnvVars("EPIVIEW_IMPORT"),
				Destination: &importPath,
			},
		},
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate (or import) a weekly dataset and persist it",
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

			var ds *model.Dataset
			if importPath != "" {
				ds, err = datasetUC.Import(ctx, importPath)
			} else {
				ds, err = datasetUC.Generate(ctx)
			}
			if err != nil {
				return err
			}

			if dataDir != "" {
				if err := datasetUC.Export(ctx, ds.ID, dataDir); err != nil {
					return err
				}
			}

			logger.Info("Dataset ready",
				slog.String("id", ds.ID.String()),
				slog.Int("weeks", len(ds.Points)),
			)
			return nil
		},
	}
}
