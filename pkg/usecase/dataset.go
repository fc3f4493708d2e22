package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
	datasetSvc "github.com/epiview/epiview/pkg/service/dataset"
)

// File names kept compatible with the reference data layout
const (
	datasetCSVName = "dataframe.csv"
	summaryCSVName = "dataframe2.csv"
)

// DatasetUseCase manages dataset generation, import, and export
type DatasetUseCase struct {
	repo interfaces.Repository
	gen  *datasetSvc.Generator
	cfg  *model.DashboardConfig
}

// NewDataset creates a new DatasetUseCase instance
func NewDataset(repo interfaces.Repository, gen *datasetSvc.Generator, cfg *model.DashboardConfig) *DatasetUseCase {
	if gen == nil {
		gen = datasetSvc.NewGenerator()
	}
	if cfg == nil {
		cfg = model.DefaultDashboardConfig()
	}
	return &DatasetUseCase{
		repo: repo,
		gen:  gen,
		cfg:  cfg,
	}
}

// Generate creates a new dataset and persists it
func (uc *DatasetUseCase) Generate(ctx context.Context) (*model.Dataset, error) {
	ds, err := uc.gen.Generate()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate dataset")
	}

	if err := uc.repo.SaveDataset(ctx, ds); err != nil {
		return nil, goerr.Wrap(err, "failed to save generated dataset", goerr.V("id", ds.ID))
	}

	ctxlog.From(ctx).Info("Generated dataset",
		"id", ds.ID,
		"weeks", len(ds.Points),
		"seed", ds.Seed,
	)
	return ds, nil
}

// Import loads a dataset from a CSV file and persists it
func (uc *DatasetUseCase) Import(ctx context.Context, path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open CSV file", goerr.V("path", path))
	}
	defer f.Close()

	points, err := datasetSvc.ReadCSV(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse CSV file", goerr.V("path", path))
	}

	ds := model.NewDataset(0, points)
	if err := ds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "imported dataset is invalid", goerr.V("path", path))
	}

	if err := uc.repo.SaveDataset(ctx, ds); err != nil {
		return nil, goerr.Wrap(err, "failed to save imported dataset", goerr.V("id", ds.ID))
	}

	ctxlog.From(ctx).Info("Imported dataset", "id", ds.ID, "weeks", len(ds.Points), "path", path)
	return ds, nil
}

// Export writes a dataset and its summary as CSV files into dir
func (uc *DatasetUseCase) Export(ctx context.Context, id types.DatasetID, dir string) error {
	ds, err := uc.repo.GetDataset(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to load dataset", goerr.V("id", id))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create data directory", goerr.V("dir", dir))
	}

	dataPath := filepath.Join(dir, datasetCSVName)
	df, err := os.Create(dataPath)
	if err != nil {
		return goerr.Wrap(err, "failed to create dataset CSV", goerr.V("path", dataPath))
	}
	defer df.Close()
	if err := datasetSvc.WriteCSV(df, ds); err != nil {
		return err
	}

	summaryPath := filepath.Join(dir, summaryCSVName)
	sf, err := os.Create(summaryPath)
	if err != nil {
		return goerr.Wrap(err, "failed to create summary CSV", goerr.V("path", summaryPath))
	}
	defer sf.Close()
	if err := datasetSvc.WriteSummaryCSV(sf, datasetSvc.Summarize(ds, uc.cfg.ReportingCountries)); err != nil {
		return err
	}

	ctxlog.From(ctx).Info("Exported dataset CSV files", "id", id, "dir", dir)
	return nil
}

var _ interfaces.Dataset = (*DatasetUseCase)(nil) // Compile-time interface check
