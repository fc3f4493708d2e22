package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
	datasetSvc "github.com/epiview/epiview/pkg/service/dataset"
)

// DashboardUseCase builds dashboard descriptors from stored datasets.
// Building is pure given a dataset and configuration: the same input
// always yields an identical dashboard.
type DashboardUseCase struct {
	repo interfaces.Repository
	cfg  *model.DashboardConfig
}

// NewDashboard creates a new DashboardUseCase instance
func NewDashboard(repo interfaces.Repository, cfg *model.DashboardConfig) *DashboardUseCase {
	if cfg == nil {
		cfg = model.DefaultDashboardConfig()
	}
	return &DashboardUseCase{
		repo: repo,
		cfg:  cfg,
	}
}

// BuildLatest builds the dashboard from the most recent dataset
func (uc *DashboardUseCase) BuildLatest(ctx context.Context) (*model.Dashboard, error) {
	ds, err := uc.repo.GetLatestDataset(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load latest dataset")
	}
	return uc.build(ds)
}

// Build builds the dashboard from a specific dataset
func (uc *DashboardUseCase) Build(ctx context.Context, id types.DatasetID) (*model.Dashboard, error) {
	ds, err := uc.repo.GetDataset(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset", goerr.V("id", id))
	}
	return uc.build(ds)
}

func (uc *DashboardUseCase) build(ds *model.Dataset) (*model.Dashboard, error) {
	summary := datasetSvc.Summarize(ds, uc.cfg.ReportingCountries)

	charts, err := LineCharts(ds.Labels(), ds.CaseValues(), ds.DeathValues(), uc.cfg)
	if err != nil {
		return nil, err
	}

	overlay, err := OverlayChart(ds.Labels(), ds.CaseValues(), ds.DeathValues(), uc.cfg)
	if err != nil {
		return nil, err
	}
	charts = append(charts, *overlay)

	return &model.Dashboard{
		Title:    uc.cfg.Title,
		Subtitle: uc.cfg.Subtitle,
		Insights: uc.cfg.Insights,
		Dataset:  ds.ID,
		Tiles:    summary.Tiles(),
		Charts:   charts,
	}, nil
}

// LineCharts builds the two single-series chart descriptors (cases and
// deaths). Labels and both series must be positionally aligned; a
// length mismatch is rejected before any descriptor is produced.
// Zero-length matching input yields two empty charts.
func LineCharts(labels []string, cases, deaths []float64, cfg *model.DashboardConfig) ([]model.ChartDescriptor, error) {
	casesChart, err := model.NewChartDescriptor(
		types.ChartCases, "Weekly COVID-19 Cases", "Number of Cases", labels,
		model.ChartSeries{Name: "Weekly Cases", Color: cfg.CasesColor, Values: cases},
	)
	if err != nil {
		return nil, err
	}

	deathsChart, err := model.NewChartDescriptor(
		types.ChartDeaths, "Weekly COVID-19 Deaths", "Number of Deaths", labels,
		model.ChartSeries{Name: "Weekly Deaths", Color: cfg.DeathsColor, Values: deaths},
	)
	if err != nil {
		return nil, err
	}

	return []model.ChartDescriptor{*casesChart, *deathsChart}, nil
}

// OverlayChart builds the combined cases/deaths correlation chart
func OverlayChart(labels []string, cases, deaths []float64, cfg *model.DashboardConfig) (*model.ChartDescriptor, error) {
	return model.NewChartDescriptor(
		types.ChartOverview, "Cases vs Deaths Correlation", "Count", labels,
		model.ChartSeries{Name: "Cases", Color: cfg.CasesColor, Values: cases},
		model.ChartSeries{Name: "Deaths", Color: cfg.DeathsColor, Values: deaths},
	)
}

var _ interfaces.Dashboard = (*DashboardUseCase)(nil) // Compile-time interface check
