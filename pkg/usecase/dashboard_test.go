package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
	"github.com/epiview/epiview/pkg/repository"
	"github.com/epiview/epiview/pkg/usecase"
)

func storedDataset(t *testing.T, weeks int) (*model.Dataset, *usecase.DashboardUseCase) {
	t.Helper()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.WeekPoint, weeks)
	for i := range points {
		date := start.AddDate(0, 0, 7*i)
		points[i] = model.WeekPoint{
			Date:   date,
			Label:  date.Format("Jan 02"),
			Cases:  40000 - i*1000,
			Deaths: 900 - i*20,
		}
	}

	ds := model.NewDataset(42, points)
	repo := repository.NewMemory()
	gt.NoError(t, repo.SaveDataset(context.Background(), ds)).Required()

	return ds, usecase.NewDashboard(repo, nil)
}

func TestLineCharts(t *testing.T) {
	cfg := model.DefaultDashboardConfig()

	t.Run("produces exactly two descriptors in label order", func(t *testing.T) {
		labels := make([]string, 18)
		cases := make([]float64, 18)
		deaths := make([]float64, 18)
		for i := range labels {
			labels[i] = fmt.Sprintf("W%02d", i+1)
			cases[i] = float64(1000 * (i + 1))
			deaths[i] = float64(10 * (i + 1))
		}

		charts, err := usecase.LineCharts(labels, cases, deaths, cfg)
		gt.NoError(t, err)
		gt.Equal(t, len(charts), 2)

		gt.Equal(t, charts[0].ID, types.ChartCases)
		gt.Equal(t, charts[0].PointCount(), 18)
		gt.Equal(t, charts[0].Labels, labels)
		gt.Equal(t, charts[0].Series[0].Values, cases)

		gt.Equal(t, charts[1].ID, types.ChartDeaths)
		gt.Equal(t, charts[1].PointCount(), 18)
		gt.Equal(t, charts[1].Series[0].Values, deaths)
	})

	t.Run("values pass through unchanged", func(t *testing.T) {
		labels := []string{"Jan 1", "Jan 8"}
		cases := []float64{45000, 52000}
		deaths := []float64{820, 950}

		charts, err := usecase.LineCharts(labels, cases, deaths, cfg)
		gt.NoError(t, err)
		gt.Equal(t, charts[0].Series[0].Values, []float64{45000, 52000})
		gt.Equal(t, charts[1].Series[0].Values, []float64{820, 950})
		gt.Equal(t, charts[0].YMin, float64(0))
		gt.Equal(t, charts[1].YMin, float64(0))
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := usecase.LineCharts([]string{"Jan 1", "Jan 8"}, []float64{1}, []float64{1, 2}, cfg)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSeriesMismatch))

		_, err = usecase.LineCharts([]string{"Jan 1"}, []float64{1}, []float64{1, 2}, cfg)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSeriesMismatch))
	})

	t.Run("zero-length matching input renders empty charts", func(t *testing.T) {
		charts, err := usecase.LineCharts(nil, nil, nil, cfg)
		gt.NoError(t, err)
		gt.Equal(t, len(charts), 2)
		gt.Equal(t, charts[0].PointCount(), 0)
		gt.Equal(t, charts[1].PointCount(), 0)
	})
}

func TestDashboardBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("builds tiles and charts from dataset", func(t *testing.T) {
		ds, uc := storedDataset(t, 18)

		d, err := uc.BuildLatest(ctx)
		gt.NoError(t, err)

		gt.Equal(t, d.Dataset, ds.ID)
		gt.Equal(t, d.Title, model.DefaultTitle)
		gt.Equal(t, len(d.Tiles), 4)
		gt.Equal(t, len(d.Charts), 3)

		// single-series charts first, overlay last
		gt.Equal(t, d.Charts[0].ID, types.ChartCases)
		gt.Equal(t, d.Charts[1].ID, types.ChartDeaths)
		gt.Equal(t, d.Charts[2].ID, types.ChartOverview)
		gt.Equal(t, len(d.Charts[2].Series), 2)
	})

	t.Run("building twice is idempotent", func(t *testing.T) {
		_, uc := storedDataset(t, 18)

		first, err := uc.BuildLatest(ctx)
		gt.NoError(t, err)
		second, err := uc.BuildLatest(ctx)
		gt.NoError(t, err)

		gt.Equal(t, second, first)
	})

	t.Run("build by ID", func(t *testing.T) {
		ds, uc := storedDataset(t, 4)

		d, err := uc.Build(ctx, ds.ID)
		gt.NoError(t, err)
		gt.Equal(t, d.Dataset, ds.ID)
	})

	t.Run("unknown dataset", func(t *testing.T) {
		_, uc := storedDataset(t, 4)

		_, err := uc.Build(ctx, types.NewDatasetID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDatasetNotFound))
	})

	t.Run("empty dataset builds an empty dashboard", func(t *testing.T) {
		_, uc := storedDataset(t, 0)

		d, err := uc.BuildLatest(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(d.Tiles), 4)
		gt.Equal(t, len(d.Charts), 3)
		gt.Equal(t, d.Charts[0].PointCount(), 0)
	})
}
