package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
	"github.com/epiview/epiview/pkg/repository"
)

func sampleDataset(createdAt time.Time) *model.Dataset {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := model.NewDataset(42, []model.WeekPoint{
		{Date: start, Label: "Jan 01", Cases: 45000, Deaths: 820},
		{Date: start.AddDate(0, 0, 7), Label: "Jan 08", Cases: 52000, Deaths: 950},
	})
	ds.CreatedAt = createdAt
	return ds
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("SaveDataset", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		ds := sampleDataset(time.Now().UTC())

		gt.NoError(t, repo.SaveDataset(ctx, ds))

		retrieved, err := repo.GetDataset(ctx, ds.ID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.ID, ds.ID)
		gt.Equal(t, retrieved.Seed, ds.Seed)
		gt.Equal(t, len(retrieved.Points), len(ds.Points))
		for i := range ds.Points {
			gt.Equal(t, retrieved.Points[i].Label, ds.Points[i].Label)
			gt.Equal(t, retrieved.Points[i].Cases, ds.Points[i].Cases)
			gt.Equal(t, retrieved.Points[i].Deaths, ds.Points[i].Deaths)
			gt.True(t, ds.Points[i].Date.Equal(retrieved.Points[i].Date))
		}
	})

	t.Run("SaveDataset_NilAndEmptyID", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.SaveDataset(ctx, nil))

		ds := sampleDataset(time.Now().UTC())
		ds.ID = ""
		gt.Error(t, repo.SaveDataset(ctx, ds))
	})

	t.Run("GetDataset_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		_, err := repo.GetDataset(ctx, types.NewDatasetID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDatasetNotFound))
	})

	t.Run("GetLatestDataset", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		base := time.Now().UTC()

		older := sampleDataset(base.Add(-time.Hour))
		newer := sampleDataset(base)
		gt.NoError(t, repo.SaveDataset(ctx, older))
		gt.NoError(t, repo.SaveDataset(ctx, newer))

		latest, err := repo.GetLatestDataset(ctx)
		gt.NoError(t, err)
		gt.Equal(t, latest.ID, newer.ID)
	})

	t.Run("GetLatestDataset_SubsecondOrder", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()

		// a whole-second timestamp followed by a fractional one in the
		// same second; the fractional one is newer
		base := time.Now().UTC().Truncate(time.Second)
		older := sampleDataset(base)
		newer := sampleDataset(base.Add(500 * time.Millisecond))
		gt.NoError(t, repo.SaveDataset(ctx, older))
		gt.NoError(t, repo.SaveDataset(ctx, newer))

		latest, err := repo.GetLatestDataset(ctx)
		gt.NoError(t, err)
		gt.Equal(t, latest.ID, newer.ID)

		ids, err := repo.ListDatasets(ctx)
		gt.NoError(t, err)
		gt.Equal(t, ids, []types.DatasetID{newer.ID, older.ID})
	})

	t.Run("GetLatestDataset_Empty", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		_, err := repo.GetLatestDataset(context.Background())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDatasetNotFound))
	})

	t.Run("ListDatasets", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		base := time.Now().UTC()

		first := sampleDataset(base.Add(-2 * time.Hour))
		second := sampleDataset(base.Add(-time.Hour))
		third := sampleDataset(base)
		for _, ds := range []*model.Dataset{first, second, third} {
			gt.NoError(t, repo.SaveDataset(ctx, ds))
		}

		ids, err := repo.ListDatasets(ctx)
		gt.NoError(t, err)
		gt.Equal(t, ids, []types.DatasetID{third.ID, second.ID, first.ID})
	})

	t.Run("SavedDatasetIsIsolated", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		ds := sampleDataset(time.Now().UTC())
		gt.NoError(t, repo.SaveDataset(ctx, ds))

		// Mutate the original after save; the stored copy must not change
		ds.Points[0].Cases = 1

		retrieved, err := repo.GetDataset(ctx, ds.ID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.Points[0].Cases, 45000)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestSQLiteRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		path := filepath.Join(t.TempDir(), "epiview.db")
		repo, err := repository.NewSQLite(context.Background(), path)
		gt.NoError(t, err).Required()
		return repo
	})
}
