package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/epiview/epiview/pkg/domain/model"
)

func testPoints() []model.WeekPoint {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.WeekPoint{
		{Date: start, Label: "Jan 01", Cases: 45000, Deaths: 820},
		{Date: start.AddDate(0, 0, 7), Label: "Jan 08", Cases: 52000, Deaths: 950},
	}
}

func TestDatasetValidate(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		ds := model.NewDataset(42, testPoints())
		gt.NoError(t, ds.Validate())
	})

	t.Run("empty dataset is valid", func(t *testing.T) {
		ds := model.NewDataset(42, nil)
		gt.NoError(t, ds.Validate())
	})

	t.Run("error when ID is empty", func(t *testing.T) {
		ds := model.NewDataset(42, testPoints())
		ds.ID = ""
		gt.Error(t, ds.Validate())
	})

	t.Run("error on negative cases", func(t *testing.T) {
		points := testPoints()
		points[0].Cases = -1
		ds := model.NewDataset(42, points)
		gt.Error(t, ds.Validate())
	})

	t.Run("error on negative deaths", func(t *testing.T) {
		points := testPoints()
		points[1].Deaths = -10
		ds := model.NewDataset(42, points)
		gt.Error(t, ds.Validate())
	})

	t.Run("error on empty label", func(t *testing.T) {
		points := testPoints()
		points[0].Label = ""
		ds := model.NewDataset(42, points)
		gt.Error(t, ds.Validate())
	})
}

func TestDatasetAccessors(t *testing.T) {
	ds := model.NewDataset(42, testPoints())

	gt.Equal(t, ds.Labels(), []string{"Jan 01", "Jan 08"})
	gt.Equal(t, ds.CaseValues(), []float64{45000, 52000})
	gt.Equal(t, ds.DeathValues(), []float64{820, 950})
}

func TestDatasetClone(t *testing.T) {
	ds := model.NewDataset(42, testPoints())
	clone := ds.Clone()

	gt.Equal(t, clone.ID, ds.ID)
	gt.Equal(t, clone.Points, ds.Points)

	// Mutating the clone must not touch the original
	clone.Points[0].Cases = 1
	gt.Equal(t, ds.Points[0].Cases, 45000)
}
