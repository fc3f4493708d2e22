package render_test

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
)

func testDashboard(t *testing.T, weeks int) *model.Dashboard {
	t.Helper()

	labels := make([]string, weeks)
	cases := make([]float64, weeks)
	deaths := make([]float64, weeks)
	for i := range labels {
		labels[i] = fmt.Sprintf("Week %d", i+1)
		cases[i] = float64(45000 - i*1500)
		deaths[i] = float64(900 - i*30)
	}

	casesChart, err := model.NewChartDescriptor(
		types.ChartCases, "Weekly COVID-19 Cases", "Number of Cases", labels,
		model.ChartSeries{Name: "Weekly Cases", Color: model.DefaultCasesColor, Values: cases},
	)
	gt.NoError(t, err).Required()

	deathsChart, err := model.NewChartDescriptor(
		types.ChartDeaths, "Weekly COVID-19 Deaths", "Number of Deaths", labels,
		model.ChartSeries{Name: "Weekly Deaths", Color: model.DefaultDeathsColor, Values: deaths},
	)
	gt.NoError(t, err).Required()

	return &model.Dashboard{
		Title:    model.DefaultTitle,
		Subtitle: model.DefaultSubtitle,
		Insights: model.DefaultInsights,
		Dataset:  types.NewDatasetID(),
		Tiles: []model.StatTile{
			{Label: "New Cases (28 days)", Value: "97,000", Category: types.StatInfo},
			{Label: "New Deaths (28 days)", Value: "1,770", Category: types.StatDanger},
			{Label: "Case Fatality Rate", Value: "1.8%", Category: types.StatWarning},
			{Label: "Reporting Countries", Value: "89", Category: types.StatNeutral},
		},
		Charts: []model.ChartDescriptor{*casesChart, *deathsChart},
	}
}

func decodePNG(t *testing.T, data []byte) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	gt.NoError(t, err).Required()
	gt.True(t, img.Bounds().Dx() > 0)
}
