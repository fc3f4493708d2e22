package render_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
	"github.com/epiview/epiview/pkg/service/render"
)

func TestPNG(t *testing.T) {
	t.Run("renders a full series", func(t *testing.T) {
		d := testDashboard(t, 18)

		var buf bytes.Buffer
		gt.NoError(t, render.PNG(&buf, &d.Charts[0]))
		decodePNG(t, buf.Bytes())
	})

	t.Run("renders a multi-series chart with legend", func(t *testing.T) {
		desc, err := model.NewChartDescriptor(
			types.ChartOverview, "Cases vs Deaths Correlation", "Count",
			[]string{"Jan 01", "Jan 08"},
			model.ChartSeries{Name: "Cases", Color: model.DefaultCasesColor, Values: []float64{45000, 52000}},
			model.ChartSeries{Name: "Deaths", Color: model.DefaultDeathsColor, Values: []float64{820, 950}},
		)
		gt.NoError(t, err).Required()

		var buf bytes.Buffer
		gt.NoError(t, render.PNG(&buf, desc))
		decodePNG(t, buf.Bytes())
	})

	t.Run("single point is padded", func(t *testing.T) {
		desc, err := model.NewChartDescriptor(
			types.ChartCases, "Weekly Cases", "Cases", []string{"Jan 01"},
			model.ChartSeries{Name: "Cases", Color: model.DefaultCasesColor, Values: []float64{45000}},
		)
		gt.NoError(t, err).Required()

		var buf bytes.Buffer
		gt.NoError(t, render.PNG(&buf, desc))
		decodePNG(t, buf.Bytes())
	})

	t.Run("empty chart renders a blank panel", func(t *testing.T) {
		desc, err := model.NewChartDescriptor(
			types.ChartCases, "Weekly Cases", "Cases", nil,
			model.ChartSeries{Name: "Cases", Color: model.DefaultCasesColor, Values: nil},
		)
		gt.NoError(t, err).Required()

		var buf bytes.Buffer
		gt.NoError(t, render.PNG(&buf, desc))
		decodePNG(t, buf.Bytes())
	})

	t.Run("nil descriptor is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		gt.Error(t, render.PNG(&buf, nil))
	})
}
