package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/epiview/epiview/pkg/domain/model"
)

const (
	chartWidth  = 1100
	chartHeight = 360
)

var gridColor = drawing.ColorFromHex("ecf0f1")

// PNG renders a chart descriptor as a PNG image. An empty descriptor
// produces a blank panel rather than an error.
func PNG(w io.Writer, desc *model.ChartDescriptor) error {
	if desc == nil {
		return goerr.New("chart descriptor is nil")
	}

	if desc.PointCount() == 0 {
		return blank(w, chartWidth, chartHeight)
	}

	var maxY float64
	series := make([]chart.Series, 0, len(desc.Series))
	for _, s := range desc.Series {
		xs, ys := alignedXY(s.Values)
		for _, v := range s.Values {
			if v > maxY {
				maxY = v
			}
		}

		stroke := drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#"))
		style := chart.Style{
			StrokeColor: stroke,
			StrokeWidth: 3.0,
			DotColor:    stroke,
			DotWidth:    4.0,
		}
		if desc.Fill {
			style.FillColor = stroke.WithAlpha(48)
		}

		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}
	if maxY <= 0 {
		maxY = 1
	}

	graph := chart.Chart{
		Title:  desc.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Ticks:          labelTicks(desc.Labels),
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1.0},
		},
		YAxis: chart.YAxis{
			Name: desc.AxisTitle,
			// always zero based
			Range:          &chart.ContinuousRange{Min: desc.YMin, Max: maxY * 1.1},
			ValueFormatter: commaFormatter,
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1.0},
		},
		Series: series,
	}

	if desc.ShowLegend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return goerr.Wrap(err, "failed to render chart PNG", goerr.V("chart", desc.ID))
	}
	return nil
}

// alignedXY returns index-based X values. A single point is padded to
// two because the chart library needs at least two X values.
func alignedXY(values []float64) ([]float64, []float64) {
	if len(values) == 1 {
		return []float64{0, 1}, []float64{values[0], values[0]}
	}
	xs := make([]float64, len(values))
	for i := range values {
		xs[i] = float64(i)
	}
	return xs, values
}

func labelTicks(labels []string) []chart.Tick {
	if len(labels) == 1 {
		return []chart.Tick{
			{Value: 0, Label: labels[0]},
			{Value: 1, Label: ""},
		}
	}
	ticks := make([]chart.Tick, len(labels))
	for i, label := range labels {
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}
	return ticks
}

func commaFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return humanize.Comma(int64(f))
	}
	return ""
}

// blank writes an empty white panel for zero-length series
func blank(w io.Writer, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if err := png.Encode(w, img); err != nil {
		return goerr.Wrap(err, "failed to encode blank chart")
	}
	return nil
}
