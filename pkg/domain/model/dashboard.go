package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/pkg/domain/types"
)

// ChartSeries is one plotted line within a chart
type ChartSeries struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// ChartDescriptor is the full configuration of one line chart panel.
// Values are passed through for display; no computation happens here.
// YMin is always zero so charts share a zero-based axis.
type ChartDescriptor struct {
	ID         types.ChartID `json:"id"`
	Title      string        `json:"title"`
	AxisTitle  string        `json:"axis_title"`
	Labels     []string      `json:"labels"`
	Series     []ChartSeries `json:"series"`
	YMin       float64       `json:"y_min"`
	Gridlines  bool          `json:"gridlines"`
	ShowLegend bool          `json:"show_legend"`
	Fill       bool          `json:"fill"`
}

// NewChartDescriptor builds a chart descriptor and validates that every
// series is positionally aligned with the labels. A mismatch is a
// configuration error, not a silent truncation.
func NewChartDescriptor(id types.ChartID, title, axisTitle string, labels []string, series ...ChartSeries) (*ChartDescriptor, error) {
	for _, s := range series {
		if len(s.Values) != len(labels) {
			return nil, goerr.Wrap(ErrSeriesMismatch, "chart series is not aligned with labels",
				goerr.V("chart", id),
				goerr.V("series", s.Name),
				goerr.V("labels", len(labels)),
				goerr.V("values", len(s.Values)),
			)
		}
	}

	return &ChartDescriptor{
		ID:         id,
		Title:      title,
		AxisTitle:  axisTitle,
		Labels:     labels,
		Series:     series,
		YMin:       0,
		Gridlines:  true,
		ShowLegend: len(series) > 1,
		Fill:       len(series) == 1,
	}, nil
}

// PointCount returns the number of plotted points per series
func (c *ChartDescriptor) PointCount() int {
	return len(c.Labels)
}

// Dashboard is the immutable descriptor of the rendered page: header,
// stat tiles, and chart panels in display order.
type Dashboard struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Insights string            `json:"insights"`
	Dataset  types.DatasetID   `json:"dataset"`
	Tiles    []StatTile        `json:"tiles"`
	Charts   []ChartDescriptor `json:"charts"`
}

// Chart returns the chart with the given ID
func (d *Dashboard) Chart(id types.ChartID) (*ChartDescriptor, error) {
	for i := range d.Charts {
		if d.Charts[i].ID == id {
			return &d.Charts[i], nil
		}
	}
	return nil, goerr.Wrap(ErrChartNotFound, "no such chart on dashboard", goerr.V("chart", id))
}
