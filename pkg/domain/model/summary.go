package model

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/epiview/epiview/pkg/domain/types"
)

// Summary holds precomputed headline statistics for a dataset
type Summary struct {
	TotalCases28d      int     `json:"total_cases_28d"`
	TotalDeaths28d     int     `json:"total_deaths_28d"`
	CaseFatalityRate   float64 `json:"case_fatality_rate"`
	ReportingCountries int     `json:"reporting_countries"`
}

// StatTile is one summary element on the dashboard. Value is already
// formatted for display.
type StatTile struct {
	Label    string             `json:"label"`
	Value    string             `json:"value"`
	Category types.StatCategory `json:"category"`
}

// Tiles renders the summary as the four dashboard stat tiles, in fixed order
func (s Summary) Tiles() []StatTile {
	return []StatTile{
		{
			Label:    "New Cases (28 days)",
			Value:    humanize.Comma(int64(s.TotalCases28d)),
			Category: types.StatInfo,
		},
		{
			Label:    "New Deaths (28 days)",
			Value:    humanize.Comma(int64(s.TotalDeaths28d)),
			Category: types.StatDanger,
		},
		{
			Label:    "Case Fatality Rate",
			Value:    fmt.Sprintf("%.1f%%", s.CaseFatalityRate),
			Category: types.StatWarning,
		},
		{
			Label:    "Reporting Countries",
			Value:    humanize.Comma(int64(s.ReportingCountries)),
			Category: types.StatNeutral,
		},
	}
}
