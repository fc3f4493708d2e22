package dataset

import (
	"github.com/epiview/epiview/pkg/domain/model"
)

// summaryWindow is the number of trailing weeks folded into the
// headline totals (28 days)
const summaryWindow = 4

// Summarize computes headline statistics over the trailing summary
// window. Shorter datasets total over what exists; an empty dataset
// yields zero totals and a 0.0% fatality rate.
func Summarize(ds *model.Dataset, reportingCountries int) model.Summary {
	window := ds.Points
	if len(window) > summaryWindow {
		window = window[len(window)-summaryWindow:]
	}

	var totalCases, totalDeaths int
	for _, p := range window {
		totalCases += p.Cases
		totalDeaths += p.Deaths
	}

	var cfr float64
	if totalCases > 0 {
		cfr = float64(totalDeaths) / float64(totalCases) * 100
	}

	return model.Summary{
		TotalCases28d:      totalCases,
		TotalDeaths28d:     totalDeaths,
		CaseFatalityRate:   cfr,
		ReportingCountries: reportingCountries,
	}
}
