package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/pkg/domain/model"
)

var csvHeader = []string{"date", "week_label", "cases", "deaths"}

// WriteCSV writes dataset points as CSV with an RFC3339 date column
func WriteCSV(w io.Writer, ds *model.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}
	for i, p := range ds.Points {
		record := []string{
			p.Date.UTC().Format(time.RFC3339),
			p.Label,
			strconv.Itoa(p.Cases),
			strconv.Itoa(p.Deaths),
		}
		if err := cw.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write CSV record", goerr.V("row", i))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}

// WriteSummaryCSV writes a one-row summary CSV
func WriteSummaryCSV(w io.Writer, s model.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"total_cases_28d", "total_deaths_28d", "case_fatality_rate", "reporting_countries"}); err != nil {
		return goerr.Wrap(err, "failed to write summary header")
	}
	record := []string{
		strconv.Itoa(s.TotalCases28d),
		strconv.Itoa(s.TotalDeaths28d),
		fmt.Sprintf("%.6f", s.CaseFatalityRate),
		strconv.Itoa(s.ReportingCountries),
	}
	if err := cw.Write(record); err != nil {
		return goerr.Wrap(err, "failed to write summary record")
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush summary CSV")
	}
	return nil
}

// ReadCSV parses dataset points from CSV written by WriteCSV. Rows are
// validated: exact column count, parseable date, non-negative integers.
func ReadCSV(r io.Reader) ([]model.WeekPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, goerr.New("CSV input is empty")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read CSV header")
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, goerr.New("unexpected CSV header",
				goerr.V("column", i), goerr.V("expected", name), goerr.V("actual", header[i]))
		}
	}

	var points []model.WeekPoint
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV record", goerr.V("row", row))
		}

		date, err := time.Parse(time.RFC3339, record[0])
		if err != nil {
			return nil, goerr.Wrap(err, "invalid date", goerr.V("row", row), goerr.V("value", record[0]))
		}
		cases, err := parseCount(record[2])
		if err != nil {
			return nil, goerr.Wrap(err, "invalid case count", goerr.V("row", row), goerr.V("value", record[2]))
		}
		deaths, err := parseCount(record[3])
		if err != nil {
			return nil, goerr.Wrap(err, "invalid death count", goerr.V("row", row), goerr.V("value", record[3]))
		}
		if record[1] == "" {
			return nil, goerr.New("empty week label", goerr.V("row", row))
		}

		points = append(points, model.WeekPoint{
			Date:   date,
			Label:  record[1],
			Cases:  cases,
			Deaths: deaths,
		})
	}

	return points, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, goerr.New("count must not be negative", goerr.V("count", n))
	}
	return n, nil
}
