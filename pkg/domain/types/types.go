package types

import "github.com/google/uuid"

// DatasetID represents a dataset identifier
type DatasetID string

// String returns the string representation
func (id DatasetID) String() string {
	return string(id)
}

// NewDatasetID creates a new DatasetID
func NewDatasetID() DatasetID {
	return DatasetID(uuid.New().String())
}

// ChartID identifies a chart panel on the dashboard
type ChartID string

// String returns the string representation
func (id ChartID) String() string {
	return string(id)
}

const (
	ChartCases    ChartID = "cases"
	ChartDeaths   ChartID = "deaths"
	ChartOverview ChartID = "overview"
)

// StatCategory classifies a stat tile for styling only
type StatCategory string

const (
	StatNeutral StatCategory = "neutral"
	StatDanger  StatCategory = "danger"
	StatWarning StatCategory = "warning"
	StatInfo    StatCategory = "info"
)

// String returns the string representation
func (c StatCategory) String() string {
	return string(c)
}

// IsValid checks if the category is one of the known values
func (c StatCategory) IsValid() bool {
	switch c {
	case StatNeutral, StatDanger, StatWarning, StatInfo:
		return true
	}
	return false
}
