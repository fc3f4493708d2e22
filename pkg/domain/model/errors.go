package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrSeriesMismatch is returned when chart labels and series values
	// do not have the same length
	ErrSeriesMismatch = goerr.New("label and series lengths do not match")

	// ErrRenderTargetMissing is returned when a required render mount
	// point (template block or output location) is absent
	ErrRenderTargetMissing = goerr.New("render target is missing")

	// ErrDatasetNotFound is returned when a requested dataset does not exist
	ErrDatasetNotFound = goerr.New("dataset not found")

	// ErrChartNotFound is returned when a dashboard has no chart with the
	// requested ID
	ErrChartNotFound = goerr.New("chart not found")
)
