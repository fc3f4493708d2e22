package interfaces

import (
	"context"

	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
)

// Dashboard defines the dashboard building operations used by the
// HTTP controller and the static exporter
type Dashboard interface {
	// BuildLatest builds the dashboard from the most recent dataset
	BuildLatest(ctx context.Context) (*model.Dashboard, error)

	// Build builds the dashboard from a specific dataset
	Build(ctx context.Context, id types.DatasetID) (*model.Dashboard, error)
}

// Dataset defines dataset lifecycle operations
type Dataset interface {
	// Generate creates a new dataset and persists it
	Generate(ctx context.Context) (*model.Dataset, error)

	// Import loads a dataset from CSV and persists it
	Import(ctx context.Context, path string) (*model.Dataset, error)

	// Export writes a dataset and its summary as CSV files
	Export(ctx context.Context, id types.DatasetID, dir string) error
}
