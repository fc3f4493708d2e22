package interfaces

import (
	"context"

	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
)

// Repository defines the interface for dataset persistence
type Repository interface {
	// SaveDataset stores a dataset. Datasets are immutable; saving an
	// existing ID overwrites it with an identical copy at worst.
	SaveDataset(ctx context.Context, dataset *model.Dataset) error

	// GetDataset retrieves a dataset by ID
	GetDataset(ctx context.Context, id types.DatasetID) (*model.Dataset, error)

	// GetLatestDataset retrieves the most recently created dataset
	GetLatestDataset(ctx context.Context) (*model.Dataset, error)

	// ListDatasets lists dataset IDs, newest first
	ListDatasets(ctx context.Context) ([]types.DatasetID, error)

	// Close closes the repository connection
	Close() error
}
