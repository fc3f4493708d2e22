package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	datasets map[types.DatasetID]*model.Dataset
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		datasets: make(map[types.DatasetID]*model.Dataset),
	}
}

// SaveDataset saves a dataset to memory
func (m *Memory) SaveDataset(ctx context.Context, dataset *model.Dataset) error {
	if dataset == nil {
		return goerr.New("dataset is nil")
	}
	if dataset.ID == "" {
		return goerr.New("dataset ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy to prevent external modification
	m.datasets[dataset.ID] = dataset.Clone()
	return nil
}

// GetDataset retrieves a dataset by ID
func (m *Memory) GetDataset(ctx context.Context, id types.DatasetID) (*model.Dataset, error) {
	if id == "" {
		return nil, goerr.New("dataset ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ds, exists := m.datasets[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrDatasetNotFound, "dataset does not exist", goerr.V("id", id))
	}

	return ds.Clone(), nil
}

// GetLatestDataset retrieves the most recently created dataset
func (m *Memory) GetLatestDataset(ctx context.Context) (*model.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *model.Dataset
	for _, ds := range m.datasets {
		if latest == nil || ds.CreatedAt.After(latest.CreatedAt) {
			latest = ds
		}
	}
	if latest == nil {
		return nil, goerr.Wrap(model.ErrDatasetNotFound, "repository is empty")
	}

	return latest.Clone(), nil
}

// ListDatasets lists dataset IDs, newest first
func (m *Memory) ListDatasets(ctx context.Context) ([]types.DatasetID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	datasets := make([]*model.Dataset, 0, len(m.datasets))
	for _, ds := range m.datasets {
		datasets = append(datasets, ds)
	}
	sort.Slice(datasets, func(i, j int) bool {
		return datasets[i].CreatedAt.After(datasets[j].CreatedAt)
	})

	ids := make([]types.DatasetID, len(datasets))
	for i, ds := range datasets {
		ids[i] = ds.ID
	}
	return ids, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
