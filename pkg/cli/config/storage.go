package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/repository"
)

// Storage holds dataset storage configuration
type Storage struct {
	SQLitePath string
}

// Flags returns CLI flags for Storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "Path to SQLite database file for dataset storage",
			Category:    "Storage",
			Sources:     cli.EnvVars("EPIVIEW_SQLITE_PATH"),
			Destination: &s.SQLitePath,
		},
	}
}

// Configure creates and returns a dataset repository
func (s *Storage) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if !s.IsConfigured() {
		logger.Warn("Using memory storage instead of SQLite. Datasets will be removed when shutting down")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewSQLite(ctx, s.SQLitePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init sqlite storage",
			goerr.V("path", s.SQLitePath),
		)
	}

	return repo, nil
}

// IsConfigured checks if persistent storage is configured
func (s *Storage) IsConfigured() bool {
	return s.SQLitePath != ""
}

// LogValue returns structured log value
func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("sqlitePath", s.SQLitePath),
	)
}
