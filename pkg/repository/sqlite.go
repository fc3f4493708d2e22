package repository

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS datasets (
	id         TEXT PRIMARY KEY,
	seed       INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS week_points (
	dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	date       TEXT NOT NULL,
	label      TEXT NOT NULL,
	cases      INTEGER NOT NULL,
	deaths     INTEGER NOT NULL,
	PRIMARY KEY (dataset_id, position)
);
`

// SQLite implements Repository interface backed by a local SQLite file
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) a SQLite repository at path
func NewSQLite(ctx context.Context, path string) (interfaces.Repository, error) {
	if path == "" {
		return nil, goerr.New("sqlite path is required")
	}

	// modernc.org/sqlite understands URI parameters in a "file:" DSN
	u := url.URL{Scheme: "file", Path: path}
	q := u.Query()
	q.Set("_busy_timeout", "5000")
	u.RawQuery = q.Encode()

	db, err := sql.Open("sqlite", u.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite", goerr.V("path", path))
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ping sqlite", goerr.V("path", path))
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to create schema", goerr.V("path", path))
	}

	return &SQLite{db: db}, nil
}

// SaveDataset saves a dataset and its points in one transaction
func (s *SQLite) SaveDataset(ctx context.Context, dataset *model.Dataset) error {
	if dataset == nil {
		return goerr.New("dataset is nil")
	}
	if dataset.ID == "" {
		return goerr.New("dataset ID is empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO datasets (id, seed, created_at) VALUES (?, ?, ?)`,
		dataset.ID.String(), dataset.Seed, dataset.CreatedAt.UTC().UnixNano(),
	); err != nil {
		return goerr.Wrap(err, "failed to insert dataset", goerr.V("id", dataset.ID))
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM week_points WHERE dataset_id = ?`, dataset.ID.String(),
	); err != nil {
		return goerr.Wrap(err, "failed to clear week points", goerr.V("id", dataset.ID))
	}

	for i, p := range dataset.Points {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO week_points (dataset_id, position, date, label, cases, deaths) VALUES (?, ?, ?, ?, ?, ?)`,
			dataset.ID.String(), i, p.Date.UTC().Format(time.RFC3339), p.Label, p.Cases, p.Deaths,
		); err != nil {
			return goerr.Wrap(err, "failed to insert week point",
				goerr.V("id", dataset.ID), goerr.V("position", i))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit dataset", goerr.V("id", dataset.ID))
	}
	return nil
}

// GetDataset retrieves a dataset by ID
func (s *SQLite) GetDataset(ctx context.Context, id types.DatasetID) (*model.Dataset, error) {
	if id == "" {
		return nil, goerr.New("dataset ID is empty")
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, seed, created_at FROM datasets WHERE id = ?`, id.String())

	ds, err := scanDataset(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(model.ErrDatasetNotFound, "dataset does not exist", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to query dataset", goerr.V("id", id))
	}

	if err := s.loadPoints(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// GetLatestDataset retrieves the most recently created dataset
func (s *SQLite) GetLatestDataset(ctx context.Context) (*model.Dataset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, seed, created_at FROM datasets ORDER BY created_at DESC LIMIT 1`)

	ds, err := scanDataset(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(model.ErrDatasetNotFound, "repository is empty")
		}
		return nil, goerr.Wrap(err, "failed to query latest dataset")
	}

	if err := s.loadPoints(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// ListDatasets lists dataset IDs, newest first
func (s *SQLite) ListDatasets(ctx context.Context) ([]types.DatasetID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list datasets")
	}
	defer rows.Close()

	var ids []types.DatasetID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, goerr.Wrap(err, "failed to scan dataset ID")
		}
		ids = append(ids, types.DatasetID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate datasets")
	}
	return ids, nil
}

// Close closes the database connection
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func scanDataset(row *sql.Row) (*model.Dataset, error) {
	var (
		id        string
		seed      int64
		createdAt int64
	)
	if err := row.Scan(&id, &seed, &createdAt); err != nil {
		return nil, err
	}

	return &model.Dataset{
		ID:        types.DatasetID(id),
		Seed:      seed,
		CreatedAt: time.Unix(0, createdAt).UTC(),
	}, nil
}

func (s *SQLite) loadPoints(ctx context.Context, ds *model.Dataset) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, label, cases, deaths FROM week_points WHERE dataset_id = ? ORDER BY position`,
		ds.ID.String())
	if err != nil {
		return goerr.Wrap(err, "failed to query week points", goerr.V("id", ds.ID))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			date   string
			p      model.WeekPoint
			parsed time.Time
		)
		if err := rows.Scan(&date, &p.Label, &p.Cases, &p.Deaths); err != nil {
			return goerr.Wrap(err, "failed to scan week point", goerr.V("id", ds.ID))
		}
		parsed, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return goerr.Wrap(err, "invalid date in store", goerr.V("value", date))
		}
		p.Date = parsed
		ds.Points = append(ds.Points, p)
	}
	if err := rows.Err(); err != nil {
		return goerr.Wrap(err, "failed to iterate week points", goerr.V("id", ds.ID))
	}
	return nil
}
