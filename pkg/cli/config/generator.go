package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/epiview/epiview/pkg/service/dataset"
)

// Generator holds dataset generation parameters
type Generator struct {
	Seed  int64
	Weeks int64
	Start string
}

// Flags returns CLI flags for Generator configuration
func (g *Generator) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "seed",
			Usage:       "Random seed for dataset generation",
			Category:    "Generator",
			Value:       42,
			Sources:     cli.EnvVars("EPIVIEW_SEED"),
			Destination: &g.Seed,
		},
		&cli.Int64Flag{
			Name:        "weeks",
			Usage:       "Number of weeks to generate",
			Category:    "Generator",
			Value:       18,
			Sources:     cli.EnvVars("EPIVIEW_WEEKS"),
			Destination: &g.Weeks,
		},
		&cli.StringFlag{
			Name:        "start-date",
			Usage:       "First week start date (YYYY-MM-DD)",
			Category:    "Generator",
			Value:       "2025-01-01",
			Sources:     cli.EnvVars("EPIVIEW_START_DATE"),
			Destination: &g.Start,
		},
	}
}

// Configure builds a dataset generator from the flags
func (g *Generator) Configure() (*dataset.Generator, error) {
	if g.Weeks < 0 {
		return nil, goerr.New("weeks must not be negative", goerr.V("weeks", g.Weeks))
	}

	start, err := time.Parse("2006-01-02", g.Start)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid start date", goerr.V("startDate", g.Start))
	}

	return &dataset.Generator{
		Seed:  g.Seed,
		Weeks: int(g.Weeks),
		Start: start.UTC(),
	}, nil
}

// LogValue returns structured log value
func (g Generator) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", g.Seed),
		slog.Int64("weeks", g.Weeks),
		slog.String("start", g.Start),
	)
}
