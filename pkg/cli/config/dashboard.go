package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/epiview/epiview/pkg/domain/model"
)

// Dashboard holds dashboard appearance configuration
type Dashboard struct {
	ConfigPath string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dashboard-config",
			Usage:       "Path to dashboard YAML config (titles, colors, reporting countries)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("EPIVIEW_DASHBOARD_CONFIG"),
			Destination: &d.ConfigPath,
		},
	}
}

// Configure loads the dashboard configuration, falling back to the
// built-in defaults when no file is given
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	if d.ConfigPath == "" {
		return model.DefaultDashboardConfig(), nil
	}
	return LoadDashboardConfigFromFile(d.ConfigPath)
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("configPath", d.ConfigPath),
	)
}

// LoadDashboardConfigFromFile loads dashboard configuration from YAML file
func LoadDashboardConfigFromFile(path string) (*model.DashboardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var cfg model.DashboardConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &cfg, nil
}
