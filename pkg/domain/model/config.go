package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Default dashboard appearance, matching the reference page
const (
	DefaultTitle       = "COVID-19 Dashboard"
	DefaultSubtitle    = "Weekly Cases vs Deaths Correlation Analysis"
	DefaultCasesColor  = "#3498db"
	DefaultDeathsColor = "#e74c3c"

	DefaultInsights = "These charts show the correlation between COVID-19 cases and deaths over time. " +
		"Deaths typically follow cases with a 2-3 week lag, and the relationship varies based on " +
		"factors like vaccination rates, treatment improvements, and demographics of affected populations."
)

// DashboardConfig controls page text and chart colors. All fields are
// optional in YAML; ApplyDefaults fills the gaps.
type DashboardConfig struct {
	Title              string `yaml:"title"`
	Subtitle           string `yaml:"subtitle"`
	Insights           string `yaml:"insights"`
	CasesColor         string `yaml:"cases_color"`
	DeathsColor        string `yaml:"deaths_color"`
	ReportingCountries int    `yaml:"reporting_countries"`
}

// DefaultDashboardConfig returns the built-in appearance
func DefaultDashboardConfig() *DashboardConfig {
	cfg := &DashboardConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with built-in values
func (c *DashboardConfig) ApplyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Subtitle == "" {
		c.Subtitle = DefaultSubtitle
	}
	if c.Insights == "" {
		c.Insights = DefaultInsights
	}
	if c.CasesColor == "" {
		c.CasesColor = DefaultCasesColor
	}
	if c.DeathsColor == "" {
		c.DeathsColor = DefaultDeathsColor
	}
	if c.ReportingCountries == 0 {
		c.ReportingCountries = 89
	}
}

// Validate validates the dashboard configuration
func (c *DashboardConfig) Validate() error {
	if c.ReportingCountries < 0 {
		return goerr.New("reporting countries must not be negative",
			goerr.V("reportingCountries", c.ReportingCountries))
	}
	return nil
}
