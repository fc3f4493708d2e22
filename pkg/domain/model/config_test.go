package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/epiview/epiview/pkg/domain/model"
)

func TestDashboardConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := model.DefaultDashboardConfig()
		gt.Equal(t, cfg.Title, model.DefaultTitle)
		gt.Equal(t, cfg.CasesColor, model.DefaultCasesColor)
		gt.Equal(t, cfg.ReportingCountries, 89)
		gt.NoError(t, cfg.Validate())
	})

	t.Run("partial config keeps explicit values", func(t *testing.T) {
		cfg := &model.DashboardConfig{Title: "Regional Dashboard"}
		cfg.ApplyDefaults()
		gt.Equal(t, cfg.Title, "Regional Dashboard")
		gt.Equal(t, cfg.Subtitle, model.DefaultSubtitle)
	})

	t.Run("negative reporting countries is invalid", func(t *testing.T) {
		cfg := &model.DashboardConfig{ReportingCountries: -1}
		gt.Error(t, cfg.Validate())
	})
}
