package cli

import (
	"log/slog"

	"github.com/alexanderramin/peak/internal/config"
	"github.com/alexanderramin/peak/internal/intelligence"
	"github.com/alexanderramin/peak/internal/service"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// App holds the services and settings shared by every command. Fields
// left nil are filled from Config the first time a command runs.
type App struct {
	Plans   service.PlanService
	Catalog service.CatalogService
	// Nudges is the optional generative source; nil keeps plans fully
	// deterministic.
	Nudges intelligence.NudgeService

	Config *config.Config
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// init resolves config, logger and services. An explicit configPath always
// reloads the configuration.
func (a *App) init(cmd *cobra.Command, configPath string) error {
	if a.Config == nil || configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		a.Config = cfg
	}
	if a.Logger == nil {
		a.Logger = a.Config.NewLogger(cmd.ErrOrStderr())
	}
	if a.Plans == nil {
		a.Plans = service.NewPlanService(a.Nudges, service.NewSlogPlanObserver(a.Logger))
	}
	if a.Catalog == nil {
		a.Catalog = service.NewCatalogService()
	}
	return nil
}
