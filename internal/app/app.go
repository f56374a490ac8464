// File: internal/app/app.go
package app

import (
	"context"

	"github.com/sithum-sy/hireme-client/internal/api"
	"github.com/sithum-sy/hireme-client/internal/config"
	"github.com/sithum-sy/hireme-client/internal/draft"
	"github.com/sithum-sy/hireme-client/internal/form"
	"github.com/sithum-sy/hireme-client/internal/jobs"
	"github.com/sithum-sy/hireme-client/internal/platform/database"
	"github.com/sithum-sy/hireme-client/internal/profile"
	"github.com/sithum-sy/hireme-client/internal/provider"
	"github.com/sithum-sy/hireme-client/internal/services"
	"github.com/sithum-sy/hireme-client/internal/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the assembled client SDK: one API client, one draft store, and one
// state container per entity, all sharing the same config and logger. An
// embedding UI holds a single App per session and builds its form controllers
// against it.
type App struct {
	Cfg            *config.Config
	Logger         *zap.Logger
	Client         *api.Client
	Drafts         *draft.Service
	Profile        *profile.Container
	Provider       *provider.Container
	Services       *services.Container
	PasswordPolicy validation.PasswordPolicy

	db      *gorm.DB
	sweeper *jobs.DraftSweeperJob
}

// New assembles the App.
func New(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	client *api.Client,
	drafts *draft.Service,
	profileContainer *profile.Container,
	providerContainer *provider.Container,
	servicesContainer *services.Container,
	sweeper *jobs.DraftSweeperJob,
) *App {
	return &App{
		Cfg:            cfg,
		Logger:         logger,
		Client:         client,
		Drafts:         drafts,
		Profile:        profileContainer,
		Provider:       providerContainer,
		Services:       servicesContainer,
		PasswordPolicy: validation.DefaultPasswordPolicy(),
		db:             db,
		sweeper:        sweeper,
	}
}

// NewFormController builds a section form controller against the App's draft
// store and configured autosave lag. opts.Drafts, Debounce, and Logger are
// filled in from the App when unset, so embedders normally pass only the
// section, schema, initial values, and submit action.
func (a *App) NewFormController(ctx context.Context, opts form.Options) *form.Controller {
	if opts.Drafts == nil {
		opts.Drafts = a.Drafts
	}
	if opts.Debounce <= 0 {
		opts.Debounce = a.Cfg.DraftAutosaveLag
	}
	if opts.Logger == nil {
		opts.Logger = a.Logger
	}
	return form.NewController(ctx, opts)
}

// Start brings up the background pieces (currently the draft sweeper).
func (a *App) Start() error {
	return a.sweeper.SetupAndStart()
}

// Close stops background work and releases the draft database and logger.
func (a *App) Close() {
	a.Logger.Info("Shutting down client SDK...")
	a.sweeper.Stop()
	database.CloseGORMDB(a.db)
	_ = a.Logger.Sync()
}
