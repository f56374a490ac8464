// File: cmd/hireme/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"github.com/sithum-sy/hireme-client/internal/api"
	"github.com/sithum-sy/hireme-client/internal/app"
	"github.com/sithum-sy/hireme-client/internal/config"
	"github.com/sithum-sy/hireme-client/internal/draft"
	"github.com/sithum-sy/hireme-client/internal/jobs"
	"github.com/sithum-sy/hireme-client/internal/platform/database"
	"github.com/sithum-sy/hireme-client/internal/platform/logger"
	"github.com/sithum-sy/hireme-client/internal/profile"
	"github.com/sithum-sy/hireme-client/internal/provider"
	"github.com/sithum-sy/hireme-client/internal/services"

	"github.com/google/wire"
)

// initializeApp is the main Wire injector.
func initializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,

		// Draft Store
		draft.NewGORMRepository,
		draft.NewService,

		// Backend API
		api.NewClientFromConfig,

		// State Containers
		profile.NewContainer,
		provider.NewContainer,
		services.NewContainer,

		// Jobs
		jobs.NewDraftSweeperJob,

		// Application Layer
		app.New,
	)
	return nil, nil
}
