package app

import (
	"context"

	"github.com/comitanigiacomo/deepstack-engine/internal/adapters/source"
	"github.com/comitanigiacomo/deepstack-engine/internal/config"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

// Services groups the core services shared by the API server and the CLI.
type Services struct {
	Program  domain.Program
	Progress *services.ProgressService
	Schedule *services.ScheduleService
	Goals    *services.GoalService
	Focus    *services.FocusService
	Notes    *services.NoteService
	Settings *services.SettingsService
	Articles *services.ArticleService
}

func NewServices(ctx context.Context, cfg config.Config, store domain.Store) (*Services, error) {
	program, err := cfg.Program()
	if err != nil {
		return nil, err
	}

	return &Services{
		Program:  program,
		Progress: services.NewProgressService(store, program),
		Schedule: services.NewScheduleService(ctx, source.NewYAMLSource(cfg.ScheduleFile), program),
		Goals:    services.NewGoalService(store, program),
		Focus:    services.NewFocusService(store, program.Location),
		Notes:    services.NewNoteService(store, program.Location),
		Settings: services.NewSettingsService(store),
		Articles: services.NewArticleService(ctx, source.NewArticleSource(cfg.ArticlesDir)),
	}, nil
}
