package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/deepstack-engine/internal/app"
	"github.com/comitanigiacomo/deepstack-engine/internal/config"
)

// Opener builds the services for one command run. dbPath overrides the
// SQLite location when non-empty.
type Opener func(ctx context.Context, dbPath string) (*app.Services, func(), error)

type Options struct {
	Open Opener
	Now  func() time.Time
}

// OpenFromEnv is the production Opener: environment config plus the
// configured store.
func OpenFromEnv(ctx context.Context, dbPath string) (*app.Services, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if dbPath != "" {
		cfg.StoreDriver = config.StoreSQLite
		cfg.SQLitePath = dbPath
	}

	storage, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.NewServices(ctx, cfg, storage.Store)
	if err != nil {
		storage.Close()
		return nil, nil, err
	}
	return svc, storage.Close, nil
}

type runner struct {
	opts   Options
	dbPath string
}

func (r *runner) with(cmd *cobra.Command, fn func(svc *app.Services, now time.Time) error) error {
	svc, closeFn, err := r.opts.Open(cmd.Context(), r.dbPath)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(svc, r.opts.Now())
}

func NewRootCmd(opts Options) *cobra.Command {
	if opts.Open == nil {
		opts.Open = OpenFromEnv
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	r := &runner{opts: opts}

	root := &cobra.Command{
		Use:           "deepstack",
		Short:         "Daily protocol tracker for the 65-week study program",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&r.dbPath, "db", "", "SQLite database path (overrides STORE_DRIVER)")

	root.AddCommand(newStatusCmd(r))
	root.AddCommand(newLogCmd(r))
	root.AddCommand(newStatsCmd(r))
	root.AddCommand(newAchievementsCmd(r))
	root.AddCommand(newScheduleCmd(r))
	root.AddCommand(newNoteCmd(r))
	root.AddCommand(newGoalsCmd(r))
	root.AddCommand(newArticlesCmd(r))
	return root
}
