package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapterHTTP "github.com/comitanigiacomo/deepstack-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/deepstack-engine/internal/adapters/notify"
	"github.com/comitanigiacomo/deepstack-engine/internal/app"
	"github.com/comitanigiacomo/deepstack-engine/internal/config"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/workers"
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Critical: Failed to open store: %v", err)
	}
	defer storage.Close()

	svc, err := app.NewServices(ctx, cfg, storage.Store)
	if err != nil {
		log.Fatalf("Critical: Failed to build services: %v", err)
	}

	if cfg.AccessKeyHash == "" {
		log.Println("[AUTH] ACCESS_KEY_HASH not set, API is open")
	}
	tokenService := services.NewTokenService(cfg.JWTSecret, "deepstack-engine", cfg.TokenTTL, cfg.AccessKeyHash)

	reminders := domain.DefaultReminders()
	watcher := workers.NewActivityWatcher(svc.Schedule, svc.Settings, notify.NewLogNotifier(os.Stdout), reminders, cfg.WatchInterval)
	watcher.Start(ctx)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(tokenService),
		ProgressHandler: adapterHTTP.NewProgressHandler(svc.Progress, nil),
		ScheduleHandler: adapterHTTP.NewScheduleHandler(svc.Schedule, reminders, nil),
		GoalHandler:     adapterHTTP.NewGoalHandler(svc.Goals),
		FocusHandler:    adapterHTTP.NewFocusHandler(svc.Focus, nil),
		NoteHandler:     adapterHTTP.NewNoteHandler(svc.Notes, nil),
		SettingsHandler: adapterHTTP.NewSettingsHandler(svc.Settings),
		ArticleHandler:  adapterHTTP.NewArticleHandler(svc.Articles),
		TokenService:    tokenService,
		Store:           storage.Store,
		Redis:           storage.Redis,
		RateLimit:       cfg.RateLimit,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("DeepStack engine running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
