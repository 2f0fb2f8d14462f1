package main

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/events"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/handlers"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/notify"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/service"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/files"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/auth"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/config"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/db"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/httpserver"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/logging"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/run"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// store
	var st store.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Error("db open", zap.Error(err))
			run.Exit(1)
		}
		defer pool.Close()
		st = store.NewPostgres(pool)
	} else {
		if cfg.IsProduction() {
			log.Error("DATABASE_URL is required in production")
			run.Exit(1)
		}
		log.Warn("DATABASE_URL not set, using in-memory store")
		st = store.NewMemory()
	}

	// notifications
	var transport notify.Transport = notify.Nop{Log: log}
	if cfg.Telegram.BotToken != "" {
		transport = notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	}
	dispatcher := notify.NewDispatcher(transport, notify.Options{
		SkipPhotos: !cfg.IsProduction(),
	}, log)

	publisher, err := events.New(cfg.NATSURL, log)
	if err != nil {
		log.Error("events publisher", zap.Error(err))
		run.Exit(1)
	}

	svc := service.New(st, dispatcher, publisher, log)
	storage := files.NewStorage(cfg.Uploads.Dir, cfg.Uploads.BaseURL)

	r := chi.NewRouter()
	httpserver.SetupRouter(r)
	handlers.Mount(r, svc, storage, auth.Verifier{Secret: []byte(cfg.JWTSecret)})

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, Router: r})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}
