package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/api"
	"github.com/yourname/moodjournal/internal/auth"
	"github.com/yourname/moodjournal/internal/catalog"
	"github.com/yourname/moodjournal/internal/config"
	"github.com/yourname/moodjournal/internal/insight"
	"github.com/yourname/moodjournal/internal/mentor"
	"github.com/yourname/moodjournal/internal/reflection"
	"github.com/yourname/moodjournal/internal/storage"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := internal.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, store, err := setup(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to start: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf("failed to close storage: %v", err)
		}
	}()

	go func() {
		logger.Infof("server listening on :%s (storage=%s, reflection=%s)", cfg.ServerPort, cfg.StorageBackend, cfg.ReflectionProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server failed: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
}

// setup wires the application. On error nothing is left open; on success
// the caller owns the returned store.
func setup(ctx context.Context, cfg *config.Config, logger internal.Logger) (*http.Server, storage.Store, error) {
	completer, err := reflection.NewCompleter(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cat := catalog.Default()
	rnd := mentor.NewLockedRand(time.Now().UnixNano())
	m := mentor.NewEngine(cat, rnd)
	app := api.NewApplication(logger, store, cat, insight.NewEngine(cat, rnd, m), m,
		reflection.NewReflector(completer, cat, logger))

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           api.NewRouter(app, auth.NewProvider(cfg, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, store, nil
}
