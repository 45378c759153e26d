package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notes-api/internal/clients/memory"
	mongo "notes-api/internal/clients/mongo" // mongo client singleton
	redisstore "notes-api/internal/clients/redis"
	"notes-api/internal/config"
	"notes-api/internal/logger"
	notesServices "notes-api/internal/services/notes"

	"github.com/grafana/pyroscope-go"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"
)

// notesStore is a repository that can also report its health
type notesStore interface {
	notesServices.Repository
	notesServices.Pinger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Create bootstrap logger for early errors
	bootstrapLog := log.New(os.Stderr, "bootstrap: ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		bootstrapLog.Printf("config load failed: %v", err)
		os.Exit(1)
	}

	logg, err := logger.Init(cfg)
	if err != nil {
		bootstrapLog.Printf("logger init failed: %v", err)
		os.Exit(1)
	}

	if cfg.PyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "notes-api",
			ServerAddress:   cfg.PyroscopeAddr,
			Logger:          nil,
		})
		if err != nil {
			logg.Warn("pyroscope disabled", "err", err)
		} else {
			defer func() { _ = profiler.Stop() }()
		}
	}

	store, closeStore, err := openStore(ctx, cfg, logg)
	if err != nil {
		logg.Error("store init", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}

	logg.Info("starting notes-api", "port", cfg.AppPort, "store", cfg.StoreDriver)

	app := setupRouter(cfg, store, store, logg)
	portStr := fmt.Sprintf(":%d", cfg.AppPort)

	g.Go(func() error {
		err := app.Listen(portStr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx),
			time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		return closeStore(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("fatal", "err", err)
		os.Exit(1)
	}
	logg.Info("graceful shutdown complete")
}

// openStore connects the backend named by cfg.StoreDriver and returns it with
// its close function.
func openStore(ctx context.Context, cfg config.Config, logg *slog.Logger) (notesStore, func(context.Context) error, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logg.Warn("using in-memory store, notes are lost on restart")
		return memory.NewNotesRepo(), func(context.Context) error { return nil }, nil

	case config.StoreRedis:
		rdb, err := redisstore.Init(ctx, cfg, logg)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", notesServices.ErrCreateNotesRepo, err)
		}
		closeFn := func(context.Context) error { return rdb.Close() }
		return redisstore.NewNotesRepo(rdb, cfg.RedisKeyPrefix), closeFn, nil

	default:
		_, db, err := mongo.Init(ctx, cfg, logg)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", notesServices.ErrCreateNotesRepo, err)
		}
		return mongo.NewNotesRepo(db, cfg.MongoCollection), mongo.Shutdown, nil
	}
}
