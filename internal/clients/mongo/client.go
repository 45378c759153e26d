package mongo

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"notes-api/internal/config"

	"github.com/avast/retry-go/v4"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	connectTimeout = 10 * time.Second
	retryDelay     = 500 * time.Millisecond
)

var (
	// ErrNotInitialized is returned by Shutdown when Init never succeeded.
	ErrNotInitialized = errors.New("mongo client not initialized")
	// ErrShutdown is returned by Shutdown once the client has been shut down.
	ErrShutdown = errors.New("mongo client already shut down")
)

var (
	drv    driver = mongoDriver{}
	client *mongo.Client
	db     *mongo.Database
	closed bool
	mu     sync.Mutex
)

// Init connects and pings MongoDB, retrying up to cfg.StoreConnectAttempts
// times. The first successful call wins; later calls return the same handles.
func Init(ctx context.Context, cfg config.Config, log *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil && db != nil {
		return client, db, nil
	}

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(connectTimeout).
		SetAppName("notes-api")

	var cli *mongo.Client
	err := retry.Do(
		func() error {
			c, err := drv.Connect(ctx, opts)
			if err != nil {
				return err
			}

			pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			defer cancel()

			if err := drv.Ping(pingCtx, c); err != nil {
				_ = drv.Disconnect(context.WithoutCancel(ctx), c)
				return err
			}
			cli = c
			return nil
		},
		retry.Attempts(uint(max(cfg.StoreConnectAttempts, 1))),
		retry.Delay(retryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("mongo not ready, retrying", "attempt", n+1, "err", err)
		}),
	)
	if err != nil {
		log.Error("failed to connect to mongo", "err", err)
		return nil, nil, err
	}

	client = cli
	db = cli.Database(cfg.MongoDBName)
	closed = false

	log.Info("successfully connected to mongo", "db", cfg.MongoDBName)
	return client, db, nil
}

// Client returns the singleton MongoDB client instance.
func Client() *mongo.Client {
	mu.Lock()
	defer mu.Unlock()
	return client
}

// DB returns the singleton MongoDB database instance.
func DB() *mongo.Database {
	mu.Lock()
	defer mu.Unlock()
	return db
}

// Shutdown disconnects the client. The first call after a failed or missing
// Init returns ErrNotInitialized; every later call returns ErrShutdown.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if closed {
		return ErrShutdown
	}
	closed = true

	if client == nil {
		return ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := drv.Disconnect(ctx, client)

	client = nil
	db = nil

	return err
}
