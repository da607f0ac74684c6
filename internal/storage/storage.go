// Package storage opens the configured persistence backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrredcon/ballroom/internal/config"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	"github.com/mrredcon/ballroom/internal/storage/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Repositories are the opened repositories plus whatever must be closed
// when the process stops
type Repositories struct {
	Backend    string
	Characters characters.Repository
	Items      items.Repository

	closers []func() error
}

// Close releases the backend's connections
func (r *Repositories) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Memory returns fresh in-memory repositories
func Memory() *Repositories {
	return &Repositories{
		Backend:    config.BackendMemory,
		Characters: characters.NewInMemoryRepository(),
		Items:      items.NewInMemoryRepository(),
	}
}

// Open opens the backend named in cfg.Storage
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Repositories, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Warn().Msg("Using in-memory storage; data is lost on exit")
		return Memory(), nil

	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Storage.SQLitePath).Msg("Using SQLite for persistence")
		return &Repositories{
			Backend:    config.BackendSQLite,
			Characters: store.Characters(),
			Items:      store.Items(),
			closers:    []func() error{store.Close},
		}, nil

	case config.BackendRedis:
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("addr", client.Options().Addr).Msg("Using Redis for persistence")
		return &Repositories{
			Backend:    config.BackendRedis,
			Characters: characters.NewRedis(client),
			Items:      items.NewRedis(client),
			closers:    []func() error{client.Close},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// NewRedisClient connects to Redis and verifies the connection with a ping
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}
