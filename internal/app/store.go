package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/deepstack-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/deepstack-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/deepstack-engine/internal/config"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

// Storage is the opened persistence stack. Close releases every connection.
type Storage struct {
	Store domain.Store
	Redis *redis.Client

	closers []func() error
}

func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			log.Printf("[STORE] Close error: %v", err)
		}
	}
}

// OpenStorage builds the Store chosen by cfg.StoreDriver. When a Redis host
// is configured the store is wrapped in the read-through cache; an
// unreachable Redis only disables caching.
func OpenStorage(ctx context.Context, cfg config.Config) (*Storage, error) {
	s := &Storage{}

	switch cfg.StoreDriver {
	case config.StoreMemory:
		s.Store = repository.NewInMemoryStore()

	case config.StorePostgres:
		log.Println("[STORE] Connecting to postgres...")
		db, err := repository.ConnectPostgres(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		s.closers = append(s.closers, db.Close)

		pg := repository.NewPostgresStore(db, repository.DefaultPostgresTable)
		if err := pg.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		s.Store = pg

	default:
		sqlite, err := repository.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		s.closers = append(s.closers, sqlite.Close)
		s.Store = sqlite
	}
	log.Printf("[STORE] Using %s store", cfg.StoreDriver)

	opts := cache.RedisOptions{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	if !opts.Enabled() {
		return s, nil
	}

	rdb, err := cache.NewRedisClient(ctx, opts)
	if err != nil {
		log.Printf("[CACHE] Redis unavailable, running without cache: %v", err)
		return s, nil
	}
	s.closers = append(s.closers, rdb.Close)
	s.Redis = rdb
	s.Store = repository.NewCachedStore(s.Store, rdb)
	log.Println("[CACHE] Redis cache enabled")

	return s, nil
}
