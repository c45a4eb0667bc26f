package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

var _ domain.Store = (*CachedStore)(nil)

const (
	cacheKeyPrefix   = "deepstack:"
	versionKeyPrefix = cacheKeyPrefix + "version:"
	cacheTTL         = 30 * time.Minute
)

// CachedStore is a read-through Redis cache in front of another Store.
// Writes go to the backing store first, then bump the key's version and drop
// the cached copy. A read fills the cache inside a WATCH on that version, so
// a value read before a concurrent write is never cached after it.
type CachedStore struct {
	next  domain.Store
	cache *redis.Client
}

func NewCachedStore(next domain.Store, cache *redis.Client) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: cache,
	}
}

func (r *CachedStore) cacheKey(key string) string {
	return cacheKeyPrefix + key
}

func (r *CachedStore) versionKey(key string) string {
	return versionKeyPrefix + key
}

func (r *CachedStore) invalidate(ctx context.Context, key string) {
	vk := r.versionKey(key)
	_, err := r.cache.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vk)
		pipe.Expire(ctx, vk, cacheTTL)
		pipe.Del(ctx, r.cacheKey(key))
		return nil
	})
	if err != nil {
		log.Printf("[CACHE] Failed to invalidate %s: %v", key, err)
	}
}

func (r *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	ck := r.cacheKey(key)

	val, err := r.cache.Get(ctx, ck).Bytes()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	var loadErr error
	loaded := false
	err = r.cache.Watch(ctx, func(tx *redis.Tx) error {
		val, loadErr = r.next.Get(ctx, key)
		loaded = true
		if loadErr != nil {
			return nil
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ck, val, cacheTTL)
			return nil
		})
		return err
	}, r.versionKey(key))

	if !loaded {
		log.Printf("[CACHE] Redis watch error: %v", err)
		return r.next.Get(ctx, key)
	}
	if loadErr != nil {
		return nil, loadErr
	}
	// TxFailedErr: a write landed during the read, serve the value uncached
	if err != nil && !errors.Is(err, redis.TxFailedErr) {
		log.Printf("[CACHE] Redis set error: %v", err)
	}
	return val, nil
}

func (r *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.next.Set(ctx, key, value); err != nil {
		return err
	}
	r.invalidate(ctx, key)
	return nil
}

func (r *CachedStore) Clear(ctx context.Context) error {
	if err := r.next.Clear(ctx); err != nil {
		return err
	}

	iter := r.cache.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.cache.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("[CACHE] Failed to invalidate %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("[CACHE] Redis scan error: %v", err)
	}
	return nil
}

func (r *CachedStore) Ping(ctx context.Context) error {
	if err := r.cache.Ping(ctx).Err(); err != nil {
		return err
	}
	if p, ok := r.next.(domain.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
