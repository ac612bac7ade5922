package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-glossary/internal/logger"
	"github.com/sbilibin2017/gw-glossary/internal/models"
)

// ErrCacheMiss is returned when a term is not cached.
var ErrCacheMiss = errors.New("term not found in cache")

const termCacheKeyPrefix = "term:"

// TermCacheRepository caches terms by keyword in Redis
type TermCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached terms
}

// NewTermCacheRepository creates a new cache repository with the given TTL
func NewTermCacheRepository(client *redis.Client, expiration time.Duration) *TermCacheRepository {
	return &TermCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached term by keyword
func (r *TermCacheRepository) Get(ctx context.Context, keyword string) (*models.Term, error) {
	key := termCacheKeyPrefix + keyword

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var term models.Term
	if err := json.Unmarshal(val, &term); err != nil {
		logger.Log.Infow("cache get", "key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "result", term.ID)
	return &term, nil
}

// Set caches a term under its keyword
func (r *TermCacheRepository) Set(ctx context.Context, term *models.Term) error {
	key := termCacheKeyPrefix + term.Keyword

	data, err := json.Marshal(term)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}

// Delete drops the cached entries for the given keywords
func (r *TermCacheRepository) Delete(ctx context.Context, keywords ...string) error {
	if len(keywords) == 0 {
		return nil
	}

	keys := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		keys = append(keys, termCacheKeyPrefix+kw)
	}

	err := r.client.Del(ctx, keys...).Err()
	logger.Log.Infow("cache delete", "keys", keys, "error", err)

	return err
}
