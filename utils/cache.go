package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"marine-trading-backend/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

// ListCacheKey builds a deterministic cache key for a filtered-list query:
// resource prefix plus a hash of the sorted filter set and paging.
func ListCacheKey(resourceType string, filters map[string]string, page, pageSize int) string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	query := fmt.Sprintf("resource=%s&page=%d&page_size=%d", resourceType, page, pageSize)
	for _, k := range keys {
		query += fmt.Sprintf("&%s=%s", k, filters[k])
	}

	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("%s:%s", resourceType, hex.EncodeToString(sum[:]))
}

// GetCachedList loads a cached list response into out. Returns false on a
// miss or when caching is off (nil client).
func GetCachedList(ctx context.Context, rdb *redis.Client, key string, out interface{}) bool {
	if rdb == nil {
		return false
	}
	payload, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		config.Logger.Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		rdb.Del(ctx, key)
		return false
	}
	return true
}

// SetCachedList stores a list response with a short TTL.
func SetCachedList(ctx context.Context, rdb *redis.Client, key string, value interface{}) {
	if rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		config.Logger.Warn("Could not marshal cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := rdb.Set(ctx, key, payload, listCacheTTL).Err(); err != nil {
		config.Logger.Warn("Could not store cache entry", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateCache deletes all cached keys for the given resource type.
// SCAN rather than KEYS, so a large keyspace never blocks redis.
func InvalidateCache(ctx context.Context, rdb *redis.Client, resourceType string) error {
	if rdb == nil {
		return nil
	}
	iter := rdb.Scan(ctx, 0, fmt.Sprintf("%s:*", resourceType), 0).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("error during SCAN iteration: %w", err)
	}
	return nil
}

// InvalidateCacheAsync invalidates without blocking the write path.
func InvalidateCacheAsync(rdb *redis.Client, resourceType string) {
	go func() {
		if err := InvalidateCache(context.Background(), rdb, resourceType); err != nil {
			config.Logger.Warn("Cache invalidation failed",
				zap.String("resourceType", resourceType), zap.Error(err))
		}
	}()
}
