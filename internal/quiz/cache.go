package quiz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 10 * time.Minute

// RedisCache provides Redis-backed quiz caching so repeated generation
// requests for the same content and configuration skip the remote service.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// key hashes the normalized text so arbitrarily long content stays a fixed
// size, then appends every generation parameter.
func (c *RedisCache) key(req GenerateRequest) string {
	sum := sha256.Sum256([]byte(req.Text))

	kinds := make([]string, 0, len(req.Kinds))
	for _, k := range req.Kinds {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	return strings.Join([]string{
		"quiz",
		hex.EncodeToString(sum[:]),
		req.Difficulty,
		fmt.Sprintf("%d-%d-%d", req.Counts.MultipleChoice, req.Counts.TrueFalse, req.Counts.ShortAnswer),
		strings.Join(kinds, "|"),
	}, ":")
}

func (c *RedisCache) Get(ctx context.Context, req GenerateRequest) (*Quiz, error) {
	data, err := c.client.Get(ctx, c.key(req)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var q Quiz
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *RedisCache) Set(ctx context.Context, req GenerateRequest, q Quiz) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(req), data, c.ttl).Err()
}
