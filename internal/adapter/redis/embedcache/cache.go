// Package embedcache caches text embeddings in Redis in front of an
// embedding provider.
package embedcache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/minutes-backend/internal/metrics"
)

const defaultTTL = 24 * time.Hour

// Embedder is the provider being cached.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cache is an Embedder that consults Redis before the wrapped provider.
// Redis failures never fail a call; they fall through to the provider.
type Cache struct {
	client  redis.Cmdable
	next    Embedder
	prefix  string
	model   string
	ttl     time.Duration
	metrics *metrics.Metrics
	log     *slog.Logger
}

// Options configures a Cache.
type Options struct {
	// Prefix is prepended to every key.
	Prefix string
	// Model namespaces keys so switching models does not serve stale vectors.
	Model string
	TTL   time.Duration
}

// New wraps next with a Redis cache.
func New(client redis.Cmdable, next Embedder, opts Options, m *metrics.Metrics, logger *slog.Logger) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	return &Cache{
		client:  client,
		next:    next,
		prefix:  opts.Prefix,
		model:   opts.Model,
		ttl:     opts.TTL,
		metrics: m,
		log:     logger.With("adapter", "embedcache"),
	}
}

// NewClient parses a redis:// URL and checks connectivity.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// Embed returns the cached vector for text or computes and stores it.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	key := c.key(text)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if vec, ok := decode(raw); ok {
			c.metrics.IncEmbeddingCache("hit")
			return vec, nil
		}
		c.log.WarnContext(ctx, "discarding malformed cache entry", slog.String("key", key))
		c.metrics.IncEmbeddingCache("error")
	case errors.Is(err, redis.Nil):
		c.metrics.IncEmbeddingCache("miss")
	default:
		c.metrics.IncEmbeddingCache("error")
		c.log.WarnContext(ctx, "embedding cache read failed", slog.String("error", err.Error()))
	}

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, encode(vec), c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "embedding cache write failed", slog.String("error", err.Error()))
	}
	return vec, nil
}

func (c *Cache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return c.prefix + c.model + ":" + hex.EncodeToString(sum[:])
}

// encode packs the vector as little-endian float32s.
func encode(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func decode(buf []byte) ([]float32, bool) {
	if len(buf) == 0 || len(buf)%4 != 0 {
		return nil, false
	}
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vec, true
}
