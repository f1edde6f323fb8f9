package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
)

// Store counts hits per key within a fixed window
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisStore is a fixed-window counter backed by Redis INCR + EXPIRE
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns nil when client is nil, which disables limiting
func NewRedisStore(client *redis.Client) Store {
	if client == nil {
		return nil
	}
	return &RedisStore{client: client}
}

// Incr bumps the counter and arms its expiry in one MULTI. EXPIRE NX only
// sets a TTL when the key has none, so a key never outlives its window.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Limiter allows up to limit hits per window for each key
type Limiter struct {
	store  Store
	name   string
	limit  int
	window time.Duration
}

// New creates a limiter. name namespaces its keys (e.g. "upload", "verify").
func New(store Store, name string, limit int, window time.Duration) *Limiter {
	return &Limiter{store: store, name: name, limit: limit, window: window}
}

// Allow reports whether id may proceed. Fails open when the store is
// unavailable.
func (l *Limiter) Allow(ctx context.Context, id string) bool {
	if l == nil || l.store == nil || l.limit <= 0 {
		return true
	}

	key := fmt.Sprintf("ratelimit:%s:%s", l.name, id)
	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		log.Warn().Err(err).Str("limiter", l.name).Msg("Rate limiter unavailable, allowing request")
		return true
	}

	return count <= int64(l.limit)
}

// Middleware rejects requests over the limit with 429, keyed by client IP
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(r.Context(), ClientIP(r)) {
			response.TooManyRequests(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the host part of RemoteAddr (set by chi's RealIP middleware)
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
