package cache

import (
	"context"
	"sync"
	"time"

	"marcenaria_site/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 30 * time.Second

// RedisSubmissionGuard shares the in-flight lock between replicas. The TTL frees a lock
// whose holder died before releasing it.
type RedisSubmissionGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.ISubmissionGuard = (*RedisSubmissionGuard)(nil)

func NewRedisSubmissionGuard(rdb *redis.Client, ttl time.Duration) *RedisSubmissionGuard {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisSubmissionGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisSubmissionGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339Nano), g.ttl).Result()
}

func (g *RedisSubmissionGuard) Release(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, key).Err()
}

// MemorySubmissionGuard is the single-process fallback.
type MemorySubmissionGuard struct {
	mu    sync.Mutex
	held  map[string]time.Time
	ttl   time.Duration
	clock func() time.Time
}

var _ interfaces.ISubmissionGuard = (*MemorySubmissionGuard)(nil)

func NewMemorySubmissionGuard(ttl time.Duration) *MemorySubmissionGuard {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &MemorySubmissionGuard{held: make(map[string]time.Time), ttl: ttl, clock: time.Now}
}

func (g *MemorySubmissionGuard) Acquire(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	if exp, ok := g.held[key]; ok && now.Before(exp) {
		return false, nil
	}
	g.held[key] = now.Add(g.ttl)
	return true, nil
}

func (g *MemorySubmissionGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	delete(g.held, key)
	g.mu.Unlock()
	return nil
}
