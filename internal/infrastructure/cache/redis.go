package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"career-navigator/internal/config"
	"career-navigator/internal/domain/roadmap"
)

// Redis is a read-through cache for saved roadmap rows. When the server is
// unreachable every operation degrades to a no-op miss, so the rest of the
// system behaves as if no cache existed.
type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

// NewRedisWithClient wraps an existing client; tests hand in miniredis here.
func NewRedisWithClient(client *redis.Client, logger *log.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

func roadmapKey(userID string) string {
	return "roadmaps:user:" + userID
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// GetRoadmaps returns the cached rows for a user. The second return reports
// whether the key was present; a bypassed cache always misses.
func (r *Redis) GetRoadmaps(ctx context.Context, userID string) ([]roadmap.SavedRow, bool, error) {
	if r.isUnavailable() {
		return nil, false, nil
	}

	b, err := r.client.Get(ctx, roadmapKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		r.warnUnavailableOnce(err)
		return nil, false, err
	}

	var rows []roadmap.SavedRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

func (r *Redis) SetRoadmaps(ctx context.Context, userID string, rows []roadmap.SavedRow) error {
	if r.isUnavailable() {
		return nil
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, roadmapKey(userID), b, DefaultTTLFromEnv()).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// InvalidateUser drops a user's cached rows after a roadmap save.
func (r *Redis) InvalidateUser(ctx context.Context, userID string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, roadmapKey(userID)).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func DefaultTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("REDIS_TTL"))
	if raw == "" {
		return 600 * time.Second
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 600 * time.Second
	}
	return time.Duration(v) * time.Second
}
