package cache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Enabled  bool
}

// Client caches calendar responses and admin auth lookups in Redis/Valkey
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

const adminsAuthHashKey = "admins:auth"

func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to cache: %w", err)
	}

	return &Client{rdb: rdb, ttl: cfg.TTL}, nil
}

func calendarKey(entity string, year, month int) string {
	return fmt.Sprintf("cal:%s:%d:%02d", entity, year, month)
}

// GetCalendarRaw returns the cached calendar JSON for an entity/month, or
// an error on miss. Raw bytes are kept to skip re-marshaling on hits.
func (c *Client) GetCalendarRaw(ctx context.Context, entity string, year, month int) ([]byte, error) {
	return c.rdb.Get(ctx, calendarKey(entity, year, month)).Bytes()
}

// SetCalendar stores a calendar response with the configured TTL.
// Failures are logged and swallowed; caching is best-effort.
func (c *Client) SetCalendar(ctx context.Context, entity string, year, month int, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to marshal calendar response for cache", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, calendarKey(entity, year, month), payload, c.ttl).Err(); err != nil {
		slog.Warn("Failed to cache calendar response", "entity", entity, "error", err)
	}
}

// InvalidateCalendar drops every cached month for an entity. Called after
// any mutation so stale grids never outlive a write.
func (c *Client) InvalidateCalendar(ctx context.Context, entity string) {
	pattern := fmt.Sprintf("cal:%s:*", entity)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("Failed to invalidate calendar cache key", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("Calendar cache invalidation scan failed", "entity", entity, "error", err)
	}
}

// GetAdminIDByAuth looks up an admin id by email and password hash in the
// auth hash, mirroring the fast path used by the BasicAuth middleware.
func (c *Client) GetAdminIDByAuth(ctx context.Context, email, passwordHash string) (int64, error) {
	authString := fmt.Sprintf("%s:%s", email, passwordHash)
	cacheKey := base64.StdEncoding.EncodeToString([]byte(authString))

	idStr, err := c.rdb.HGet(ctx, adminsAuthHashKey, cacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("admin not found in cache")
		}
		return 0, fmt.Errorf("cache lookup error: %w", err)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid admin ID in cache: %w", err)
	}
	return id, nil
}

// SetAdminAuth stores an admin auth entry for the fast path
func (c *Client) SetAdminAuth(ctx context.Context, email, passwordHash string, adminID int64) error {
	authString := fmt.Sprintf("%s:%s", email, passwordHash)
	cacheKey := base64.StdEncoding.EncodeToString([]byte(authString))
	return c.rdb.HSet(ctx, adminsAuthHashKey, cacheKey, strconv.FormatInt(adminID, 10)).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
