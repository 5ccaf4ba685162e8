package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout = 2 * time.Second
	// generations must outlive any in-flight read-through of the same day
	generationTTL = 48 * time.Hour
)

// putIfCurrent writes the day only while the generation still matches the
// one the reader saw on its miss. Invalidate bumps the generation.
var putIfCurrent = redis.NewScript(`
local gen = redis.call('GET', KEYS[1]) or '0'
if gen ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// Observer receives one result label per cache operation.
type Observer interface {
	ObserveSlotCache(result string)
}

// SlotCache is what availability reads and booking writes need from a cache.
// Get returns the generation of the day; Put must echo it back so a fill that
// raced an Invalidate is dropped instead of resurrecting stale data.
type SlotCache interface {
	Get(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time) ([]time.Time, int64, bool)
	Put(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time, gen int64, booked []time.Time)
	Invalidate(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time)
}

// NewRedisClient dials and pings Redis. Callers fall back to NopSlotCache on error.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "ping redis at %s", cfg.Addr)
	}
	return client, nil
}

// RedisSlotCache stores the confirmed starts of one staff day as a JSON array.
// Candidates are never cached, so "now" filtering stays exact.
type RedisSlotCache struct {
	client   redis.UniversalClient
	ttl      time.Duration
	observer Observer
}

func NewRedisSlotCache(client redis.UniversalClient, ttl time.Duration, observer Observer) *RedisSlotCache {
	return &RedisSlotCache{client: client, ttl: ttl, observer: observer}
}

func Key(tenantID, staffID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("slots:%s:%s:%s", tenantID, staffID, day.UTC().Format(time.DateOnly))
}

func GenerationKey(tenantID, staffID uuid.UUID, day time.Time) string {
	return Key(tenantID, staffID, day) + ":gen"
}

// Get reads the generation before the payload, so a miss always carries the
// generation that was current before the caller goes to the store.
func (c *RedisSlotCache) Get(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time) ([]time.Time, int64, bool) {
	gen, err := c.client.Get(ctx, GenerationKey(tenantID, staffID, day)).Int64()
	if err != nil && !errs.Is(err, redis.Nil) {
		c.fail("get", err)
		return nil, -1, false
	}

	raw, err := c.client.Get(ctx, Key(tenantID, staffID, day)).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			c.observe("miss")
			return nil, gen, false
		}
		c.fail("get", err)
		return nil, -1, false
	}

	var booked []time.Time
	if err := json.Unmarshal(raw, &booked); err != nil {
		c.fail("decode", err)
		return nil, gen, false
	}
	c.observe("hit")
	return booked, gen, true
}

// Put fills the day unless it was invalidated after the Get that returned gen.
// A negative gen means the Get failed and nothing is written.
func (c *RedisSlotCache) Put(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time, gen int64, booked []time.Time) {
	if gen < 0 {
		return
	}
	if booked == nil {
		booked = []time.Time{}
	}
	raw, err := json.Marshal(booked)
	if err != nil {
		c.fail("encode", err)
		return
	}
	keys := []string{GenerationKey(tenantID, staffID, day), Key(tenantID, staffID, day)}
	written, err := putIfCurrent.Run(ctx, c.client, keys, gen, raw, c.ttl.Milliseconds()).Int()
	if err != nil {
		c.fail("set", err)
		return
	}
	if written == 0 {
		c.observe("stale")
		return
	}
	c.observe("write")
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time) {
	genKey := GenerationKey(tenantID, staffID, day)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, Key(tenantID, staffID, day))
		return nil
	})
	if err != nil {
		c.fail("del", err)
	}
}

func (c *RedisSlotCache) fail(op string, err error) {
	slog.Warn("slot cache operation failed", "op", op, "error", err.Error())
	c.observe("error")
}

func (c *RedisSlotCache) observe(result string) {
	if c.observer != nil {
		c.observer.ObserveSlotCache(result)
	}
}

// NopSlotCache is used when Redis is not configured.
type NopSlotCache struct{}

func (NopSlotCache) Get(context.Context, uuid.UUID, uuid.UUID, time.Time) ([]time.Time, int64, bool) {
	return nil, -1, false
}

func (NopSlotCache) Put(context.Context, uuid.UUID, uuid.UUID, time.Time, int64, []time.Time) {}

func (NopSlotCache) Invalidate(context.Context, uuid.UUID, uuid.UUID, time.Time) {}
