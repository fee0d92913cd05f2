// Package cache implementa la caché de lectura del catálogo sobre Redis (cache-aside).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-tracker/internal/application/ports"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/pkg/config"
)

var _ ports.CatalogCache = (*RedisCatalogCache)(nil)

const (
	DefaultPrefix = "pos:"
	DefaultTTL    = 15 * time.Minute
)

// NewRedisClient crea el cliente desde REDIS_URL o, en su defecto, REDIS_ADDR y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisCatalogCache guarda artículos y marcas serializados en JSON con TTL.
// Los errores de Redis se registran y se tratan como miss: la base de datos es la fuente de verdad.
type RedisCatalogCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCatalogCache construye la caché. ttl <= 0 usa DefaultTTL.
func NewRedisCatalogCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCatalogCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCatalogCache{client: client, prefix: prefix, ttl: ttl}
}

// setIfNotOlder escribe KEYS[1] salvo que el valor actual tenga Version > ARGV[2].
var setIfNotOlder = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
	local ok, obj = pcall(cjson.decode, cur)
	if ok and type(obj) == 'table' and tonumber(obj['Version']) and tonumber(obj['Version']) > tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

func (c *RedisCatalogCache) itemKey(id string) string  { return c.prefix + "item:" + id }
func (c *RedisCatalogCache) brandKey(id string) string { return c.prefix + "brand:" + id }

func (c *RedisCatalogCache) GetItem(ctx context.Context, id string) (*entity.InventoryItem, bool) {
	var it entity.InventoryItem
	if !c.get(ctx, c.itemKey(id), &it) {
		return nil, false
	}
	return &it, true
}

// SetItem guarda el artículo salvo que la caché ya tenga una versión más nueva.
func (c *RedisCatalogCache) SetItem(ctx context.Context, item *entity.InventoryItem) {
	key := c.itemKey(item.ID)
	data, err := json.Marshal(item)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: marshal falló")
		return
	}
	if err := setIfNotOlder.Run(ctx, c.client, []string{key}, data, item.Version, c.ttl.Milliseconds()).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: set falló")
	}
}

func (c *RedisCatalogCache) InvalidateItem(ctx context.Context, id string) {
	c.del(ctx, c.itemKey(id))
}

func (c *RedisCatalogCache) GetBrand(ctx context.Context, id string) (*entity.Brand, bool) {
	var b entity.Brand
	if !c.get(ctx, c.brandKey(id), &b) {
		return nil, false
	}
	return &b, true
}

func (c *RedisCatalogCache) SetBrand(ctx context.Context, brand *entity.Brand) {
	c.set(ctx, c.brandKey(brand.ID), brand)
}

func (c *RedisCatalogCache) InvalidateBrand(ctx context.Context, id string) {
	c.del(ctx, c.brandKey(id))
}

func (c *RedisCatalogCache) get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("cache: get falló")
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: valor corrupto")
		c.del(ctx, key)
		return false
	}
	return true
}

func (c *RedisCatalogCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: marshal falló")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: set falló")
	}
}

func (c *RedisCatalogCache) del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: invalidación falló")
	}
}
