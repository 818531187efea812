package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"github.com/redis/go-redis/v9"
)

const mesasKey = "mesas:all"

// MesaCache keeps the full table list in Redis for the duration of one UI
// polling interval. A cache miss is not an error; callers fall through to
// the store.
type MesaCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMesaCache(client *redis.Client, ttl time.Duration) *MesaCache {
	return &MesaCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *MesaCache) GetMesas(ctx context.Context) ([]domain.Mesa, bool, error) {
	b, err := c.client.Get(ctx, mesasKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read mesas cache: %w", err)
	}

	var mesas []domain.Mesa
	if err := json.Unmarshal(b, &mesas); err != nil {
		return nil, false, fmt.Errorf("failed to decode mesas cache: %w", err)
	}

	return mesas, true, nil
}

func (c *MesaCache) SetMesas(ctx context.Context, mesas []domain.Mesa) error {
	b, err := json.Marshal(mesas)
	if err != nil {
		return fmt.Errorf("failed to encode mesas cache: %w", err)
	}

	if err := c.client.Set(ctx, mesasKey, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write mesas cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached list; called after every mutation.
func (c *MesaCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, mesasKey).Err()
}
