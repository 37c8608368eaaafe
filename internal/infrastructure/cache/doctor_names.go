package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const doctorNamesKey = "clinic:doctor:names"

// DoctorNameCache keeps the ordered doctor-name listing in Redis for a
// short TTL. Account creation invalidates it.
type DoctorNameCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDoctorNameCache(client *redis.Client, ttl time.Duration) *DoctorNameCache {
	return &DoctorNameCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a cache miss.
func (c *DoctorNameCache) Get(ctx context.Context) ([]string, error) {
	raw, err := c.client.Get(ctx, doctorNamesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *DoctorNameCache) Set(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, doctorNamesKey, raw, c.ttl).Err()
}

func (c *DoctorNameCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, doctorNamesKey).Err()
}
