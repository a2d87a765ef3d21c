package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Daniyal1234-alt/hotelops/config"
	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps the available-rooms listing warm. It is a read-side
// convenience only: booking correctness never depends on it.
type RedisCache struct {
	client   *redis.Client
	roomsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, roomsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		roomsTTL: roomsTTL,
	}
}

func (c *RedisCache) GetAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	data, err := c.client.Get(ctx, availableRoomsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisCache) SetAvailableRooms(ctx context.Context, rooms []domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availableRoomsKey(), payload, c.roomsTTL).Err()
}

// InvalidateAvailableRooms drops the cached listing after any room
// occupancy change.
func (c *RedisCache) InvalidateAvailableRooms(ctx context.Context) error {
	return c.client.Del(ctx, availableRoomsKey()).Err()
}

func availableRoomsKey() string {
	return "cache:rooms:available"
}
