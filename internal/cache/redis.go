package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/carbooking/config"
	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client  *redis.Client
	carsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, carsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		carsTTL: carsTTL,
	}
}

func (c *RedisCache) GetCars(ctx context.Context) ([]domain.Car, error) {
	data, err := c.client.Get(ctx, carsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cars []domain.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *RedisCache) SetCars(ctx context.Context, cars []domain.Car) error {
	payload, err := json.Marshal(cars)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, carsKey(), payload, c.carsTTL).Err()
}

// InvalidateCars drops the cached listing after an admin write.
func (c *RedisCache) InvalidateCars(ctx context.Context) error {
	return c.client.Del(ctx, carsKey()).Err()
}

func carsKey() string {
	return "cache:cars"
}
