package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BoysInc/volair-dashboard-sub000/config"
	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Cache keys mirrored after every flight mutation. Both are invalidated
// together so list views and dashboard cards reconcile with backend truth.
const (
	FlightsKey       = "flights"
	FlightWidgetsKey = "flightWidgets"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, FlightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, FlightsKey, payload, c.ttl).Err()
}

func (c *RedisCache) GetWidgets(ctx context.Context) (*domain.FlightWidgets, error) {
	data, err := c.client.Get(ctx, FlightWidgetsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var widgets domain.FlightWidgets
	if err := json.Unmarshal(data, &widgets); err != nil {
		return nil, err
	}
	return &widgets, nil
}

func (c *RedisCache) SetWidgets(ctx context.Context, widgets *domain.FlightWidgets) error {
	payload, err := json.Marshal(widgets)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, FlightWidgetsKey, payload, c.ttl).Err()
}

// InvalidateFlightData drops both mirrored keys after a flight mutation.
func (c *RedisCache) InvalidateFlightData(ctx context.Context) error {
	return c.client.Del(ctx, FlightsKey, FlightWidgetsKey).Err()
}
