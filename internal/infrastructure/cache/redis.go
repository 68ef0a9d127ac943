// Package cache guarda en Redis el snapshot de estadísticas del tablero.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/despachosys-api/internal/application/dto"
	"github.com/jhoicas/despachosys-api/pkg/config"
)

const statsKey = "despachosys:dashboard:stats"

// NewClient abre la conexión y verifica con PING.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// StatsCache implementa analytics.StatsCache.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache ttl <= 0 usa 30 segundos.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get devuelve (nil, false, nil) si la clave no existe o expiró.
func (c *StatsCache) Get(ctx context.Context) (*dto.DashboardStatsDTO, bool, error) {
	data, err := c.client.Get(ctx, statsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var stats dto.DashboardStatsDTO
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, false, fmt.Errorf("redis: decodificar estadísticas: %w", err)
	}
	return &stats, true, nil
}

// Set guarda el snapshot con el TTL configurado.
func (c *StatsCache) Set(ctx context.Context, stats *dto.DashboardStatsDTO) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, data, c.ttl).Err()
}

// Invalidate borra el snapshot.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsKey).Err()
}
