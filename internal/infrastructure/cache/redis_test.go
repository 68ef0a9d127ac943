package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/despachosys-api/pkg/config"
)

func unreachable() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestStatsCache_ErrorDeConexion(t *testing.T) {
	client := unreachable()
	defer client.Close()
	c := NewStatsCache(client, 0)
	assert.Equal(t, 30*time.Second, c.ttl)

	stats, ok, err := c.Get(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, stats)
	assert.Error(t, c.Invalidate(context.Background()))
}

func TestNewClient_FallaSinServidor(t *testing.T) {
	_, err := NewClient(config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
