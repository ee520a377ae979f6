// Package ratelimit cuenta intentos de login fallidos por clave
// (usuario + IP) dentro de una ventana fija.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/gym-manager/internal/config"
)

// Limiter solo cuenta fallos: un login correcto resetea la clave.
type Limiter interface {
	// Allow indica si la clave puede intentarlo otra vez.
	Allow(ctx context.Context, key string) (bool, error)

	Fail(ctx context.Context, key string) error

	Reset(ctx context.Context, key string) error
}

// New elige Redis si hay REDIS_URL y memoria en caso contrario.
func New(cfg *config.Config) (Limiter, error) {
	if cfg.RedisURL == "" {
		return NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow, nil), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("login limiter using redis")
	return NewRedisLimiter(client, cfg.LoginMaxAttempts, cfg.LoginWindow), nil
}

func Key(username, ip string) string {
	return username + "|" + ip
}
