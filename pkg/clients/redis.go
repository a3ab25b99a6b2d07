package clients

import (
	"context"

	"github.com/ananas-shop/commerce-backend/internal/cfg"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	r "github.com/redis/go-redis/v9"
)

// RedisClient оборачивает go-redis клиент, чтобы репозитории
// не зависели от пакета конфигурации.
type RedisClient struct {
	Client *r.Client
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	return &RedisClient{
		Client: r.NewClient(&r.Options{
			Addr:         cfg.Addr,
			Username:     cfg.User,
			Password:     cfg.Password,
			DB:           cfg.DB,
			MaxRetries:   cfg.MaxRetries,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		}),
	}
}

// Ping проверяет доступность Redis при старте приложения.
func (c *RedisClient) Ping(ctx context.Context) error {
	const op = "RedisClient.Ping"

	if err := c.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}
