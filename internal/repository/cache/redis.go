package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pattaya-dashboard/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// pingTimeout ограничивает проверку соединения при старте
const pingTimeout = 5 * time.Second

// Redis хранит клиент кеша готовых представлений дашборда
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается к Redis и проверяет соединение. Вызывается, только если кеш включен в конфигурации.
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	addr := cfg.Addr()
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	logger.Info("Redis connected", zap.String("addr", addr), zap.Int("db", cfg.DB))

	return NewRedisFromClient(client, logger), nil
}

// NewRedisFromClient оборачивает уже созданный клиент
func NewRedisFromClient(client *redis.Client, logger *zap.Logger) *Redis {
	return &Redis{
		client: client,
		logger: logger,
	}
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}

func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
