package event

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/ssengur01/TalentFlows/pkg/config"
)

// Publisher sends a serialized domain event to the bus. Implementations
// must be safe for concurrent use by the dispatcher.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// RedisPublisher publishes events onto a Redis Stream, one stream per topic.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a publisher from the Redis configuration.
func NewRedisPublisher(cfg *config.RedisConfig) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisPublisher{client: client}
}

// Publish appends the payload to the topic's stream.
func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]interface{}{"payload": payload},
	}).Err()
}

// Close releases the underlying connection pool.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
