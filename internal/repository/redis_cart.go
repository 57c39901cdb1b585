package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
)

const (
	cartKeyPrefix = "cart:"

	maxRetries      = 3
	minRetryBackoff = 100 * time.Millisecond
	maxRetryBackoff = 300 * time.Millisecond
	dialTimeout     = 5 * time.Second
	readTimeout     = 3 * time.Second
	writeTimeout    = 3 * time.Second
)

// ConnectRedis connects to the Redis server and verifies the connection.
func ConnectRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              db,
		MaxRetries:      maxRetries,
		MinRetryBackoff: minRetryBackoff,
		MaxRetryBackoff: maxRetryBackoff,
		DialTimeout:     dialTimeout,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// RedisCartRepository stores each session's cart as a JSON-serialized line
// item list under one key with a session TTL.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartRepository creates a Redis-backed cart repository.
func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

// Load returns the session's cart. A missing key, a storage error, or a
// corrupt payload all degrade to an empty cart; the latter two are logged.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) *model.Cart {
	data, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("Could not restore cart")
		}
		return model.NewCart()
	}

	var items []model.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Corrupt cart payload, starting empty")
		return model.NewCart()
	}
	return &model.Cart{Items: items}
}

// Save writes the full cart under the session key, refreshing the TTL.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart *model.Cart) error {
	data, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKeyPrefix+sessionID, data, r.ttl).Err()
}

// Delete removes the session's cart key.
func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKeyPrefix+sessionID).Err()
}
