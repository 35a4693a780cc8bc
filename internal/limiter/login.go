// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package limiter throttles failed logins with fixed windows stored in Redis.
package limiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "portfolio:login:"

var ErrLimiterUnavailable = errors.New("login limiter unavailable")

// LoginLimiter counts failed logins per key. The window starts at the first
// failure and is not extended by later ones.
type LoginLimiter struct {
	redis       redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

func NewLoginLimiter(client redis.Cmdable, cfg config.Limiter) *LoginLimiter {
	return &LoginLimiter{
		redis:       client,
		maxAttempts: int64(cfg.LoginAttempts),
		window:      cfg.LoginWindow,
	}
}

// NewRedisClient connects to the configured Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	return client, nil
}

func (l *LoginLimiter) key(k string) string {
	return keyPrefix + k
}

// Allow reports whether fewer than maxAttempts failures were recorded for
// key in the current window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.redis.Get(ctx, l.key(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	return count < l.maxAttempts, nil
}

// RecordFailure counts one failed login. The counter and its TTL are written
// in one transaction; NX keeps an existing window and repairs a counter that
// was left without one.
func (l *LoginLimiter) RecordFailure(ctx context.Context, key string) error {
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, l.key(key))
		pipe.ExpireNX(ctx, l.key(key), l.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	return nil
}

func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.redis.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	return nil
}
