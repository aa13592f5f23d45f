// Package cache wraps the optional Redis connection reported by the readiness
// probe.
package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// New parses a redis:// URL. No connection is made until the first command.
func New(url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Client{rdb: redis.NewClient(opts)}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
