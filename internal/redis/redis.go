// Package redis dials the backend that holds session state. Everything
// above it goes through session.Store; this package only owns
// connection setup.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check. Sessions cannot
// be issued without the store, so a dead backend fails fast.
const pingTimeout = 2 * time.Second

type Client struct {
	*goredis.Client
}

// New connects and verifies the server answers before the service
// starts accepting logins.
func New(addr, password string) (*Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}

	return &Client{Client: client}, nil
}
