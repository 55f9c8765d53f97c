package redisclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

type RedisClient struct {
	connAttempts int
	connTimeout  time.Duration

	url string

	Client *redis.Client
}

func New(ctx context.Context, url string, opts ...Option) (*RedisClient, error) {
	rc := &RedisClient{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		url:          url,
	}

	for _, opt := range opts {
		opt(rc)
	}

	var err error
	for rc.connAttempts > 0 {
		err = rc.connect(ctx)
		if err == nil {
			break
		}

		log.Printf("Redis is trying to connect, attempts left: %d", rc.connAttempts)

		time.Sleep(rc.connTimeout)

		rc.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("RedisClient - New - connAttempts == 0: %w", err)
	}

	return rc, nil
}

func (r *RedisClient) connect(ctx context.Context) error {
	opts, err := redis.ParseURL(r.url)
	if err != nil {
		return fmt.Errorf("RedisClient - redis.ParseURL: %w", err)
	}

	r.Client = redis.NewClient(opts)

	// check connection
	err = r.Client.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("RedisClient - r.Client.Ping: %w", err)
	}

	return nil
}

func (r *RedisClient) Close() error {
	return r.Client.Close()
}
