package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPageTTL is used when CachePage is given a non-positive TTL.
const DefaultPageTTL = 10 * time.Minute

// Store handles the Redis side of the site: view statistics and the
// rendered page cache.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
