package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachePage stores a rendered page.
func (s *Store) CachePage(ctx context.Context, revision, theme string, html []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	if err := s.client.Set(ctx, PageKey(revision, theme), html, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}

// GetCachedPage returns a rendered page, or nil on a cache miss.
func (s *Store) GetCachedPage(ctx context.Context, revision, theme string) ([]byte, error) {
	html, err := s.client.Get(ctx, PageKey(revision, theme)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return html, nil
}

// FlushPages removes every cached page, used after a catalog reload.
func (s *Store) FlushPages(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixPage+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete page key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush pages: %w", err)
	}
	return nil
}
