package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Stats is a snapshot of the site counters.
type Stats struct {
	Views        int64 `json:"views"`
	TogglesDark  int64 `json:"toggles_dark"`
	TogglesLight int64 `json:"toggles_light"`
}

// IncrementViews counts one rendered page.
func (s *Store) IncrementViews(ctx context.Context) error {
	if err := s.client.Incr(ctx, KeyViews).Err(); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// IncrementToggles counts one theme toggle by its outcome.
func (s *Store) IncrementToggles(ctx context.Context, dark bool) error {
	if err := s.client.Incr(ctx, ToggleKey(dark)).Err(); err != nil {
		return fmt.Errorf("failed to increment toggles: %w", err)
	}
	return nil
}

// GetStats reads all counters in one round trip. Missing counters read as zero.
func (s *Store) GetStats(ctx context.Context) (Stats, error) {
	pipe := s.client.Pipeline()
	views := pipe.Get(ctx, KeyViews)
	dark := pipe.Get(ctx, KeyTogglesDark)
	light := pipe.Get(ctx, KeyTogglesLight)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return Stats{}, fmt.Errorf("failed to read stats: %w", err)
	}

	return Stats{
		Views:        counter(views),
		TogglesDark:  counter(dark),
		TogglesLight: counter(light),
	}, nil
}

func counter(cmd *redis.StringCmd) int64 {
	n, err := cmd.Int64()
	if err != nil {
		return 0
	}
	return n
}
