package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"panorama/internal/model"
)

// SummaryCache caches generated analytics artifacts in Redis. Keys
// include the response count, so new responses naturally invalidate
// the entry without an explicit purge.
type SummaryCache interface {
	GetSummary(ctx context.Context, panoramaID string, responseCount int64) (*model.ExecutiveSummary, error)
	SetSummary(ctx context.Context, panoramaID string, responseCount int64, summary *model.ExecutiveSummary) error
	Clear(ctx context.Context, panoramaID string) error
}

type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new summary cache
func NewSummaryCache(client *redis.Client) SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *summaryCache) key(panoramaID string, responseCount int64) string {
	return fmt.Sprintf("panorama:%s:summary:%d", panoramaID, responseCount)
}

func (c *summaryCache) GetSummary(ctx context.Context, panoramaID string, responseCount int64) (*model.ExecutiveSummary, error) {
	data, err := c.client.Get(ctx, c.key(panoramaID, responseCount)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.ExecutiveSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *summaryCache) SetSummary(ctx context.Context, panoramaID string, responseCount int64, summary *model.ExecutiveSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(panoramaID, responseCount), data, c.ttl).Err()
}

func (c *summaryCache) Clear(ctx context.Context, panoramaID string) error {
	pattern := fmt.Sprintf("panorama:%s:summary:*", panoramaID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
