package photo

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ThumbnailChannel wakes the thumbnail worker when an upload could not be
// thumbnailed inline.
const ThumbnailChannel = "photos:thumbnail"

// ThumbnailPublisher announces photos that still need a thumbnail
type ThumbnailPublisher interface {
	Publish(ctx context.Context, photoID string) error
}

type redisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher returns a publisher on ThumbnailChannel, or nil when
// Redis is not configured.
func NewRedisPublisher(client *redis.Client) ThumbnailPublisher {
	if client == nil {
		return nil
	}
	return &redisPublisher{client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, photoID string) error {
	return p.client.Publish(ctx, ThumbnailChannel, photoID).Err()
}
