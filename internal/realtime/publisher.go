package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type ToastAction struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ToastPayload is the wire shape pushed on the per-user broadcast channel.
type ToastPayload struct {
	ID         string       `json:"id"`
	Kind       string       `json:"kind"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	DurationMs int          `json:"durationMs,omitempty"`
	Persistent bool         `json:"persistent,omitempty"`
	Action     *ToastAction `json:"action,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

// Publisher pushes toasts to whoever is listening right now. Delivery is
// best-effort; the durable notification row is the contract.
type Publisher interface {
	PublishToast(ctx context.Context, userID string, toast ToastPayload) error
}

type redisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) Publisher {
	return &redisPublisher{rdb: rdb}
}

func userChannel(userID string) string {
	return fmt.Sprintf("user:%s:toast", userID)
}

func (p *redisPublisher) PublishToast(ctx context.Context, userID string, toast ToastPayload) error {
	payload, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("marshal toast payload: %w", err)
	}

	if err := p.rdb.Publish(ctx, userChannel(userID), payload).Err(); err != nil {
		return fmt.Errorf("publish toast: %w", err)
	}

	return nil
}
