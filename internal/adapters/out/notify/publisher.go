// Package notify pushes user notifications through Redis pub/sub.
// Each user has a dedicated channel that clients subscribe to; publishing
// is fire-and-forget with no delivery guarantee for offline subscribers.
package notify

import (
	"context"
	"encoding/json"

	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "notifications:"

// notificationMessage is the wire format published to the user channel.
type notificationMessage struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Tag      string            `json:"tag,omitempty"`
	URL      string            `json:"url,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// RedisNotificationPublisher implements NotificationPublisher using Redis pub/sub.
type RedisNotificationPublisher struct {
	client *redis.Client
}

// NewRedisNotificationPublisher creates a publisher on an existing Redis client.
func NewRedisNotificationPublisher(client *redis.Client) *RedisNotificationPublisher {
	return &RedisNotificationPublisher{client: client}
}

// Channel returns the pub/sub channel name for a user.
func Channel(userID string) string {
	return channelPrefix + userID
}

// Publish sends a notification to the user's channel as a JSON payload.
func (p *RedisNotificationPublisher) Publish(
	ctx context.Context,
	userID string,
	notification ports.Notification,
) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	payload, err := json.Marshal(notificationMessage{
		Title:    notification.Title,
		Body:     notification.Body,
		Tag:      notification.Tag,
		URL:      notification.URL,
		Metadata: notification.Metadata,
	})
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, Channel(userID), payload).Err()
}
