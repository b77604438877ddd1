package ports

import (
	"context"
)

// Notification is a user-facing message pushed when something happens to an
// order, for example a status change or a dispatcher assignment.
type Notification struct {
	// Title is the short headline shown to the user.
	Title string
	// Body is the full message text.
	Body string
	// Tag groups related notifications so newer ones replace older ones.
	Tag string
	// URL points at the order or delivery the notification is about.
	URL string
	// Metadata carries extra key-value context for the client.
	Metadata map[string]string
}

// NotificationPublisher pushes notifications to users.
// Publishing is best effort: callers fire notifications after a transaction
// commits and log failures instead of rolling back business state.
type NotificationPublisher interface {
	// Publish sends a notification to the user with the given identifier.
	Publish(ctx context.Context, userID string, notification Notification) error
}
