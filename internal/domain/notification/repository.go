package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

// Publisher is the fire-and-forget sink other services write through. The
// implementation persists the notification and fans it out over SSE; a
// delivery failure is logged, never propagated to the calling action.
type Publisher interface {
	Notify(ctx context.Context, userID string, kind Kind, title, message string, refID *string)
	NotifyAdmins(ctx context.Context, kind Kind, title, message string, refID *string)
}

// NotificationService defines the feed operations for the owning user.
type NotificationService interface {
	Publisher
	List(ctx context.Context) (ListNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}
