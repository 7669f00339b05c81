package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultFeedLimit = 50

type NotificationServiceImpl struct {
	notification.NotificationRepository
	userRepo user.UserRepository
	hub      *sse.Hub
}

func NewNotificationService(notificationRepository notification.NotificationRepository, userRepository user.UserRepository, hub *sse.Hub) notification.NotificationService {
	return &NotificationServiceImpl{
		NotificationRepository: notificationRepository,
		userRepo:               userRepository,
		hub:                    hub,
	}
}

// Notify implements notification.Publisher. Persistence or fan-out failure
// is logged and swallowed: the action that triggered the notification has
// already happened and must not be rolled back for it.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID string, kind notification.Kind, title, message string, refID *string) {
	n := notification.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
		RefID:   refID,
	}

	created, err := s.NotificationRepository.Create(ctx, n)
	if err != nil {
		slog.Error("failed to persist notification", "user_id", userID, "kind", kind, "error", err)
		return
	}

	s.hub.Publish(userID, sse.Event{
		UserID: userID,
		Event:  "notification",
		Data:   mapToResponse(created),
	})
}

// NotifyAdmins implements notification.Publisher.
func (s *NotificationServiceImpl) NotifyAdmins(ctx context.Context, kind notification.Kind, title, message string, refID *string) {
	adminIDs, err := s.userRepo.ListAdminIDs(ctx)
	if err != nil {
		slog.Error("failed to list admins for notification", "kind", kind, "error", err)
		return
	}
	for _, adminID := range adminIDs {
		s.Notify(ctx, adminID, kind, title, message, refID)
	}
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context) (notification.ListNotificationsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	items, err := s.NotificationRepository.ListForUser(ctx, userID, defaultFeedLimit)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.NotificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	resp := notification.ListNotificationsResponse{
		UnreadCount:   unread,
		Notifications: make([]notification.NotificationResponse, 0, len(items)),
	}
	for _, n := range items {
		resp.Notifications = append(resp.Notifications, mapToResponse(n))
	}
	return resp, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.NotificationRepository.MarkRead(ctx, id, userID); err != nil {
		if err == pgx.ErrNoRows {
			return notification.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.NotificationRepository.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func mapToResponse(n notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		RefID:     n.RefID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim missing")
	}
	return userID, nil
}
