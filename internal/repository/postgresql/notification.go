package postgresql

import (
	"context"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, user_id, kind, title, message, ref_id, read, created_at`

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func scanNotification(row interface{ Scan(...any) error }) (notification.Notification, error) {
	var n notification.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Message, &n.RefID, &n.Read, &n.CreatedAt)
	return n, err
}

// Create implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, user_id, kind, title, message, ref_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + notificationColumns

	return scanNotification(q.QueryRow(ctx, query, n.ID, n.UserID, n.Kind, n.Title, n.Message, n.RefID))
}

// ListForUser implements notification.NotificationRepository. Unread first,
// newest first within each group.
func (r *notificationRepositoryImpl) ListForUser(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY read ASC, created_at DESC
		LIMIT $2
	`
	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// CountUnread implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`, userID).Scan(&count)
	return count, err
}

// MarkRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MarkAllRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`, userID)
	return err
}
