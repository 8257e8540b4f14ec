package pgrepo

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

const notificationColumns = `id, created_at, user_id, type, title, message, is_read`

type NotificationRepository struct {
	conn uow.DBTX
}

func NewNotificationRepository(conn uow.DBTX) *NotificationRepository {
	return &NotificationRepository{conn: conn}
}

func (n *NotificationRepository) Create(
	ctx context.Context,
	args repoargs.CreateNotification,
) (*domain.Notification, error) {
	row := n.conn.QueryRow(ctx,
		`INSERT INTO notifications (user_id, type, title, message) VALUES ($1, $2, $3, $4)
		RETURNING `+notificationColumns,
		args.UserID, string(args.Type), args.Title, args.Message,
	)
	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "creating notification for user %d", args.UserID)
	}
	return notification, nil
}

// GetByUserID последние limit уведомлений юзера, новые первыми.
func (n *NotificationRepository) GetByUserID(ctx context.Context, userID int64, limit uint) ([]domain.Notification, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	rows, err := n.conn.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2`,
		userID, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting notifications of user %d", userID)
	}
	notifications, collectErr := collectRows(rows, scanNotification)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning notifications of user %d", userID)
	}
	return notifications, nil
}

func (n *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := n.conn.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`,
		userID,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting unread notifications of user %d", userID)
	}
	return count, nil
}

// MarkRead помечает уведомление прочитанным, только если оно принадлежит userID.
func (n *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	tag, err := n.conn.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return convertErr(err, "marking notification %d read", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (n *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	if _, err := n.conn.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`,
		userID,
	); err != nil {
		return convertErr(err, "marking all notifications of user %d read", userID)
	}
	return nil
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var notification domain.Notification
	var notificationType string
	if err := row.Scan(
		&notification.ID,
		&notification.CreatedAt,
		&notification.UserID,
		&notificationType,
		&notification.Title,
		&notification.Message,
		&notification.IsRead,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	notification.Type = domain.NotificationType(notificationType)
	return &notification, nil
}
