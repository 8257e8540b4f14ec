package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/sirupsen/logrus"
)

// NotificationsListLimit количество последних уведомлений, отдаваемых юзеру.
const NotificationsListLimit uint = 50

type NotificationService struct {
	notificationRepo NotificationRepository
	logger           *logrus.Entry
}

func NewNotificationService(u uow.UOW, l *logrus.Logger) (*NotificationService, error) {
	repo, err := poolRepo[NotificationRepository](u, repoargs.NotificationRepoName)
	if err != nil {
		return nil, err
	}
	return &NotificationService{
		notificationRepo: repo,
		logger: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "notification",
		}),
	}, nil
}

// Emit добавляет уведомление юзеру. Ошибка записи только логируется: уведомление не должно влиять на
// операцию, которая его вызвала. Вызывается после фиксации транзакции.
func (n *NotificationService) Emit(
	ctx context.Context,
	userID int64,
	t domain.NotificationType,
	title, message string,
) {
	if _, err := n.notificationRepo.Create(ctx, repoargs.CreateNotification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
	}); err != nil {
		n.logger.WithError(err).
			WithFields(logrus.Fields{"userID": userID, "type": t, "title": title}).
			Error("failed to emit notification")
	}
}

// List возвращает последние уведомления юзера и количество непрочитанных.
func (n *NotificationService) List(ctx context.Context, userID int64) ([]domain.Notification, int64, error) {
	notifications, err := n.notificationRepo.GetByUserID(ctx, userID, NotificationsListLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing notifications: %w", err)
	}
	unread, unreadErr := n.UnreadCount(ctx, userID)
	if unreadErr != nil {
		return nil, 0, unreadErr
	}
	return notifications, unread, nil
}

func (n *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	count, err := n.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead помечает прочитанным уведомление id, принадлежащее userID. Чужое или несуществующее
// уведомление - domain.ErrRecordNotFound.
func (n *NotificationService) MarkRead(ctx context.Context, userID, id int64) error {
	if err := n.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

func (n *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if err := n.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("marking all notifications read: %w", err)
	}
	return nil
}
