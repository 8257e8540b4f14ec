package repoargs

import "github.com/fsdevblog/uc-store/internal/domain"

type CreateNotification struct {
	UserID  int64
	Type    domain.NotificationType
	Title   string
	Message string
}
