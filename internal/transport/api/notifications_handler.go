package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	svs NotificationServicer
}

func NewNotificationsHandler(svs NotificationServicer) *NotificationsHandler {
	return &NotificationsHandler{
		svs: svs,
	}
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int64                  `json:"unread"`
}

// Index GET RouteGroup + NotificationsRoute.
func (n *NotificationsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notifications, unread, err := n.svs.List(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, NotificationsResponse{
		Notifications: newNotificationResponses(notifications),
		Unread:        unread,
	})
}

// MarkRead PUT RouteGroup + NotificationReadRoute. Чужое уведомление - 404.
func (n *NotificationsHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := n.svs.MarkRead(reqCtx, getUserIDFromContext(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	success(c)
}

// MarkAllRead PUT RouteGroup + NotificationsReadAllRoute.
func (n *NotificationsHandler) MarkAllRead(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := n.svs.MarkAllRead(reqCtx, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	success(c)
}
