package api

import (
	"net/http"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/golang/mock/gomock"
)

func (s *RouterTestSuite) TestNotifications() {
	user := newTestUser(1, domain.RoleUser)
	token := s.signIn(user)

	s.mockNotificationService.EXPECT().List(gomock.Any(), user.ID).Return([]domain.Notification{
		{ID: 2, UserID: user.ID, Type: domain.NotificationTypeOrder, Title: "Order Completed"},
		{ID: 1, UserID: user.ID, Type: domain.NotificationTypeDeposit, Title: "Deposit Pending", IsRead: true},
	}, int64(1), nil)

	res := s.request(http.MethodGet, RouteGroup+NotificationsRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)

	var body NotificationsResponse
	res.decode(s, &body)
	s.Equal(int64(1), body.Unread)
	s.Require().Len(body.Notifications, 2)
	s.Equal("Order Completed", body.Notifications[0].Title)
}

func (s *RouterTestSuite) TestMarkRead() {
	user := newTestUser(1, domain.RoleUser)
	token := s.signIn(user)

	s.mockNotificationService.EXPECT().MarkRead(gomock.Any(), user.ID, int64(5)).Return(nil)
	// уведомление другого юзера.
	s.mockNotificationService.EXPECT().MarkRead(gomock.Any(), user.ID, int64(6)).Return(domain.ErrRecordNotFound)
	s.mockNotificationService.EXPECT().MarkAllRead(gomock.Any(), user.ID).Return(nil)

	res := s.request(http.MethodPut, RouteGroup+"/notifications/5/read", nil, token)
	s.Equal(http.StatusOK, res.status)

	res = s.request(http.MethodPut, RouteGroup+"/notifications/6/read", nil, token)
	s.Equal(http.StatusNotFound, res.status)

	res = s.request(http.MethodPut, RouteGroup+"/notifications/abc/read", nil, token)
	s.Equal(http.StatusBadRequest, res.status)
	s.Equal("invalid id", res.errorText(s))

	res = s.request(http.MethodPut, RouteGroup+NotificationsReadAllRoute, nil, token)
	s.Equal(http.StatusOK, res.status)
}
