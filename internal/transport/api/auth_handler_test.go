package api

import (
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/fsdevblog/uc-store/internal/transport/api/middlewares"
	"github.com/fsdevblog/uc-store/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
)

func (s *RouterTestSuite) TestRegister() {
	email := gofakeit.Email()
	argsOk := service.RegisterUserArgs{Email: email, Name: "Tester", Password: "password"}
	argsDup := service.RegisterUserArgs{Email: "taken@example.com", Name: "Tester", Password: "password"}

	s.mockUserService.EXPECT().Register(gomock.Any(), argsOk).
		Return(&domain.User{ID: 1, Email: email, Name: "Tester", Role: domain.RoleUser}, "jwt-token", nil)
	s.mockUserService.EXPECT().Register(gomock.Any(), argsDup).Return(nil, "", domain.ErrDuplicateKey)

	cases := []struct {
		name       string
		params     UserRegisterParams
		wantStatus int
		wantError  string
	}{
		{
			name:       "user created",
			params:     UserRegisterParams{Email: argsOk.Email, Name: argsOk.Name, Password: argsOk.Password},
			wantStatus: http.StatusOK,
		}, {
			name:       "email taken",
			params:     UserRegisterParams{Email: argsDup.Email, Name: argsDup.Name, Password: argsDup.Password},
			wantStatus: http.StatusConflict,
			wantError:  "email already exists",
		}, {
			name:       "short password",
			params:     UserRegisterParams{Email: gofakeit.Email(), Name: "Tester", Password: "12345"},
			wantStatus: http.StatusBadRequest,
			wantError:  "password must be at least 6 characters",
		}, {
			name:       "invalid email",
			params:     UserRegisterParams{Email: "nope", Name: "Tester", Password: "password"},
			wantStatus: http.StatusBadRequest,
			wantError:  "email must be a valid email",
		}, {
			name:       "name over bytes limit",
			params:     UserRegisterParams{Email: gofakeit.Email(), Name: testutils.MultibyteString(70), Password: "password"},
			wantStatus: http.StatusBadRequest,
			wantError:  "name is too long",
		}, {
			name:       "missing fields",
			params:     UserRegisterParams{},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, RouteGroup+RegisterRoute, t.params, "")
			s.Require().Equal(t.wantStatus, res.status, string(res.body))
			if t.wantError != "" {
				s.Equal(t.wantError, res.errorText(s))
			}
			if t.wantStatus == http.StatusOK {
				s.Equal("Bearer jwt-token", res.header.Get("Authorization"))
				s.Contains(res.header.Get("Set-Cookie"), middlewares.AuthCookieName+"=jwt-token")
				s.Contains(strings.ToLower(res.header.Get("Set-Cookie")), "httponly")
			}
		})
	}
}

func (s *RouterTestSuite) TestLogin() {
	user := &domain.User{ID: 7, Email: "user@example.com", Name: "User", Role: domain.RoleUser}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "user@example.com", Password: "password"}).
		Return(user, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "user@example.com", Password: "wrong-password"}).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "ghost@example.com", Password: "password"}).
		Return(nil, "", domain.ErrRecordNotFound)

	res := s.request(http.MethodPost, RouteGroup+LoginRoute,
		UserLoginParams{Email: "user@example.com", Password: "password"}, "")
	s.Require().Equal(http.StatusOK, res.status)
	var body struct {
		User UserResponse `json:"user"`
	}
	res.decode(s, &body)
	s.Equal(int64(7), body.User.ID)
	s.Equal(domain.RoleUser, body.User.Role)

	for _, params := range []UserLoginParams{
		{Email: "user@example.com", Password: "wrong-password"},
		{Email: "ghost@example.com", Password: "password"},
	} {
		res = s.request(http.MethodPost, RouteGroup+LoginRoute, params, "")
		s.Equal(http.StatusUnauthorized, res.status)
		s.Equal("invalid credentials", res.errorText(s))
	}
}

func (s *RouterTestSuite) TestLogout() {
	res := s.request(http.MethodPost, RouteGroup+LogoutRoute, nil, "")
	s.Equal(http.StatusOK, res.status)
	cookie := res.header.Get("Set-Cookie")
	s.Contains(cookie, middlewares.AuthCookieName+"=;")
	s.Contains(cookie, "Max-Age=0")
}

func (s *RouterTestSuite) TestChangePassword() {
	user := newTestUser(3, domain.RoleUser)
	token := s.signIn(user)

	s.mockUserService.EXPECT().ChangePassword(gomock.Any(), user.ID, "old-password", "new-password").Return(nil)
	s.mockUserService.EXPECT().ChangePassword(gomock.Any(), user.ID, "bad-password", "new-password").
		Return(domain.ErrPasswordMissMatch)

	res := s.request(http.MethodPut, RouteGroup+PasswordRoute,
		ChangePasswordParams{CurrentPassword: "old-password", NewPassword: "new-password"}, token)
	s.Equal(http.StatusOK, res.status)

	res = s.request(http.MethodPut, RouteGroup+PasswordRoute,
		ChangePasswordParams{CurrentPassword: "bad-password", NewPassword: "new-password"}, token)
	s.Equal(http.StatusBadRequest, res.status)
	s.Equal("current password incorrect", res.errorText(s))
}
