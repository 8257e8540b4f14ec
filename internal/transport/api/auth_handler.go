package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/fsdevblog/uc-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// setAuthCookie кладет токен в httpOnly куку со сроком жизни токена.
func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middlewares.AuthCookieName,
		token,
		int(service.JWTTokenExpire.Seconds()),
		"/",
		"",
		gin.Mode() == gin.ReleaseMode,
		true,
	)
	c.Header("Authorization", "Bearer "+token)
}

type UserRegisterParams struct {
	Email    string `binding:"required,email,max=255"               json:"email"`
	Name     string `binding:"required,min=1,max=100,max_bytes=255" json:"name"`
	Password string `binding:"required,min=6,max=72"                json:"password"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует пользователя и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Email:    params.Email,
		Name:     params.Name,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			middlewares.AbortWithError(c, http.StatusConflict, errors.New("email already exists"), gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, createErr)
		return
	}

	setAuthCookie(c, jwtToken)
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

type UserLoginParams struct {
	Email    string `binding:"required,max=255" json:"email"`
	Password string `binding:"required,max=72"  json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// Logout POST RouteGroup + LogoutRoute. Удаляет куку с токеном.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.AuthCookieName, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
	success(c)
}

// Me GET RouteGroup + MeRoute.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(getUserFromContext(c))})
}

type ChangePasswordParams struct {
	CurrentPassword string `binding:"required,max=72"       json:"currentPassword"`
	NewPassword     string `binding:"required,min=6,max=72" json:"newPassword"`
}

// ChangePassword PUT RouteGroup + PasswordRoute.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var params ChangePasswordParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.userService.ChangePassword(ctx, getUserIDFromContext(c), params.CurrentPassword, params.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrPasswordMissMatch) {
			middlewares.AbortWithError(c, http.StatusBadRequest, errors.New("current password incorrect"),
				gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, err)
		return
	}
	success(c)
}
