package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserKey = "currentUser"
	AuthCookieName = "uc_token"

	loadUserTimeout = 3 * time.Second
)

type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// extractToken берет токен из куки AuthCookieName, а при ее отсутствии из заголовка Authorization.
// Если токен не передан, вернется ошибка ErrTokenNotExist.
func extractToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	tokenStr, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || tokenStr == "" {
		return "", ErrTokenNotExist
	}
	return tokenStr, nil
}

// AuthRequired проверяет токен, загружает юзера и кладет его в контекст (поле CurrentUserKey).
// Заблокированный юзер получает 403.
func AuthRequired(jwtTokenSecret []byte, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, tokenErr := extractToken(c)
		if tokenErr != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, parseErr := tokens.ParseUserID(tokenStr, jwtTokenSecret)
		if parseErr != nil {
			_ = c.Error(fmt.Errorf("check authorization: %w", parseErr)).SetType(gin.ErrorTypePrivate)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx, cancel := context.WithTimeout(c, loadUserTimeout)
		defer cancel()

		user, userErr := users.GetByID(ctx, userID)
		if userErr != nil {
			if errors.Is(userErr, domain.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			AbortWithError(c, http.StatusInternalServerError, userErr, gin.ErrorTypePrivate)
			return
		}

		if user.IsBanned {
			resp := gin.H{"error": domain.ErrUserBanned.Error(), "banned": true}
			if user.BanReason != nil {
				resp["reason"] = *user.BanReason
			}
			c.AbortWithStatusJSON(http.StatusForbidden, resp)
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// AdminRequired пропускает только администраторов. Ставится после AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser юзер, установленный AuthRequired. nil, если в контексте юзера нет.
func CurrentUser(c *gin.Context) *domain.User {
	value, exist := c.Get(CurrentUserKey)
	if !exist {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}
