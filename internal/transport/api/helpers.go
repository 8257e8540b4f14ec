package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserFromContext берет из контекста gin текущего юзера. Юзер устанавливается в
// middlewares.AuthRequired. Если юзера в контексте нет - вернется nil.
func getUserFromContext(c *gin.Context) *domain.User {
	return middlewares.CurrentUser(c)
}

// getUserIDFromContext ID текущего юзера или 0.
func getUserIDFromContext(c *gin.Context) int64 {
	if user := getUserFromContext(c); user != nil {
		return user.ID
	}
	return 0
}

// paramID разбирает положительный числовой параметр пути. При ошибке прерывает запрос с 400.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middlewares.AbortWithError(c, http.StatusBadRequest, errors.New("invalid id"), gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
