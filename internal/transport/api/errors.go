package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// publicErrors доменные ошибки, текст которых отдается клиенту, и их HTTP статусы. Порядок важен: первая
// подходящая по errors.Is запись выигрывает.
var publicErrors = []struct {
	err    error
	status int
}{
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrOutOfStock, http.StatusBadRequest},
	{domain.ErrNotEnoughBalance, http.StatusBadRequest},
	{domain.ErrPlayerIDRequired, http.StatusBadRequest},
	{domain.ErrUserBanned, http.StatusForbidden},
	{domain.ErrPurchaseDisabled, http.StatusForbidden},
	{domain.ErrInvalidDepositState, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrEmptyTransactionRef, http.StatusBadRequest},
	{domain.ErrInvalidCredentials, http.StatusBadRequest},
	{domain.ErrCredentialsMissing, http.StatusBadRequest},
	{domain.ErrCredentialsRequired, http.StatusBadRequest},
	{domain.ErrDuplicateKey, http.StatusConflict},
	{domain.ErrRecordNotFound, http.StatusNotFound},
}

// abortWithServiceError переводит ошибку сервисного слоя в HTTP ответ. Известные доменные ошибки отдаются
// клиенту текстом, полная цепочка уходит в лог через Meta. Остальное - 500 без подробностей.
func abortWithServiceError(c *gin.Context, err error) {
	for _, pe := range publicErrors {
		if errors.Is(err, pe.err) {
			middlewares.AbortWithError(c, pe.status, pe.err, gin.ErrorTypePublic).SetMeta(err.Error())
			return
		}
	}
	middlewares.AbortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
}

// abortWithBindError отвечает 400 на невалидное тело запроса.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		msgs := make([]string, 0, len(valErrs))
		for _, fe := range valErrs {
			msgs = append(msgs, validationMessage(fe))
		}
		middlewares.AbortWithError(c, http.StatusBadRequest, errors.New(strings.Join(msgs, "; ")), gin.ErrorTypePublic)
		return
	}
	middlewares.AbortWithError(c, http.StatusBadRequest, errors.New("invalid request body"), gin.ErrorTypePublic).
		SetMeta(err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max", "max_bytes":
		return fmt.Sprintf("%s is too long", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "gt", "dgt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "dgte":
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
