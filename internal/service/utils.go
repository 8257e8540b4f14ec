package service

import (
	"strings"

	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/shopspring/decimal"
)

// txRepo возвращает репозиторий транзакции tx, приведенный к T.
func txRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name)) //nolint:wrapcheck
}

// poolRepo возвращает репозиторий, работающий вне транзакции, приведенный к T.
func poolRepo[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	return uow.GetRepositoryAs[T](u, uow.RepositoryName(name)) //nolint:wrapcheck
}

// money форматирует сумму для текста уведомлений: два знака после точки.
func money(amount decimal.Decimal) string {
	return amount.StringFixed(2) //nolint:mnd
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
