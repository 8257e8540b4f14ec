package repoargs

import "github.com/fsdevblog/uc-store/internal/domain"

type CreateUser struct {
	Email    string
	Name     string
	Password string
	Role     domain.RoleType
}
