package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash bcrypt хеширование паролей с настраиваемой стоимостью.
type PasswordHash struct {
	cost int
}

func New() *PasswordHash {
	return &PasswordHash{cost: bcrypt.DefaultCost}
}

// WithCost переопределяет стоимость bcrypt. Значения вне допустимого диапазона заменяются на bcrypt.DefaultCost.
func (p *PasswordHash) WithCost(cost int) *PasswordHash {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	p.cost = cost
	return p
}

func (p *PasswordHash) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(bytes), nil
}

func (p *PasswordHash) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
