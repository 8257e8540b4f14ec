package pgrepo

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

type SettingRepository struct {
	conn uow.DBTX
}

func NewSettingRepository(conn uow.DBTX) *SettingRepository {
	return &SettingRepository{conn: conn}
}

// Get возвращает настройку по ключу или domain.ErrRecordNotFound.
func (s *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	if err := s.conn.QueryRow(ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = $1`,
		key,
	).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
		return nil, convertErr(err, "getting setting %s", key)
	}
	return &setting, nil
}

// Set создает или перезаписывает настройку.
func (s *SettingRepository) Set(ctx context.Context, key, value string) error {
	if _, err := s.conn.Exec(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	); err != nil {
		return convertErr(err, "setting %s", key)
	}
	return nil
}

func (s *SettingRepository) Delete(ctx context.Context, keys ...string) error {
	if _, err := s.conn.Exec(ctx, `DELETE FROM settings WHERE key = ANY($1)`, keys); err != nil {
		return convertErr(err, "deleting settings %v", keys)
	}
	return nil
}
