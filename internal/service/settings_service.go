package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	SettingBinanceAPIKey     = "binance_api_key"
	SettingBinanceAPISecret  = "binance_api_secret"
	SettingBinanceAutoVerify = "binance_auto_verify"
)

// SettingsService хранит учетные данные платежного провайдера и управляет фоновой проверкой депозитов.
type SettingsService struct {
	uow         uow.UOW
	settingRepo SettingRepository
	sealer      CredentialSealer
	prober      BinanceProber
	logger      *logrus.Entry

	mu        sync.Mutex
	scheduler VerificationScheduler
}

func NewSettingsService(
	u uow.UOW,
	sealer CredentialSealer,
	prober BinanceProber,
	l *logrus.Logger,
) (*SettingsService, error) {
	settingRepo, err := poolRepo[SettingRepository](u, repoargs.SettingRepoName)
	if err != nil {
		return nil, err
	}
	return &SettingsService{
		uow:         u,
		settingRepo: settingRepo,
		sealer:      sealer,
		prober:      prober,
		logger: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "settings",
		}),
	}, nil
}

// AttachScheduler передает сервису планировщик проверки. Планировщик сам зависит от сервиса (читает ключи),
// поэтому связывается после создания обоих.
func (s *SettingsService) AttachScheduler(scheduler VerificationScheduler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduler = scheduler
}

// ConfigureBinance проверяет ключи запросом к провайдеру, сохраняет их в зашифрованном виде, включает
// автопроверку и запускает планировщик. Если провайдер ключи не принял, возвращает
// domain.ErrInvalidCredentials и ничего не сохраняет.
func (s *SettingsService) ConfigureBinance(ctx context.Context, creds domain.BinanceCredentials) error {
	if creds.IsEmpty() {
		return domain.ErrCredentialsRequired
	}
	if err := s.prober.Ping(ctx, creds); err != nil {
		s.logger.WithError(err).Warn("binance credentials rejected")
		return fmt.Errorf("configuring binance: %w", domain.ErrInvalidCredentials)
	}

	sealedKey, keyErr := s.sealer.SealCredential(creds.APIKey)
	if keyErr != nil {
		return fmt.Errorf("configuring binance: %w", keyErr)
	}
	sealedSecret, secretErr := s.sealer.SealCredential(creds.APISecret)
	if secretErr != nil {
		return fmt.Errorf("configuring binance: %w", secretErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := txRepo[SettingRepository](tx, repoargs.SettingRepoName)
		if repoErr != nil {
			return repoErr
		}
		for key, value := range map[string]string{
			SettingBinanceAPIKey:     sealedKey,
			SettingBinanceAPISecret:  sealedSecret,
			SettingBinanceAutoVerify: strconv.FormatBool(true),
		} {
			if err := repo.Set(c, key, value); err != nil {
				return err //nolint:wrapcheck
			}
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("configuring binance: %w", txErr)
	}

	s.startLocked(ctx)
	return nil
}

// ToggleBinance включает или выключает автопроверку. Включение без сохраненных ключей возвращает
// domain.ErrCredentialsMissing.
func (s *SettingsService) ToggleBinance(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enabled {
		hasKeys, err := s.hasKeys(ctx)
		if err != nil {
			return fmt.Errorf("toggling binance: %w", err)
		}
		if !hasKeys {
			return domain.ErrCredentialsMissing
		}
	}

	if err := s.settingRepo.Set(ctx, SettingBinanceAutoVerify, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("toggling binance: %w", err)
	}

	if enabled {
		s.startLocked(ctx)
	} else {
		s.stopLocked()
	}
	return nil
}

// DeleteBinance останавливает планировщик, удаляет ключи и выключает автопроверку.
func (s *SettingsService) DeleteBinance(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := txRepo[SettingRepository](tx, repoargs.SettingRepoName)
		if repoErr != nil {
			return repoErr
		}
		if err := repo.Delete(c, SettingBinanceAPIKey, SettingBinanceAPISecret); err != nil {
			return err //nolint:wrapcheck
		}
		return repo.Set(c, SettingBinanceAutoVerify, strconv.FormatBool(false)) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("deleting binance settings: %w", txErr)
	}
	return nil
}

type BinanceStatus struct {
	Enabled   bool
	HasKeys   bool
	Connected bool
}

func (s *SettingsService) BinanceStatus(ctx context.Context) (*BinanceStatus, error) {
	enabled, enabledErr := s.autoVerifyEnabled(ctx)
	if enabledErr != nil {
		return nil, fmt.Errorf("binance status: %w", enabledErr)
	}
	hasKeys, keysErr := s.hasKeys(ctx)
	if keysErr != nil {
		return nil, fmt.Errorf("binance status: %w", keysErr)
	}

	s.mu.Lock()
	connected := s.scheduler != nil && s.scheduler.IsRunning()
	s.mu.Unlock()

	return &BinanceStatus{
		Enabled:   enabled,
		HasKeys:   hasKeys,
		Connected: connected,
	}, nil
}

// Credentials возвращает расшифрованные ключи провайдера. Если автопроверка выключена, возвращает
// domain.ErrAutoVerifyDisabled, если ключей нет - domain.ErrCredentialsMissing.
func (s *SettingsService) Credentials(ctx context.Context) (domain.BinanceCredentials, error) {
	var creds domain.BinanceCredentials

	enabled, enabledErr := s.autoVerifyEnabled(ctx)
	if enabledErr != nil {
		return creds, fmt.Errorf("reading binance credentials: %w", enabledErr)
	}
	if !enabled {
		return creds, domain.ErrAutoVerifyDisabled
	}

	sealedKey, keyErr := s.optionalSetting(ctx, SettingBinanceAPIKey)
	if keyErr != nil {
		return creds, fmt.Errorf("reading binance credentials: %w", keyErr)
	}
	sealedSecret, secretErr := s.optionalSetting(ctx, SettingBinanceAPISecret)
	if secretErr != nil {
		return creds, fmt.Errorf("reading binance credentials: %w", secretErr)
	}
	if sealedKey == "" || sealedSecret == "" {
		return creds, domain.ErrCredentialsMissing
	}

	apiKey, openKeyErr := s.sealer.OpenCredential(sealedKey)
	if openKeyErr != nil {
		return creds, fmt.Errorf("reading binance credentials: %w", openKeyErr)
	}
	apiSecret, openSecretErr := s.sealer.OpenCredential(sealedSecret)
	if openSecretErr != nil {
		return creds, fmt.Errorf("reading binance credentials: %w", openSecretErr)
	}
	return domain.BinanceCredentials{APIKey: apiKey, APISecret: apiSecret}, nil
}

// ResumeVerification запускает планировщик при старте приложения, если автопроверка включена и ключи
// сохранены. Возвращает true, если планировщик запущен.
func (s *SettingsService) ResumeVerification(ctx context.Context) (bool, error) {
	enabled, enabledErr := s.autoVerifyEnabled(ctx)
	if enabledErr != nil {
		return false, fmt.Errorf("resuming verification: %w", enabledErr)
	}
	hasKeys, keysErr := s.hasKeys(ctx)
	if keysErr != nil {
		return false, fmt.Errorf("resuming verification: %w", keysErr)
	}
	if !enabled || !hasKeys {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked(ctx)
	return s.scheduler != nil, nil
}

func (s *SettingsService) startLocked(ctx context.Context) {
	if s.scheduler == nil {
		s.logger.Warn("verification scheduler is not attached")
		return
	}
	s.scheduler.Start(ctx)
}

func (s *SettingsService) stopLocked() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *SettingsService) autoVerifyEnabled(ctx context.Context) (bool, error) {
	value, err := s.optionalSetting(ctx, SettingBinanceAutoVerify)
	if err != nil {
		return false, err
	}
	enabled, _ := strconv.ParseBool(value)
	return enabled, nil
}

func (s *SettingsService) hasKeys(ctx context.Context) (bool, error) {
	value, err := s.optionalSetting(ctx, SettingBinanceAPIKey)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// optionalSetting значение настройки или пустая строка, если настройка не задана.
func (s *SettingsService) optionalSetting(ctx context.Context, key string) (string, error) {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", nil
		}
		return "", err //nolint:wrapcheck
	}
	return setting.Value, nil
}
