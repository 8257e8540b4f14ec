package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/internal/service/mocks"
	"github.com/fsdevblog/uc-store/pkg/uow"
	uowmocks "github.com/fsdevblog/uc-store/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockSettingRepo *mocks.MockSettingRepository
	mockSealer      *mocks.MockCredentialSealer
	mockProber      *mocks.MockBinanceProber
	mockScheduler   *mocks.MockVerificationScheduler
	settingsService *SettingsService
}

func TestSettingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func (s *SettingsServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockSettingRepo = mocks.NewMockSettingRepository(mockCtrl)
	s.mockSealer = mocks.NewMockCredentialSealer(mockCtrl)
	s.mockProber = mocks.NewMockBinanceProber(mockCtrl)
	s.mockScheduler = mocks.NewMockVerificationScheduler(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.SettingRepoName)).
		Return(s.mockSettingRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.SettingRepoName)).
		Return(s.mockSettingRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	settingsService, err := NewSettingsService(s.mockUOW, s.mockSealer, s.mockProber, newSilentLogger())
	s.Require().NoError(err)
	settingsService.AttachScheduler(s.mockScheduler)
	s.settingsService = settingsService
}

func (s *SettingsServiceTestSuite) expectSetting(key, value string) {
	s.mockSettingRepo.EXPECT().Get(gomock.Any(), key).
		Return(&domain.Setting{Key: key, Value: value}, nil).AnyTimes()
}

func (s *SettingsServiceTestSuite) expectMissing(key string) {
	s.mockSettingRepo.EXPECT().Get(gomock.Any(), key).
		Return(nil, domain.ErrRecordNotFound).AnyTimes()
}

func (s *SettingsServiceTestSuite) TestConfigureStoresSealedKeysAndStarts() {
	creds := domain.BinanceCredentials{APIKey: "key", APISecret: "secret"}

	s.mockProber.EXPECT().Ping(gomock.Any(), creds).Return(nil)
	s.mockSealer.EXPECT().SealCredential("key").Return("sealed-key", nil)
	s.mockSealer.EXPECT().SealCredential("secret").Return("sealed-secret", nil)
	s.mockSettingRepo.EXPECT().Set(gomock.Any(), SettingBinanceAPIKey, "sealed-key").Return(nil)
	s.mockSettingRepo.EXPECT().Set(gomock.Any(), SettingBinanceAPISecret, "sealed-secret").Return(nil)
	s.mockSettingRepo.EXPECT().Set(gomock.Any(), SettingBinanceAutoVerify, "true").Return(nil)
	s.mockScheduler.EXPECT().Start(gomock.Any())

	s.Require().NoError(s.settingsService.ConfigureBinance(s.T().Context(), creds))
}

func (s *SettingsServiceTestSuite) TestConfigureRejectedKeysStoreNothing() {
	creds := domain.BinanceCredentials{APIKey: "key", APISecret: "bad"}

	s.mockProber.EXPECT().Ping(gomock.Any(), creds).Return(errors.New("401"))
	s.mockSettingRepo.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockScheduler.EXPECT().Start(gomock.Any()).Times(0)

	err := s.settingsService.ConfigureBinance(s.T().Context(), creds)
	s.Require().ErrorIs(err, domain.ErrInvalidCredentials)
}

func (s *SettingsServiceTestSuite) TestConfigureRequiresBothKeys() {
	err := s.settingsService.ConfigureBinance(s.T().Context(), domain.BinanceCredentials{APIKey: "key"})
	s.Require().ErrorIs(err, domain.ErrCredentialsRequired)
}

func (s *SettingsServiceTestSuite) TestToggleWithoutKeys() {
	s.expectMissing(SettingBinanceAPIKey)
	s.mockScheduler.EXPECT().Start(gomock.Any()).Times(0)

	err := s.settingsService.ToggleBinance(s.T().Context(), true)
	s.Require().ErrorIs(err, domain.ErrCredentialsMissing)
}

func (s *SettingsServiceTestSuite) TestToggle() {
	s.expectSetting(SettingBinanceAPIKey, "sealed-key")

	s.mockSettingRepo.EXPECT().Set(gomock.Any(), SettingBinanceAutoVerify, "true").Return(nil)
	s.mockScheduler.EXPECT().Start(gomock.Any())
	s.Require().NoError(s.settingsService.ToggleBinance(s.T().Context(), true))

	s.mockSettingRepo.EXPECT().Set(gomock.Any(), SettingBinanceAutoVerify, "false").Return(nil)
	s.mockScheduler.EXPECT().Stop()
	s.Require().NoError(s.settingsService.ToggleBinance(s.T().Context(), false))
}

func (s *SettingsServiceTestSuite) TestDelete() {
	s.mockScheduler.EXPECT().Stop()
	s.mockSettingRepo.EXPECT().Delete(gomock.Any(), SettingBinanceAPIKey, SettingBinanceAPISecret).Return(nil)
	s.mockSettingRepo.EXPECT().Set(gomock.Any(), SettingBinanceAutoVerify, "false").Return(nil)

	s.Require().NoError(s.settingsService.DeleteBinance(s.T().Context()))
}

func (s *SettingsServiceTestSuite) TestCredentials() {
	s.Run("disabled", func() {
		s.SetupTest()
		s.expectSetting(SettingBinanceAutoVerify, "false")

		_, err := s.settingsService.Credentials(s.T().Context())
		s.Require().ErrorIs(err, domain.ErrAutoVerifyDisabled)
	})

	s.Run("no keys", func() {
		s.SetupTest()
		s.expectSetting(SettingBinanceAutoVerify, "true")
		s.expectMissing(SettingBinanceAPIKey)
		s.expectMissing(SettingBinanceAPISecret)

		_, err := s.settingsService.Credentials(s.T().Context())
		s.Require().ErrorIs(err, domain.ErrCredentialsMissing)
	})

	s.Run("opened", func() {
		s.SetupTest()
		s.expectSetting(SettingBinanceAutoVerify, "true")
		s.expectSetting(SettingBinanceAPIKey, "sealed-key")
		s.expectSetting(SettingBinanceAPISecret, "sealed-secret")
		s.mockSealer.EXPECT().OpenCredential("sealed-key").Return("key", nil)
		s.mockSealer.EXPECT().OpenCredential("sealed-secret").Return("secret", nil)

		creds, err := s.settingsService.Credentials(s.T().Context())
		s.Require().NoError(err)
		s.Equal(domain.BinanceCredentials{APIKey: "key", APISecret: "secret"}, creds)
	})
}

func (s *SettingsServiceTestSuite) TestStatus() {
	s.expectSetting(SettingBinanceAutoVerify, "true")
	s.expectSetting(SettingBinanceAPIKey, "sealed-key")
	s.mockScheduler.EXPECT().IsRunning().Return(true)

	status, err := s.settingsService.BinanceStatus(s.T().Context())
	s.Require().NoError(err)
	s.Equal(&BinanceStatus{Enabled: true, HasKeys: true, Connected: true}, status)
}

func (s *SettingsServiceTestSuite) TestResumeVerification() {
	s.expectSetting(SettingBinanceAutoVerify, "true")
	s.expectSetting(SettingBinanceAPIKey, "sealed-key")
	s.mockScheduler.EXPECT().Start(gomock.Any())

	started, err := s.settingsService.ResumeVerification(s.T().Context())
	s.Require().NoError(err)
	s.True(started)
}

func (s *SettingsServiceTestSuite) TestResumeVerificationDisabled() {
	s.expectSetting(SettingBinanceAutoVerify, "false")
	s.expectSetting(SettingBinanceAPIKey, "sealed-key")
	s.mockScheduler.EXPECT().Start(gomock.Any()).Times(0)

	started, err := s.settingsService.ResumeVerification(s.T().Context())
	s.Require().NoError(err)
	s.False(started)
}
