package service

import (
	"fmt"

	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService         *UserService
	ProductService      *ProductService
	PurchaseService     *PurchaseService
	OrderService        *OrderService
	DepositService      *DepositService
	NotificationService *NotificationService
	SettingsService     *SettingsService
	StatsService        *StatsService
}

type FactoryArgs struct {
	UOW       uow.UOW
	JWTSecret []byte
	Hasher    PasswordHasher
	Sealer    CredentialSealer
	Prober    BinanceProber
	Logger    *logrus.Logger
}

// Factory создает все сервисы приложения. Планировщик автопроверки подключается к SettingsService
// отдельно через AttachScheduler.
func Factory(args FactoryArgs) (*AppServices, error) {
	notificationService, notificationErr := NewNotificationService(args.UOW, args.Logger)
	if notificationErr != nil {
		return nil, fmt.Errorf("service factory: %w", notificationErr)
	}

	userService, userServiceErr := NewUserService(args.UOW, args.JWTSecret, args.Hasher, notificationService)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", userServiceErr)
	}

	productService, productErr := NewProductService(args.UOW)
	if productErr != nil {
		return nil, fmt.Errorf("service factory: %w", productErr)
	}

	orderService, orderServiceErr := NewOrderService(args.UOW)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", orderServiceErr)
	}

	depositService, depositErr := NewDepositService(args.UOW, notificationService)
	if depositErr != nil {
		return nil, fmt.Errorf("service factory: %w", depositErr)
	}

	settingsService, settingsErr := NewSettingsService(args.UOW, args.Sealer, args.Prober, args.Logger)
	if settingsErr != nil {
		return nil, fmt.Errorf("service factory: %w", settingsErr)
	}

	statsService, statsErr := NewStatsService(args.UOW)
	if statsErr != nil {
		return nil, fmt.Errorf("service factory: %w", statsErr)
	}

	return &AppServices{
		UserService:         userService,
		ProductService:      productService,
		PurchaseService:     NewPurchaseService(args.UOW, notificationService),
		OrderService:        orderService,
		DepositService:      depositService,
		NotificationService: notificationService,
		SettingsService:     settingsService,
		StatsService:        statsService,
	}, nil
}
