package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/uc-store/internal/config"
	"github.com/fsdevblog/uc-store/internal/logger"
	"github.com/fsdevblog/uc-store/internal/repository/pgrepo"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/fsdevblog/uc-store/internal/service/psswd"
	"github.com/fsdevblog/uc-store/internal/transport/api"
	"github.com/fsdevblog/uc-store/internal/transport/binance"
	"github.com/fsdevblog/uc-store/internal/transport/binance/client"
	"github.com/fsdevblog/uc-store/pkg/sealer"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	startupTimeout    = 30 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := logger.Component(a.Logger, "app")
	l.Infof("Starting app with config: %+v", a.Config)

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %w", uowErr)
	}

	credentialSealer, sealerErr := sealer.New(a.Config.EncryptionKey)
	if sealerErr != nil {
		return fmt.Errorf("app run: %w", sealerErr)
	}
	binanceClient := client.New(a.Config.BinanceBaseURL)

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:       unitOfWork,
		JWTSecret: []byte(a.Config.JWTSecret),
		Hasher:    psswd.New(),
		Sealer:    credentialSealer,
		Prober:    binanceClient,
		Logger:    a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	verifier := binance.New(binanceClient, services.DepositService, services.SettingsService, a.Logger).
		WithInterval(a.Config.AutoVerifyInterval)
	services.SettingsService.AttachScheduler(verifier)
	defer verifier.Stop()

	if err := a.bootstrap(notifyCtx, services); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		ProductService:      services.ProductService,
		PurchaseService:     services.PurchaseService,
		OrderService:        services.OrderService,
		DepositService:      services.DepositService,
		NotificationService: services.NotificationService,
		SettingsService:     services.SettingsService,
		StatsService:        services.StatsService,
		JWTSecretKey:        []byte(a.Config.JWTSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		l.Infof("Listening on %s", server.Addr)
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			l.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// bootstrap создает администратора из окружения и возобновляет автопроверку депозитов, если она была
// включена до рестарта.
func (a *App) bootstrap(ctx context.Context, services *service.AppServices) error {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	l := logger.Component(a.Logger, "app")

	if a.Config.AdminEmail != "" {
		created, err := services.UserService.EnsureAdmin(ctx, a.Config.AdminEmail, a.Config.AdminPassword)
		if err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		if created {
			l.WithField("email", a.Config.AdminEmail).Info("admin account created")
		}
	}

	started, err := services.SettingsService.ResumeVerification(ctx)
	if err != nil {
		// автопроверка не критична для старта, депозиты можно подтвердить вручную
		l.WithError(err).Warn("resume deposit verification")
		return nil
	}
	if started {
		l.Info("deposit auto verification resumed")
	}
	return nil
}

type repoFactory struct {
	name    repoargs.RepositoryName
	factory uow.RepositoryFactory
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	repos := []repoFactory{
		{repoargs.UserRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) }},
		{repoargs.ProductRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewProductRepository(dbtx) }},
		{repoargs.CodeRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewCodeRepository(dbtx) }},
		{repoargs.OrderRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOrderRepository(dbtx) }},
		{repoargs.DepositRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewDepositRepository(dbtx) }},
		{
			repoargs.NotificationRepoName,
			func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewNotificationRepository(dbtx) },
		},
		{repoargs.SettingRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewSettingRepository(dbtx) }},
		{repoargs.StatsRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewStatsRepository(dbtx) }},
	}
	for _, r := range repos {
		if regErr := unitOfWork.Register(uow.RepositoryName(r.name), r.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}
	return unitOfWork, nil
}
