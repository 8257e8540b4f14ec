package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/internal/service/tokens"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	JWTTokenExpire = 7 * 24 * time.Hour

	activityNotificationsLimit uint = 20
)

type UserService struct {
	uow              uow.UOW
	userRepo         UserRepository
	orderRepo        OrderRepository
	depositRepo      DepositRepository
	notificationRepo NotificationRepository
	psswd            PasswordHasher
	notifier         Notifier
	jwtTokenSecret   []byte
}

func NewUserService(
	u uow.UOW,
	jwtTokenSecret []byte,
	psswd PasswordHasher,
	notifier Notifier,
) (*UserService, error) {
	userRepo, userRepoErr := poolRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	orderRepo, orderRepoErr := poolRepo[OrderRepository](u, repoargs.OrderRepoName)
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	depositRepo, depositRepoErr := poolRepo[DepositRepository](u, repoargs.DepositRepoName)
	if depositRepoErr != nil {
		return nil, depositRepoErr
	}
	notificationRepo, notificationRepoErr := poolRepo[NotificationRepository](u, repoargs.NotificationRepoName)
	if notificationRepoErr != nil {
		return nil, notificationRepoErr
	}
	return &UserService{
		uow:              u,
		userRepo:         userRepo,
		orderRepo:        orderRepo,
		depositRepo:      depositRepo,
		notificationRepo: notificationRepo,
		psswd:            psswd,
		notifier:         notifier,
		jwtTokenSecret:   jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Email    string
	Name     string
	Password string
}

// Register создает юзера в базе данных. После успешного создания генерирует jwt token. Возвращает 3 значения:
// созданный юзер, токен и ошибку. Занятый email - domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", hashErr)
	}

	user, userErr := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		Email:    normalizeEmail(args.Email),
		Name:     args.Name,
		Password: password,
		Role:     domain.RoleUser,
	})
	if userErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", userErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login проверяет email и пароль и выдает токен. Возможные ошибки: domain.ErrRecordNotFound,
// domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindByEmail(ctx, normalizeEmail(args.Email))
	if userErr != nil {
		return nil, "", fmt.Errorf("login user: %w", userErr)
	}
	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %w", tokenErr)
	}
	return user, token, nil
}

// GetByID актуальное состояние юзера.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return user, nil
}

// ChangePassword меняет пароль, если текущий пароль указан верно (иначе domain.ErrPasswordMissMatch).
func (s *UserService) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("changing password: %w", err)
	}
	if !s.psswd.ComparePassword(currentPassword, user.EncryptedPassword) {
		return fmt.Errorf("changing password: %w", domain.ErrPasswordMissMatch)
	}
	hash, hashErr := s.psswd.HashPassword(newPassword)
	if hashErr != nil {
		return fmt.Errorf("changing password: %w", hashErr)
	}
	if updErr := s.userRepo.UpdatePassword(ctx, id, hash); updErr != nil {
		return fmt.Errorf("changing password: %w", updErr)
	}
	return nil
}

// EnsureAdmin создает администратора с указанным email, если такого юзера еще нет. Существующий юзер
// не изменяется. Возвращает true, если администратор был создан.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}

	_, findErr := s.userRepo.FindByEmail(ctx, email)
	if findErr == nil {
		return false, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return false, fmt.Errorf("ensuring admin: %w", findErr)
	}

	hash, hashErr := s.psswd.HashPassword(password)
	if hashErr != nil {
		return false, fmt.Errorf("ensuring admin: %w", hashErr)
	}
	if _, createErr := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		Email:    email,
		Name:     "Admin",
		Password: hash,
		Role:     domain.RoleAdmin,
	}); createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			// создан конкурентно другим инстансом.
			return false, nil
		}
		return false, fmt.Errorf("ensuring admin: %w", createErr)
	}
	return true, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// SetBalance административная установка баланса. Отрицательная сумма - domain.ErrInvalidAmount.
func (s *UserService) SetBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.User, error) {
	if balance.IsNegative() || !balance.Equal(balance.Round(2)) { //nolint:mnd
		return nil, domain.ErrInvalidAmount
	}
	user, err := s.userRepo.SetBalance(ctx, id, balance)
	if err != nil {
		return nil, fmt.Errorf("setting balance of user %d: %w", id, err)
	}
	return user, nil
}

// ResetBalance обнуляет баланс юзера и уведомляет его о списанной сумме.
func (s *UserService) ResetBalance(ctx context.Context, id int64) (*domain.User, error) {
	var oldBalance decimal.Decimal
	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if repoErr != nil {
			return repoErr
		}
		current, getErr := repo.GetByIDForUpdate(c, id)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		oldBalance = current.Balance

		var setErr error
		user, setErr = repo.SetBalance(c, id, decimal.Zero)
		return setErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("resetting balance of user %d: %w", id, txErr)
	}

	s.notifier.Emit(ctx, id, domain.NotificationTypeSystem,
		"Balance Reset",
		fmt.Sprintf("Your balance of $%s has been reset to $0.00.", money(oldBalance)),
	)
	return user, nil
}

// SetBanned блокирует или разблокирует юзера. Причина блокировки попадает в уведомление.
func (s *UserService) SetBanned(ctx context.Context, id int64, banned bool, reason string) (*domain.User, error) {
	var reasonPtr *string
	if banned && reason != "" {
		reasonPtr = &reason
	}
	user, err := s.userRepo.SetBanned(ctx, id, banned, reasonPtr)
	if err != nil {
		return nil, fmt.Errorf("setting ban of user %d: %w", id, err)
	}

	if banned {
		message := reason
		if message == "" {
			message = "Your account has been suspended. Contact support for more information."
		}
		s.notifier.Emit(ctx, id, domain.NotificationTypeSystem, "Account Suspended", message)
	} else {
		s.notifier.Emit(ctx, id, domain.NotificationTypeSystem,
			"Account Restored",
			"Your account has been restored. You can now use all features.",
		)
	}
	return user, nil
}

// SetCanPurchase разрешает или запрещает юзеру покупки.
func (s *UserService) SetCanPurchase(ctx context.Context, id int64, canPurchase bool) (*domain.User, error) {
	user, err := s.userRepo.SetCanPurchase(ctx, id, canPurchase)
	if err != nil {
		return nil, fmt.Errorf("setting purchase flag of user %d: %w", id, err)
	}

	if canPurchase {
		s.notifier.Emit(ctx, id, domain.NotificationTypeSystem,
			"Purchases Enabled", "You can now make purchases again.")
	} else {
		s.notifier.Emit(ctx, id, domain.NotificationTypeSystem,
			"Purchases Disabled", "Your ability to make purchases has been temporarily disabled.")
	}
	return user, nil
}

// UserActivity сводка по юзеру для админки.
type UserActivity struct {
	User          *domain.User
	Orders        []domain.OrderDetails
	Deposits      []domain.Deposit
	Notifications []domain.Notification
	Stats         UserActivityStats
}

type UserActivityStats struct {
	TotalOrders     int
	TotalSpent      decimal.Decimal
	TotalDeposits   decimal.Decimal
	PendingDeposits int
}

func (s *UserService) Activity(ctx context.Context, id int64) (*UserActivity, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user activity: %w", err)
	}
	orders, ordersErr := s.orderRepo.GetByUserID(ctx, id)
	if ordersErr != nil {
		return nil, fmt.Errorf("user activity: %w", ordersErr)
	}
	deposits, depositsErr := s.depositRepo.GetByUserID(ctx, id)
	if depositsErr != nil {
		return nil, fmt.Errorf("user activity: %w", depositsErr)
	}
	notifications, notificationsErr := s.notificationRepo.GetByUserID(ctx, id, activityNotificationsLimit)
	if notificationsErr != nil {
		return nil, fmt.Errorf("user activity: %w", notificationsErr)
	}

	stats := UserActivityStats{
		TotalOrders:   len(orders),
		TotalSpent:    decimal.Zero,
		TotalDeposits: decimal.Zero,
	}
	for _, o := range orders {
		stats.TotalSpent = stats.TotalSpent.Add(o.Amount)
	}
	for _, d := range deposits {
		switch d.Status {
		case domain.DepositStatusApproved:
			stats.TotalDeposits = stats.TotalDeposits.Add(d.Amount)
		case domain.DepositStatusPending:
			stats.PendingDeposits++
		case domain.DepositStatusRejected:
		}
	}

	return &UserActivity{
		User:          user,
		Orders:        orders,
		Deposits:      deposits,
		Notifications: notifications,
		Stats:         stats,
	}, nil
}
