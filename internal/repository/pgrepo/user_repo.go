package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, email, name, encrypted_password, balance, role,
	is_banned, ban_reason, can_purchase`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера. В случае конфликта email возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	role := args.Role
	if role == "" {
		role = domain.RoleUser
	}
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (email, name, encrypted_password, role) VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Email, args.Name, args.Password, string(role),
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindByEmail ищет юзера по email. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "getting user by id %d", id)
	}
	return user, nil
}

// GetByIDForUpdate читает юзера с блокировкой строки до конца транзакции. Имеет смысл только внутри uow.Do.
func (u *UserRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "getting user for update by id %d", id)
	}
	return user, nil
}

// AdjustBalance атомарно изменяет баланс на delta одним UPDATE и возвращает новое значение.
// Если баланс стал бы отрицательным, возвращает domain.ErrNotEnoughBalance, если юзера нет -
// domain.ErrRecordNotFound.
func (u *UserRepository) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := u.conn.QueryRow(ctx,
		`UPDATE users SET balance = balance + $2, updated_at = now()
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING balance`,
		id, delta,
	).Scan(&balance)
	if err != nil {
		cErr := convertErr(err, "adjusting balance of user %d by %s", id, delta)
		if errors.Is(cErr, domain.ErrRecordNotFound) {
			// UPDATE не затронул строк: отличаем отсутствующего юзера от нехватки баланса.
			if _, getErr := u.GetByID(ctx, id); getErr != nil {
				return decimal.Zero, getErr
			}
			return decimal.Zero, domain.ErrNotEnoughBalance
		}
		return decimal.Zero, cErr
	}
	return balance, nil
}

// SetBalance выставляет баланс напрямую. Отрицательное значение отклоняется базой (domain.ErrCheckViolation).
func (u *UserRepository) SetBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET balance = $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, balance,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting balance of user %d", id)
	}
	return user, nil
}

func (u *UserRepository) SetBanned(ctx context.Context, id int64, banned bool, reason *string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET is_banned = $2, ban_reason = $3, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, banned, reason,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting banned=%t for user %d", banned, id)
	}
	return user, nil
}

func (u *UserRepository) SetCanPurchase(ctx context.Context, id int64, canPurchase bool) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET can_purchase = $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, canPurchase,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting can_purchase=%t for user %d", canPurchase, id)
	}
	return user, nil
}

func (u *UserRepository) UpdatePassword(ctx context.Context, id int64, encryptedPassword string) error {
	tag, err := u.conn.Exec(ctx,
		`UPDATE users SET encrypted_password = $2, updated_at = now() WHERE id = $1`,
		id, encryptedPassword,
	)
	if err != nil {
		return convertErr(err, "updating password of user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// FindAll возвращает всех юзеров, новые первыми.
func (u *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := u.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, convertErr(err, "finding all users")
	}
	users, collectErr := collectRows(rows, scanUser)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning users")
	}
	return users, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var role string
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Email,
		&user.Name,
		&user.EncryptedPassword,
		&user.Balance,
		&role,
		&user.IsBanned,
		&user.BanReason,
		&user.CanPurchase,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	user.Role = domain.RoleType(role)
	return &user, nil
}
