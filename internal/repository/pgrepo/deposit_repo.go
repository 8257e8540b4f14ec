package pgrepo

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

const depositColumns = `d.id, d.created_at, d.updated_at, d.user_id, d.amount, d.transaction_id, d.status`

const depositDetailsQuery = `SELECT ` + depositColumns + `, u.name, u.email
	FROM deposits d
	JOIN users u ON u.id = d.user_id`

type DepositRepository struct {
	conn uow.DBTX
}

func NewDepositRepository(conn uow.DBTX) *DepositRepository {
	return &DepositRepository{conn: conn}
}

// Create создает депозит в статусе pending.
func (d *DepositRepository) Create(ctx context.Context, args repoargs.CreateDeposit) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx,
		`INSERT INTO deposits AS d (user_id, amount, transaction_id, status) VALUES ($1, $2, $3, $4)
		RETURNING `+depositColumns,
		args.UserID, args.Amount, args.TransactionID, string(domain.DepositStatusPending),
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "creating deposit for user %d", args.UserID)
	}
	return deposit, nil
}

func (d *DepositRepository) GetByID(ctx context.Context, id int64) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx, `SELECT `+depositColumns+` FROM deposits d WHERE d.id = $1`, id)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "getting deposit %d", id)
	}
	return deposit, nil
}

// TransitionStatus переводит депозит из статуса from в статус to одним условным UPDATE. Если депозита нет
// или его статус уже не from, возвращает domain.ErrRecordNotFound: различать эти случаи - задача вызывающего.
func (d *DepositRepository) TransitionStatus(
	ctx context.Context,
	id int64,
	from, to domain.DepositStatusType,
) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx,
		`UPDATE deposits AS d SET status = $3, updated_at = now()
		WHERE d.id = $1 AND d.status = $2
		RETURNING `+depositColumns,
		id, string(from), string(to),
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "moving deposit %d from %s to %s", id, from, to)
	}
	return deposit, nil
}

func (d *DepositRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Deposit, error) {
	rows, err := d.conn.Query(ctx,
		`SELECT `+depositColumns+` FROM deposits d WHERE d.user_id = $1 ORDER BY d.created_at DESC, d.id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting deposits of user %d", userID)
	}
	deposits, collectErr := collectRows(rows, scanDeposit)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning deposits of user %d", userID)
	}
	return deposits, nil
}

func (d *DepositRepository) FindAll(ctx context.Context) ([]domain.DepositDetails, error) {
	rows, err := d.conn.Query(ctx, depositDetailsQuery+` ORDER BY d.created_at DESC, d.id DESC`)
	if err != nil {
		return nil, convertErr(err, "finding all deposits")
	}
	deposits, collectErr := collectRows(rows, scanDepositDetails)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning deposits")
	}
	return deposits, nil
}

// FindPending возвращает депозиты, ожидающие подтверждения, старые первыми.
func (d *DepositRepository) FindPending(ctx context.Context) ([]domain.DepositDetails, error) {
	rows, err := d.conn.Query(ctx,
		depositDetailsQuery+` WHERE d.status = $1 ORDER BY d.created_at, d.id`,
		string(domain.DepositStatusPending),
	)
	if err != nil {
		return nil, convertErr(err, "finding pending deposits")
	}
	deposits, collectErr := collectRows(rows, scanDepositDetails)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning pending deposits")
	}
	return deposits, nil
}

func scanDeposit(row rowScanner) (*domain.Deposit, error) {
	var deposit domain.Deposit
	var status string
	if err := row.Scan(
		&deposit.ID,
		&deposit.CreatedAt,
		&deposit.UpdatedAt,
		&deposit.UserID,
		&deposit.Amount,
		&deposit.TransactionID,
		&status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	deposit.Status = domain.DepositStatusType(status)
	return &deposit, nil
}

func scanDepositDetails(row rowScanner) (*domain.DepositDetails, error) {
	var details domain.DepositDetails
	var status string
	if err := row.Scan(
		&details.ID,
		&details.CreatedAt,
		&details.UpdatedAt,
		&details.UserID,
		&details.Amount,
		&details.TransactionID,
		&status,
		&details.UserName,
		&details.UserEmail,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	details.Status = domain.DepositStatusType(status)
	return &details, nil
}
