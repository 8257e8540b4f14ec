package pgrepo

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

const orderColumns = `o.id, o.created_at, o.user_id, o.product_id, o.code_id, o.player_id, o.amount, o.status`

const orderDetailsQuery = `SELECT ` + orderColumns + `, p.name, p.uc_amount, c.code, u.name, u.email
	FROM orders o
	JOIN products p ON p.id = o.product_id
	JOIN codes c ON c.id = o.code_id
	JOIN users u ON u.id = o.user_id`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create создает завершенный заказ. Повторное использование кода отклоняется уникальным индексом по code_id
// (domain.ErrDuplicateKey).
func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders AS o (user_id, product_id, code_id, player_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+orderColumns,
		args.UserID, args.ProductID, args.CodeID, args.PlayerID, args.Amount, string(domain.OrderStatusCompleted),
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user %d and code %d", args.UserID, args.CodeID)
	}
	return order, nil
}

// GetByUserID возвращает заказы юзера, отсортированные по дате создания по убыванию.
func (o *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.OrderDetails, error) {
	rows, err := o.conn.Query(ctx, orderDetailsQuery+` WHERE o.user_id = $1 ORDER BY o.created_at DESC, o.id DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting orders by userID `%d`", userID)
	}
	orders, collectErr := collectRows(rows, scanOrderDetails)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning orders of user %d", userID)
	}
	return orders, nil
}

func (o *OrderRepository) FindAll(ctx context.Context) ([]domain.OrderDetails, error) {
	rows, err := o.conn.Query(ctx, orderDetailsQuery+` ORDER BY o.created_at DESC, o.id DESC`)
	if err != nil {
		return nil, convertErr(err, "finding all orders")
	}
	orders, collectErr := collectRows(rows, scanOrderDetails)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning orders")
	}
	return orders, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var status string
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UserID,
		&order.ProductID,
		&order.CodeID,
		&order.PlayerID,
		&order.Amount,
		&status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	order.Status = domain.OrderStatusType(status)
	return &order, nil
}

func scanOrderDetails(row rowScanner) (*domain.OrderDetails, error) {
	var details domain.OrderDetails
	var status string
	if err := row.Scan(
		&details.ID,
		&details.CreatedAt,
		&details.UserID,
		&details.ProductID,
		&details.CodeID,
		&details.PlayerID,
		&details.Amount,
		&status,
		&details.ProductName,
		&details.UCAmount,
		&details.Code,
		&details.UserName,
		&details.UserEmail,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	details.Status = domain.OrderStatusType(status)
	return &details, nil
}
