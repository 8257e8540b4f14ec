package pgrepo

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const codeColumns = `id, created_at, product_id, code, is_used, order_id`

type CodeRepository struct {
	conn uow.DBTX
}

func NewCodeRepository(conn uow.DBTX) *CodeRepository {
	return &CodeRepository{conn: conn}
}

// FindUnused выбирает первый добавленный свободный код продукта и блокирует его строку до конца транзакции.
// Строки, уже заблокированные конкурентными покупками, пропускаются (SKIP LOCKED), поэтому две транзакции
// никогда не получат один и тот же код. Если свободных кодов нет, возвращает domain.ErrRecordNotFound.
func (c *CodeRepository) FindUnused(ctx context.Context, productID int64) (*domain.Code, error) {
	row := c.conn.QueryRow(ctx,
		`SELECT `+codeColumns+` FROM codes
		WHERE product_id = $1 AND NOT is_used
		ORDER BY id
		LIMIT 1
		FOR UPDATE SKIP LOCKED`,
		productID,
	)
	code, err := scanCode(row)
	if err != nil {
		return nil, convertErr(err, "finding unused code for product %d", productID)
	}
	return code, nil
}

// MarkUsed помечает код использованным и привязывает его к заказу. Обновление условное: если код уже
// использован, возвращает domain.ErrCodeAlreadyUsed.
func (c *CodeRepository) MarkUsed(ctx context.Context, codeID, orderID int64) error {
	tag, err := c.conn.Exec(ctx,
		`UPDATE codes SET is_used = TRUE, order_id = $2 WHERE id = $1 AND NOT is_used`,
		codeID, orderID,
	)
	if err != nil {
		return convertErr(err, "marking code %d used by order %d", codeID, orderID)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCodeAlreadyUsed
	}
	return nil
}

// BatchCreate добавляет коды продукта одним батчем. Результат каждой вставки передается в fn.
func (c *CodeRepository) BatchCreate(
	ctx context.Context,
	productID int64,
	codes []string,
	fn repoargs.BatchExecQueryRow,
) error {
	batch := new(pgx.Batch)
	for _, code := range codes {
		batch.Queue(`INSERT INTO codes (product_id, code) VALUES ($1, $2)`, productID, code)
	}

	results := c.conn.SendBatch(ctx, batch)
	for i := range codes {
		_, execErr := results.Exec()
		fn(i, convertErr(execErr, "creating code #%d for product %d", i, productID))
	}
	if err := results.Close(); err != nil {
		return convertErr(err, "closing codes batch for product %d", productID)
	}
	return nil
}

func (c *CodeRepository) GetByProductID(ctx context.Context, productID int64) ([]domain.Code, error) {
	rows, err := c.conn.Query(ctx,
		`SELECT `+codeColumns+` FROM codes WHERE product_id = $1 ORDER BY id`,
		productID,
	)
	if err != nil {
		return nil, convertErr(err, "getting codes of product %d", productID)
	}
	codes, collectErr := collectRows(rows, scanCode)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning codes of product %d", productID)
	}
	return codes, nil
}

func (c *CodeRepository) CountAvailable(ctx context.Context, productID int64) (int64, error) {
	var count int64
	if err := c.conn.QueryRow(ctx,
		`SELECT count(*) FROM codes WHERE product_id = $1 AND NOT is_used`,
		productID,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting available codes of product %d", productID)
	}
	return count, nil
}

func scanCode(row rowScanner) (*domain.Code, error) {
	var code domain.Code
	if err := row.Scan(
		&code.ID,
		&code.CreatedAt,
		&code.ProductID,
		&code.Code,
		&code.IsUsed,
		&code.OrderID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &code, nil
}
