package pgrepo

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

const productColumns = `p.id, p.created_at, p.updated_at, p.name, p.uc_amount, p.price, p.image, p.is_active`

// stockColumns считает коды продукта: свободные и всего.
const stockColumns = `,
	(SELECT count(*) FROM codes c WHERE c.product_id = p.id AND NOT c.is_used) AS available,
	(SELECT count(*) FROM codes c WHERE c.product_id = p.id) AS total`

type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

func (p *ProductRepository) Create(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO products AS p (name, uc_amount, price, image) VALUES ($1, $2, $3, $4)
		RETURNING `+productColumns,
		args.Name, args.UCAmount, args.Price, args.Image,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product %s", args.Name)
	}
	return product, nil
}

// Update частично обновляет продукт. Поля с nil значением остаются прежними.
func (p *ProductRepository) Update(ctx context.Context, id int64, args repoargs.UpdateProduct) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE products AS p SET
			name = COALESCE($2, p.name),
			uc_amount = COALESCE($3, p.uc_amount),
			price = COALESCE($4, p.price),
			image = COALESCE($5, p.image),
			is_active = COALESCE($6, p.is_active),
			updated_at = now()
		WHERE p.id = $1
		RETURNING `+productColumns,
		id, args.Name, args.UCAmount, args.Price, args.Image, args.IsActive,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "updating product %d", id)
	}
	return product, nil
}

func (p *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "getting product %d", id)
	}
	return product, nil
}

// FindActive возвращает активный продукт или domain.ErrRecordNotFound, если продукта нет или он выключен.
func (p *ProductRepository) FindActive(ctx context.Context, id int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1 AND p.is_active`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding active product %d", id)
	}
	return product, nil
}

// ListActiveWithStock витрина: активные продукты с количеством свободных кодов, дешевые первыми.
func (p *ProductRepository) ListActiveWithStock(ctx context.Context) ([]domain.ProductStock, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+productColumns+stockColumns+` FROM products p WHERE p.is_active ORDER BY p.price, p.id`,
	)
	if err != nil {
		return nil, convertErr(err, "listing active products")
	}
	products, collectErr := collectRows(rows, scanProductStock)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning active products")
	}
	return products, nil
}

// ListAllWithStock все продукты для админки, включая выключенные.
func (p *ProductRepository) ListAllWithStock(ctx context.Context) ([]domain.ProductStock, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+productColumns+stockColumns+` FROM products p ORDER BY p.created_at DESC, p.id DESC`,
	)
	if err != nil {
		return nil, convertErr(err, "listing products")
	}
	products, collectErr := collectRows(rows, scanProductStock)
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning products")
	}
	return products, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Name,
		&product.UCAmount,
		&product.Price,
		&product.Image,
		&product.IsActive,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &product, nil
}

func scanProductStock(row rowScanner) (*domain.ProductStock, error) {
	var stock domain.ProductStock
	if err := row.Scan(
		&stock.ID,
		&stock.CreatedAt,
		&stock.UpdatedAt,
		&stock.Name,
		&stock.UCAmount,
		&stock.Price,
		&stock.Image,
		&stock.IsActive,
		&stock.Available,
		&stock.Total,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &stock, nil
}
