package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

type ProductService struct {
	uow         uow.UOW
	productRepo ProductRepository
	codeRepo    CodeRepository
}

func NewProductService(u uow.UOW) (*ProductService, error) {
	productRepo, productRepoErr := poolRepo[ProductRepository](u, repoargs.ProductRepoName)
	if productRepoErr != nil {
		return nil, productRepoErr
	}
	codeRepo, codeRepoErr := poolRepo[CodeRepository](u, repoargs.CodeRepoName)
	if codeRepoErr != nil {
		return nil, codeRepoErr
	}
	return &ProductService{
		uow:         u,
		productRepo: productRepo,
		codeRepo:    codeRepo,
	}, nil
}

// Storefront активные продукты с количеством свободных кодов.
func (p *ProductService) Storefront(ctx context.Context) ([]domain.ProductStock, error) {
	products, err := p.productRepo.ListActiveWithStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing storefront: %w", err)
	}
	return products, nil
}

// ListAll все продукты, включая неактивные, с количеством свободных и всех кодов.
func (p *ProductService) ListAll(ctx context.Context) ([]domain.ProductStock, error) {
	products, err := p.productRepo.ListAllWithStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

func (p *ProductService) Create(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
	if !args.Price.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	product, err := p.productRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return product, nil
}

func (p *ProductService) Update(ctx context.Context, id int64, args repoargs.UpdateProduct) (*domain.Product, error) {
	if args.Price != nil && !args.Price.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	product, err := p.productRepo.Update(ctx, id, args)
	if err != nil {
		return nil, fmt.Errorf("updating product %d: %w", id, err)
	}
	return product, nil
}

// Deactivate скрывает продукт с витрины. Заказы и коды продукта сохраняются.
func (p *ProductService) Deactivate(ctx context.Context, id int64) (*domain.Product, error) {
	inactive := false
	return p.Update(ctx, id, repoargs.UpdateProduct{IsActive: &inactive})
}

func (p *ProductService) Codes(ctx context.Context, productID int64) ([]domain.Code, error) {
	if _, err := p.productRepo.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("listing codes: %w", err)
	}
	codes, err := p.codeRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("listing codes: %w", err)
	}
	return codes, nil
}

// AddCodesResult итог массового добавления кодов.
type AddCodesResult struct {
	Added      int
	Duplicates int
}

// AddCodes добавляет коды продукта. Пустые строки пропускаются, повторы (во входных данных и уже
// существующие у продукта) считаются в Duplicates и не добавляются.
func (p *ProductService) AddCodes(ctx context.Context, productID int64, raw []string) (*AddCodesResult, error) {
	codes, inputDuplicates := normalizeCodes(raw)
	result := AddCodesResult{Duplicates: inputDuplicates}
	if len(codes) == 0 {
		return &result, nil
	}

	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		productRepo, productRepoErr := txRepo[ProductRepository](tx, repoargs.ProductRepoName)
		if productRepoErr != nil {
			return productRepoErr
		}
		if _, err := productRepo.GetByID(c, productID); err != nil {
			return err //nolint:wrapcheck
		}

		codeRepo, codeRepoErr := txRepo[CodeRepository](tx, repoargs.CodeRepoName)
		if codeRepoErr != nil {
			return codeRepoErr
		}
		existing, existingErr := codeRepo.GetByProductID(c, productID)
		if existingErr != nil {
			return existingErr //nolint:wrapcheck
		}
		known := make(map[string]struct{}, len(existing))
		for _, code := range existing {
			known[code.Code] = struct{}{}
		}
		fresh := make([]string, 0, len(codes))
		for _, code := range codes {
			if _, ok := known[code]; ok {
				result.Duplicates++
				continue
			}
			fresh = append(fresh, code)
		}
		if len(fresh) == 0 {
			return nil
		}

		var batchErr error
		if err := codeRepo.BatchCreate(c, productID, fresh, func(_ int, err error) {
			switch {
			case err == nil:
				result.Added++
			case batchErr == nil:
				batchErr = err
			}
		}); err != nil {
			return err //nolint:wrapcheck
		}
		return batchErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("adding codes to product %d: %w", productID, txErr)
	}
	return &result, nil
}

// normalizeCodes обрезает пробелы, отбрасывает пустые строки и повторы. Возвращает уникальные коды в
// исходном порядке и число отброшенных повторов.
func normalizeCodes(raw []string) ([]string, int) {
	seen := make(map[string]struct{}, len(raw))
	codes := make([]string, 0, len(raw))
	var duplicates int
	for _, line := range raw {
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			duplicates++
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, duplicates
}
