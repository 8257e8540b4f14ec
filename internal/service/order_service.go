package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

type OrderService struct {
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := poolRepo[OrderRepository](u, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	return &OrderService{orderRepo: orderRepo}, nil
}

// UserOrders история заказов юзера, новые первыми.
func (o *OrderService) UserOrders(ctx context.Context, userID int64) ([]domain.OrderDetails, error) {
	orders, err := o.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing orders of user %d: %w", userID, err)
	}
	return orders, nil
}

func (o *OrderService) All(ctx context.Context) ([]domain.OrderDetails, error) {
	orders, err := o.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}
