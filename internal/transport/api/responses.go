package api

import (
	"time"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/service"
)

type UserResponse struct {
	ID          int64           `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Balance     float64         `json:"balance"`
	Role        domain.RoleType `json:"role"`
	IsBanned    bool            `json:"is_banned"`
	BanReason   *string         `json:"ban_reason"`
	CanPurchase bool            `json:"can_purchase"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Balance:     u.Balance.InexactFloat64(),
		Role:        u.Role,
		IsBanned:    u.IsBanned,
		BanReason:   u.BanReason,
		CanPurchase: u.CanPurchase,
		CreatedAt:   u.CreatedAt,
	}
}

type ProductResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UCAmount  int64   `json:"uc_amount"`
	Price     float64 `json:"price"`
	Image     *string `json:"image"`
	IsActive  bool    `json:"is_active"`
	Available int64   `json:"available"`
	Total     *int64  `json:"total,omitempty"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		UCAmount: p.UCAmount,
		Price:    p.Price.InexactFloat64(),
		Image:    p.Image,
		IsActive: p.IsActive,
	}
}

// newProductStockResponse withTotal добавляет общее количество кодов (для админки).
func newProductStockResponse(p *domain.ProductStock, withTotal bool) ProductResponse {
	resp := newProductResponse(&p.Product)
	resp.Available = p.Available
	if withTotal {
		total := p.Total
		resp.Total = &total
	}
	return resp
}

type CodeResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Code      string    `json:"code"`
	IsUsed    bool      `json:"is_used"`
	OrderID   *int64    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderResponse struct {
	ID          int64                  `json:"id"`
	UserID      int64                  `json:"user_id"`
	ProductID   int64                  `json:"product_id"`
	ProductName string                 `json:"product_name,omitempty"`
	UCAmount    int64                  `json:"uc_amount,omitempty"`
	Code        string                 `json:"code,omitempty"`
	PlayerID    string                 `json:"player_id"`
	Amount      float64                `json:"amount"`
	Status      domain.OrderStatusType `json:"status"`
	UserName    string                 `json:"user_name,omitempty"`
	UserEmail   string                 `json:"user_email,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		PlayerID:  o.PlayerID,
		Amount:    o.Amount.InexactFloat64(),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func newOrderDetailsResponses(orders []domain.OrderDetails) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = newOrderResponse(&o.Order)
		resp[i].ProductName = o.ProductName
		resp[i].UCAmount = o.UCAmount
		resp[i].Code = o.Code
		resp[i].UserName = o.UserName
		resp[i].UserEmail = o.UserEmail
	}
	return resp
}

type DepositResponse struct {
	ID            int64                    `json:"id"`
	UserID        int64                    `json:"user_id"`
	Amount        float64                  `json:"amount"`
	TransactionID string                   `json:"transaction_id"`
	Status        domain.DepositStatusType `json:"status"`
	UserName      string                   `json:"user_name,omitempty"`
	UserEmail     string                   `json:"user_email,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

func newDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Amount:        d.Amount.InexactFloat64(),
		TransactionID: d.TransactionID,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

func newDepositResponses(deposits []domain.Deposit) []DepositResponse {
	resp := make([]DepositResponse, len(deposits))
	for i := range deposits {
		resp[i] = newDepositResponse(&deposits[i])
	}
	return resp
}

func newDepositDetailsResponses(deposits []domain.DepositDetails) []DepositResponse {
	resp := make([]DepositResponse, len(deposits))
	for i, d := range deposits {
		resp[i] = newDepositResponse(&d.Deposit)
		resp[i].UserName = d.UserName
		resp[i].UserEmail = d.UserEmail
	}
	return resp
}

type NotificationResponse struct {
	ID        int64                   `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

func newNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return resp
}

type ActivityStatsResponse struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalSpent      float64 `json:"totalSpent"`
	TotalDeposits   float64 `json:"totalDeposits"`
	PendingDeposits int     `json:"pendingDeposits"`
}

type ActivityResponse struct {
	User          UserResponse           `json:"user"`
	Orders        []OrderResponse        `json:"orders"`
	Deposits      []DepositResponse      `json:"deposits"`
	Notifications []NotificationResponse `json:"notifications"`
	Stats         ActivityStatsResponse  `json:"stats"`
}

func newActivityResponse(a *service.UserActivity) ActivityResponse {
	return ActivityResponse{
		User:          newUserResponse(a.User),
		Orders:        newOrderDetailsResponses(a.Orders),
		Deposits:      newDepositResponses(a.Deposits),
		Notifications: newNotificationResponses(a.Notifications),
		Stats: ActivityStatsResponse{
			TotalOrders:     a.Stats.TotalOrders,
			TotalSpent:      a.Stats.TotalSpent.InexactFloat64(),
			TotalDeposits:   a.Stats.TotalDeposits.InexactFloat64(),
			PendingDeposits: a.Stats.PendingDeposits,
		},
	}
}
