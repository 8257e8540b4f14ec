package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/uc-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout  = 3 * time.Second
	ProviderServiceTimeout = 15 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute = "/auth/register"
	LoginRoute    = "/auth/login"
	LogoutRoute   = "/auth/logout"
	MeRoute       = "/auth/me"
	PasswordRoute = "/auth/password"

	ProductsRoute = "/products"
	PurchaseRoute = "/products/purchase"
	OrdersRoute   = "/orders"

	BalanceRoute  = "/wallet/balance"
	DepositsRoute = "/wallet/deposits"
	DepositRoute  = "/wallet/deposit"

	NotificationsRoute        = "/notifications"
	NotificationReadRoute     = "/notifications/:id/read"
	NotificationsReadAllRoute = "/notifications/read-all"
)

const (
	AdminRouteGroup = "/admin"

	AdminStatsRoute            = "/stats"
	AdminStatsChartRoute       = "/stats/chart"
	AdminUsersRoute            = "/users"
	AdminUserBalanceRoute      = "/users/:id/balance"
	AdminUserBanRoute          = "/users/:id/ban"
	AdminUserPurchaseRoute     = "/users/:id/purchase"
	AdminUserResetBalanceRoute = "/users/:id/reset-balance"
	AdminUserActivityRoute     = "/users/:id/activity"
	AdminProductsRoute         = "/products"
	AdminProductRoute          = "/products/:id"
	AdminProductCodesRoute     = "/products/:id/codes"
	AdminOrdersRoute           = "/orders"
	AdminDepositsRoute         = "/deposits"
	AdminPendingDepositsRoute  = "/deposits/pending"
	AdminApproveDepositRoute   = "/deposits/:id/approve"
	AdminRejectDepositRoute    = "/deposits/:id/reject"
	AdminBinanceRoute          = "/settings/binance"
	AdminBinanceToggleRoute    = "/settings/binance/toggle"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	ProductService      ProductServicer
	PurchaseService     PurchaseServicer
	OrderService        OrderServicer
	DepositService      DepositServicer
	NotificationService NotificationServicer
	SettingsService     SettingsServicer
	StatsService        StatsServicer
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	storeHandler := NewStoreHandler(args.ProductService, args.PurchaseService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	walletHandler := NewWalletHandler(args.DepositService)
	notificationsHandler := NewNotificationsHandler(args.NotificationService)
	adminHandler := NewAdminHandler(args.StatsService, args.DepositService)
	adminUsersHandler := NewAdminUsersHandler(args.UserService)
	adminProductsHandler := NewAdminProductsHandler(args.ProductService)
	adminSettingsHandler := NewAdminSettingsHandler(args.SettingsService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, authHandler.Register)
	api.POST(LoginRoute, authHandler.Login)
	api.POST(LogoutRoute, authHandler.Logout)
	api.GET(ProductsRoute, storeHandler.Products)

	authorized := api.Group("", middlewares.AuthRequired(args.JWTSecretKey, args.UserService))
	// ниже все роуты группы требуют авторизованного пользователя.
	authorized.GET(MeRoute, authHandler.Me)
	authorized.PUT(PasswordRoute, authHandler.ChangePassword)

	authorized.POST(PurchaseRoute, storeHandler.Purchase)
	authorized.GET(OrdersRoute, ordersHandler.Index)

	authorized.GET(BalanceRoute, walletHandler.Balance)
	authorized.GET(DepositsRoute, walletHandler.Deposits)
	authorized.POST(DepositRoute, walletHandler.Deposit)

	authorized.GET(NotificationsRoute, notificationsHandler.Index)
	authorized.PUT(NotificationReadRoute, notificationsHandler.MarkRead)
	authorized.PUT(NotificationsReadAllRoute, notificationsHandler.MarkAllRead)

	admin := authorized.Group(AdminRouteGroup, middlewares.AdminRequired())

	admin.GET(AdminStatsRoute, adminHandler.Stats)
	admin.GET(AdminStatsChartRoute, adminHandler.Chart)

	admin.GET(AdminUsersRoute, adminUsersHandler.Index)
	admin.PUT(AdminUserBalanceRoute, adminUsersHandler.SetBalance)
	admin.PUT(AdminUserBanRoute, adminUsersHandler.Ban)
	admin.PUT(AdminUserPurchaseRoute, adminUsersHandler.PurchaseAccess)
	admin.PUT(AdminUserResetBalanceRoute, adminUsersHandler.ResetBalance)
	admin.GET(AdminUserActivityRoute, adminUsersHandler.Activity)

	admin.GET(AdminProductsRoute, adminProductsHandler.Index)
	admin.POST(AdminProductsRoute, adminProductsHandler.Create)
	admin.PUT(AdminProductRoute, adminProductsHandler.Update)
	admin.DELETE(AdminProductRoute, adminProductsHandler.Delete)
	admin.GET(AdminProductCodesRoute, adminProductsHandler.Codes)
	admin.POST(AdminProductCodesRoute, adminProductsHandler.AddCodes)

	admin.GET(AdminOrdersRoute, ordersHandler.All)

	admin.GET(AdminDepositsRoute, adminHandler.Deposits)
	admin.GET(AdminPendingDepositsRoute, adminHandler.PendingDeposits)
	admin.PUT(AdminApproveDepositRoute, adminHandler.ApproveDeposit)
	admin.PUT(AdminRejectDepositRoute, adminHandler.RejectDeposit)

	admin.GET(AdminBinanceRoute, adminSettingsHandler.BinanceStatus)
	admin.POST(AdminBinanceRoute, adminSettingsHandler.ConfigureBinance)
	admin.PUT(AdminBinanceToggleRoute, adminSettingsHandler.ToggleBinance)
	admin.DELETE(AdminBinanceRoute, adminSettingsHandler.DeleteBinance)
	return r, nil
}
