package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	depositSvs DepositServicer
}

func NewWalletHandler(depositSvs DepositServicer) *WalletHandler {
	return &WalletHandler{
		depositSvs: depositSvs,
	}
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// Balance GET RouteGroup + BalanceRoute. Юзер в контексте загружен из базы на этом же запросе.
func (w *WalletHandler) Balance(c *gin.Context) {
	c.JSON(http.StatusOK, &BalanceResponse{
		Balance: getUserFromContext(c).Balance.InexactFloat64(),
	})
}

// Deposits GET RouteGroup + DepositsRoute.
func (w *WalletHandler) Deposits(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposits, err := w.depositSvs.UserDeposits(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositResponses(deposits))
}

type DepositParams struct {
	Amount        decimal.Decimal `binding:"required,dgt=0"   json:"amount"`
	TransactionID string          `binding:"required,max=128" json:"transactionId"`
}

// Deposit POST RouteGroup + DepositRoute. Создает заявку на пополнение в статусе pending.
func (w *WalletHandler) Deposit(c *gin.Context) {
	var params DepositParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposit, err := w.depositSvs.Submit(reqCtx, service.SubmitDepositArgs{
		UserID:        getUserIDFromContext(c),
		Amount:        params.Amount,
		TransactionID: params.TransactionID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositResponse(deposit))
}
