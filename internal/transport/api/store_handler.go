package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	productSvs  ProductServicer
	purchaseSvs PurchaseServicer
}

func NewStoreHandler(productSvs ProductServicer, purchaseSvs PurchaseServicer) *StoreHandler {
	return &StoreHandler{
		productSvs:  productSvs,
		purchaseSvs: purchaseSvs,
	}
}

// Products GET RouteGroup + ProductsRoute. Витрина доступна без авторизации.
func (s *StoreHandler) Products(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := s.productSvs.Storefront(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i := range products {
		response[i] = newProductStockResponse(&products[i], false)
	}
	c.JSON(http.StatusOK, response)
}

type PurchaseParams struct {
	ProductID int64  `binding:"required,gt=0"  json:"productId"`
	PlayerID  string `binding:"required,max=64" json:"playerId"`
}

type PurchaseResponse struct {
	Order   OrderResponse `json:"order"`
	Code    string        `json:"code"`
	Balance float64       `json:"balance"`
}

// Purchase POST RouteGroup + PurchaseRoute.
func (s *StoreHandler) Purchase(c *gin.Context) {
	var params PurchaseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := s.purchaseSvs.Purchase(reqCtx, service.PurchaseArgs{
		UserID:    getUserIDFromContext(c),
		ProductID: params.ProductID,
		PlayerID:  params.PlayerID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	order := newOrderResponse(result.Order)
	order.ProductName = result.Product.Name
	order.UCAmount = result.Product.UCAmount
	order.Code = result.Code

	c.JSON(http.StatusOK, PurchaseResponse{
		Order:   order,
		Code:    result.Code,
		Balance: result.Balance.InexactFloat64(),
	})
}
