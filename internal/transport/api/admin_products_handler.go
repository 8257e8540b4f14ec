package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminProductsHandler struct {
	productSvs ProductServicer
}

func NewAdminProductsHandler(productSvs ProductServicer) *AdminProductsHandler {
	return &AdminProductsHandler{
		productSvs: productSvs,
	}
}

// Index GET AdminRouteGroup + AdminProductsRoute. Все продукты, включая выключенные, с остатками кодов.
func (h *AdminProductsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.productSvs.ListAll(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]ProductResponse, len(products))
	for i := range products {
		response[i] = newProductStockResponse(&products[i], true)
	}
	c.JSON(http.StatusOK, response)
}

type CreateProductParams struct {
	Name     string          `binding:"required,max=100"   json:"name"`
	UCAmount int64           `binding:"required,gt=0"      json:"uc_amount"`
	Price    decimal.Decimal `binding:"required,dgt=0"     json:"price"`
	Image    *string         `binding:"omitempty,max=2048" json:"image"`
}

// Create POST AdminRouteGroup + AdminProductsRoute.
func (h *AdminProductsHandler) Create(c *gin.Context) {
	var params CreateProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.productSvs.Create(reqCtx, repoargs.CreateProduct{
		Name:     params.Name,
		UCAmount: params.UCAmount,
		Price:    params.Price,
		Image:    params.Image,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

type UpdateProductParams struct {
	Name     *string          `binding:"omitempty,min=1,max=100" json:"name"`
	UCAmount *int64           `binding:"omitempty,gt=0"          json:"uc_amount"`
	Price    *decimal.Decimal `binding:"omitempty,dgt=0"         json:"price"`
	Image    *string          `binding:"omitempty,max=2048"      json:"image"`
	IsActive *bool            `json:"is_active"`
}

// Update PUT AdminRouteGroup + AdminProductRoute. Меняются только переданные поля.
func (h *AdminProductsHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params UpdateProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.productSvs.Update(reqCtx, id, repoargs.UpdateProduct{
		Name:     params.Name,
		UCAmount: params.UCAmount,
		Price:    params.Price,
		Image:    params.Image,
		IsActive: params.IsActive,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

// Delete DELETE AdminRouteGroup + AdminProductRoute. Продукт выключается, история заказов сохраняется.
func (h *AdminProductsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.productSvs.Deactivate(reqCtx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	success(c)
}

// Codes GET AdminRouteGroup + AdminProductCodesRoute.
func (h *AdminProductsHandler) Codes(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	codes, err := h.productSvs.Codes(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]CodeResponse, len(codes))
	for i, code := range codes {
		response[i] = CodeResponse{
			ID:        code.ID,
			ProductID: code.ProductID,
			Code:      code.Code,
			IsUsed:    code.IsUsed,
			OrderID:   code.OrderID,
			CreatedAt: code.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type AddCodesParams struct {
	Codes []string `binding:"required,max=10000" json:"codes"`
}

type AddCodesResponse struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
}

// AddCodes POST AdminRouteGroup + AdminProductCodesRoute. Элемент может содержать несколько кодов
// через перевод строки (вставка из текстового поля).
func (h *AdminProductsHandler) AddCodes(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params AddCodesParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	var raw []string
	for _, chunk := range params.Codes {
		raw = append(raw, strings.Split(chunk, "\n")...)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.productSvs.AddCodes(reqCtx, id, raw)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AddCodesResponse{Added: result.Added, Duplicates: result.Duplicates})
}
