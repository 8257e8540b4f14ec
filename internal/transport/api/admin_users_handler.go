package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminUsersHandler struct {
	userSvs UserServicer
}

func NewAdminUsersHandler(userSvs UserServicer) *AdminUsersHandler {
	return &AdminUsersHandler{
		userSvs: userSvs,
	}
}

// Index GET AdminRouteGroup + AdminUsersRoute.
func (h *AdminUsersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userSvs.List(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, response)
}

type SetBalanceParams struct {
	Balance *decimal.Decimal `binding:"required,dgte=0" json:"balance"`
}

// SetBalance PUT AdminRouteGroup + AdminUserBalanceRoute. Перезаписывает баланс юзера.
func (h *AdminUsersHandler) SetBalance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params SetBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.SetBalance(reqCtx, id, *params.Balance)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type BanParams struct {
	Banned *bool  `binding:"required" json:"banned"`
	Reason string `binding:"max=500"  json:"reason"`
}

// Ban PUT AdminRouteGroup + AdminUserBanRoute.
func (h *AdminUsersHandler) Ban(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params BanParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.SetBanned(reqCtx, id, *params.Banned, params.Reason)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type PurchaseAccessParams struct {
	CanPurchase *bool `binding:"required" json:"canPurchase"`
}

// PurchaseAccess PUT AdminRouteGroup + AdminUserPurchaseRoute.
func (h *AdminUsersHandler) PurchaseAccess(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params PurchaseAccessParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.SetCanPurchase(reqCtx, id, *params.CanPurchase)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// ResetBalance PUT AdminRouteGroup + AdminUserResetBalanceRoute.
func (h *AdminUsersHandler) ResetBalance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.ResetBalance(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// Activity GET AdminRouteGroup + AdminUserActivityRoute.
func (h *AdminUsersHandler) Activity(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	activity, err := h.userSvs.Activity(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newActivityResponse(activity))
}
