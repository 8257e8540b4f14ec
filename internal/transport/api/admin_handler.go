package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler статистика и модерация депозитов.
type AdminHandler struct {
	statsSvs   StatsServicer
	depositSvs DepositServicer
}

func NewAdminHandler(statsSvs StatsServicer, depositSvs DepositServicer) *AdminHandler {
	return &AdminHandler{
		statsSvs:   statsSvs,
		depositSvs: depositSvs,
	}
}

type StatsResponse struct {
	Users           int64   `json:"users"`
	Orders          int64   `json:"orders"`
	Revenue         float64 `json:"revenue"`
	PendingDeposits int64   `json:"pendingDeposits"`
}

// Stats GET AdminRouteGroup + AdminStatsRoute.
func (h *AdminHandler) Stats(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.statsSvs.Totals(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		Users:           stats.Users,
		Orders:          stats.Orders,
		Revenue:         stats.Revenue.InexactFloat64(),
		PendingDeposits: stats.PendingDeposits,
	})
}

type ChartDayResponse struct {
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
	Deposits int64   `json:"deposits"`
	Users    int64   `json:"users"`
}

// Chart GET AdminRouteGroup + AdminStatsChartRoute. Дни по возрастанию, последний - сегодня.
func (h *AdminHandler) Chart(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	days, err := h.statsSvs.Chart(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]ChartDayResponse, len(days))
	for i, d := range days {
		response[i] = ChartDayResponse{
			Name:     d.Day.Format("Mon"),
			Date:     d.Day.Format("2006-01-02"),
			Orders:   d.Orders,
			Revenue:  d.Revenue.InexactFloat64(),
			Deposits: d.Deposits,
			Users:    d.Users,
		}
	}
	c.JSON(http.StatusOK, response)
}

// Deposits GET AdminRouteGroup + AdminDepositsRoute.
func (h *AdminHandler) Deposits(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposits, err := h.depositSvs.All(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositDetailsResponses(deposits))
}

// PendingDeposits GET AdminRouteGroup + AdminPendingDepositsRoute. Старые первыми.
func (h *AdminHandler) PendingDeposits(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposits, err := h.depositSvs.Pending(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositDetailsResponses(deposits))
}

// ApproveDeposit PUT AdminRouteGroup + AdminApproveDepositRoute.
func (h *AdminHandler) ApproveDeposit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposit, err := h.depositSvs.Approve(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositResponse(deposit))
}

// RejectDeposit PUT AdminRouteGroup + AdminRejectDepositRoute.
func (h *AdminHandler) RejectDeposit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposit, err := h.depositSvs.Reject(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositResponse(deposit))
}
