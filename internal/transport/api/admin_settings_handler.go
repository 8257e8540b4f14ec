package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/gin-gonic/gin"
)

type AdminSettingsHandler struct {
	svs SettingsServicer
}

func NewAdminSettingsHandler(svs SettingsServicer) *AdminSettingsHandler {
	return &AdminSettingsHandler{
		svs: svs,
	}
}

type BinanceStatusResponse struct {
	Enabled   bool `json:"enabled"`
	HasKeys   bool `json:"hasKeys"`
	Connected bool `json:"connected"`
}

// BinanceStatus GET AdminRouteGroup + AdminBinanceRoute.
func (h *AdminSettingsHandler) BinanceStatus(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status, err := h.svs.BinanceStatus(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BinanceStatusResponse{
		Enabled:   status.Enabled,
		HasKeys:   status.HasKeys,
		Connected: status.Connected,
	})
}

type ConfigureBinanceParams struct {
	APIKey    string `binding:"required,max=256" json:"apiKey"`
	APISecret string `binding:"required,max=256" json:"apiSecret"`
}

// ConfigureBinance POST AdminRouteGroup + AdminBinanceRoute. Ключи проверяются запросом к Binance, поэтому
// таймаут больше обычного.
func (h *AdminSettingsHandler) ConfigureBinance(c *gin.Context) {
	var params ConfigureBinanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, ProviderServiceTimeout)
	defer cancel()

	err := h.svs.ConfigureBinance(reqCtx, domain.BinanceCredentials{
		APIKey:    params.APIKey,
		APISecret: params.APISecret,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "connected": true})
}

type ToggleBinanceParams struct {
	Enabled *bool `binding:"required" json:"enabled"`
}

// ToggleBinance PUT AdminRouteGroup + AdminBinanceToggleRoute.
func (h *AdminSettingsHandler) ToggleBinance(c *gin.Context) {
	var params ToggleBinanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.ToggleBinance(reqCtx, *params.Enabled); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "connected": *params.Enabled})
}

// DeleteBinance DELETE AdminRouteGroup + AdminBinanceRoute.
func (h *AdminSettingsHandler) DeleteBinance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.DeleteBinance(reqCtx); err != nil {
		abortWithServiceError(c, err)
		return
	}
	success(c)
}
