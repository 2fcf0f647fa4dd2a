package handler

import (
	reportapp "github.com/zapateria/backend/internal/application/report"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles stock report API endpoints
type ReportHandler struct {
	BaseHandler
	stockService *reportapp.StockOverviewService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(stockService *reportapp.StockOverviewService) *ReportHandler {
	return &ReportHandler{stockService: stockService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.GET("/stock", h.StockOverview)
}

// StockOverview returns in-stock pairs grouped by warehouse, brand and model
func (h *ReportHandler) StockOverview(c *gin.Context) {
	overview, err := h.stockService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, overview)
}
