package handler

import (
	financeapp "github.com/zapateria/backend/internal/application/finance"
	"github.com/zapateria/backend/internal/domain/identity"
	"github.com/zapateria/backend/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
)

// FinanceHandler handles available funds, debts and withdrawal API endpoints
type FinanceHandler struct {
	BaseHandler
	withdrawalService *financeapp.WithdrawalService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(withdrawalService *financeapp.WithdrawalService) *FinanceHandler {
	return &FinanceHandler{withdrawalService: withdrawalService}
}

// RegisterRoutes registers finance routes. Settling a withdrawal
// is restricted to admins.
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	finance := rg.Group("/finance")
	finance.GET("/funds", h.ListAvailableFunds)
	finance.GET("/debts", h.ListOutstandingDebts)
	finance.GET("/withdrawals", h.ListHistory)
	finance.GET("/withdrawals/:id", h.GetWithdrawal)
	finance.POST("/withdrawals", middleware.RequireRole(string(identity.RoleAdmin)), h.Settle)
}

// ListAvailableFunds returns per-unit withdrawable amounts and their total
func (h *FinanceHandler) ListAvailableFunds(c *gin.Context) {
	funds, err := h.withdrawalService.ListAvailableFunds(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, funds)
}

// ListOutstandingDebts returns the sales still short of their agreed price
func (h *FinanceHandler) ListOutstandingDebts(c *gin.Context) {
	debts, err := h.withdrawalService.ListOutstandingDebts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, debts)
}

// Settle records a cash withdrawal over the selected units
func (h *FinanceHandler) Settle(c *gin.Context) {
	var req financeapp.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.Settle(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, withdrawal)
}

// GetWithdrawal returns a single past withdrawal with its frozen detail lines
func (h *FinanceHandler) GetWithdrawal(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid withdrawal ID")
		return
	}

	withdrawal, err := h.withdrawalService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, withdrawal)
}

// ListHistory returns all past withdrawals, newest first
func (h *FinanceHandler) ListHistory(c *gin.Context) {
	withdrawals, err := h.withdrawalService.ListHistory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, withdrawals)
}
