package handler

import (
	inventoryapp "github.com/zapateria/backend/internal/application/inventory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnitHandler handles unit sale and payment API endpoints
type UnitHandler struct {
	BaseHandler
	unitService *inventoryapp.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *inventoryapp.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// RegisterRoutes registers unit routes
func (h *UnitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	units.GET("/sold", h.ListSold)
	units.GET("/available", h.ListAvailable)
	units.GET("/:id", h.GetByID)
	units.PUT("/:id/payment", h.UpdatePayment)
	units.POST("/:id/refund", h.Refund)
}

// ListSold returns the units with a recorded sale, newest sale first
func (h *UnitHandler) ListSold(c *gin.Context) {
	units, err := h.unitService.ListSold(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, units)
}

// ListAvailable returns the in-stock units of a shoe model.
// The model is selected via the required ?model_id= query parameter.
func (h *UnitHandler) ListAvailable(c *gin.Context) {
	raw := c.Query("model_id")
	if raw == "" {
		h.BadRequest(c, "model_id query parameter is required")
		return
	}
	modelID, err := uuid.Parse(raw)
	if err != nil {
		h.BadRequest(c, "Invalid model_id filter")
		return
	}

	units, err := h.unitService.ListAvailableByModel(c.Request.Context(), modelID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, units)
}

// GetByID returns a single unit
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	unit, err := h.unitService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// UpdatePayment applies a sale/payment update to a unit
func (h *UnitHandler) UpdatePayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	var req inventoryapp.UpdateUnitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	unit, err := h.unitService.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// Refund undoes a sale and puts the pair back in stock
func (h *UnitHandler) Refund(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	result, err := h.unitService.Refund(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
