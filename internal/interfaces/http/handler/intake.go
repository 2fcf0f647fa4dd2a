package handler

import (
	inventoryapp "github.com/zapateria/backend/internal/application/inventory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IntakeHandler handles intake batch API endpoints
type IntakeHandler struct {
	BaseHandler
	intakeService *inventoryapp.IntakeService
}

// NewIntakeHandler creates a new IntakeHandler
func NewIntakeHandler(intakeService *inventoryapp.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// RegisterRoutes registers intake batch routes
func (h *IntakeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	intakes := rg.Group("/intakes")
	intakes.POST("", h.Create)
	intakes.GET("", h.ListByModel)
	intakes.GET("/:id", h.GetByID)
	intakes.DELETE("/:id", h.Delete)
}

// Create records an intake batch, one unit per size entry
func (h *IntakeHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	batch, err := h.intakeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, batch)
}

// ListByModel returns the intake batches of a shoe model, newest first.
// The model is selected via the required ?model_id= query parameter.
func (h *IntakeHandler) ListByModel(c *gin.Context) {
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

	batches, err := h.intakeService.ListByModel(c.Request.Context(), modelID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batches)
}

// GetByID returns a single intake batch with its units
func (h *IntakeHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return
	}

	batch, err := h.intakeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batch)
}

// Delete removes an intake batch along with its units
func (h *IntakeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return
	}

	if err := h.intakeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
