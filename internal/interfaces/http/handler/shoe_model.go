package handler

import (
	catalogapp "github.com/zapateria/backend/internal/application/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShoeModelHandler handles shoe model API endpoints
type ShoeModelHandler struct {
	BaseHandler
	modelService *catalogapp.ShoeModelService
}

// NewShoeModelHandler creates a new ShoeModelHandler
func NewShoeModelHandler(modelService *catalogapp.ShoeModelService) *ShoeModelHandler {
	return &ShoeModelHandler{modelService: modelService}
}

// RegisterRoutes registers shoe model routes
func (h *ShoeModelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	models := rg.Group("/models")
	models.POST("", h.Create)
	models.GET("", h.List)
	models.GET("/:id", h.GetByID)
	models.PUT("/:id", h.Rename)
	models.DELETE("/:id", h.Delete)
}

// Create creates a new shoe model under a brand
func (h *ShoeModelHandler) Create(c *gin.Context) {
	var req catalogapp.CreateShoeModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	model, err := h.modelService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, model)
}

// List returns shoe models, optionally filtered by brand via ?brand_id=
func (h *ShoeModelHandler) List(c *gin.Context) {
	var brandID *uuid.UUID
	if raw := c.Query("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid brand_id filter")
			return
		}
		brandID = &id
	}

	models, err := h.modelService.List(c.Request.Context(), brandID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, models)
}

// GetByID returns a single shoe model
func (h *ShoeModelHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid model ID")
		return
	}

	model, err := h.modelService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, model)
}

// Rename changes a shoe model's name
func (h *ShoeModelHandler) Rename(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid model ID")
		return
	}

	var req catalogapp.UpdateShoeModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	model, err := h.modelService.Rename(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, model)
}

// Delete removes a shoe model without intake batches
func (h *ShoeModelHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid model ID")
		return
	}

	if err := h.modelService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
