package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/catalog"
)

// CreateBrandRequest represents a request to create a brand
type CreateBrandRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// UpdateBrandRequest represents a request to rename a brand
type UpdateBrandRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Models    []ShoeModelResponse `json:"models"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CreateShoeModelRequest represents a request to create a shoe model
type CreateShoeModelRequest struct {
	Name    string    `json:"name" binding:"required,min=1,max=200"`
	BrandID uuid.UUID `json:"brand_id" binding:"required"`
}

// UpdateShoeModelRequest represents a request to rename a shoe model
type UpdateShoeModelRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// ShoeModelResponse represents a shoe model in API responses
type ShoeModelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BrandID   uuid.UUID `json:"brand_id"`
	BrandName string    `json:"brand_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBrandResponse converts a domain Brand to BrandResponse
func ToBrandResponse(b *catalog.Brand) *BrandResponse {
	resp := &BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Models:    make([]ShoeModelResponse, 0, len(b.Models)),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	for i := range b.Models {
		resp.Models = append(resp.Models, ToShoeModelResponse(&b.Models[i]))
	}
	return resp
}

// ToShoeModelResponse converts a domain ShoeModel to ShoeModelResponse
func ToShoeModelResponse(m *catalog.ShoeModel) ShoeModelResponse {
	resp := ShoeModelResponse{
		ID:        m.ID,
		Name:      m.Name,
		BrandID:   m.BrandID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Brand != nil {
		resp.BrandName = m.Brand.Name
	}
	return resp
}
