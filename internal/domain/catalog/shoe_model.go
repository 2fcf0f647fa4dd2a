package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/shared"
)

// ShoeModel represents a shoe model belonging to a brand.
// Intake batches reference a model; units inherit brand/model display
// names through their batch.
type ShoeModel struct {
	shared.BaseEntity
	Name    string    `gorm:"type:varchar(200);not null"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index"`

	Brand *Brand `gorm:"foreignKey:BrandID"`
}

// TableName returns the table name for GORM
func (ShoeModel) TableName() string {
	return "shoe_models"
}

// NewShoeModel creates a new shoe model under the given brand
func NewShoeModel(brandID uuid.UUID, name string) (*ShoeModel, error) {
	if brandID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRAND", "Brand reference is required")
	}
	if err := validateModelName(name); err != nil {
		return nil, err
	}

	return &ShoeModel{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		BrandID:    brandID,
	}, nil
}

// Rename updates the model's name
func (m *ShoeModel) Rename(name string) error {
	if err := validateModelName(name); err != nil {
		return err
	}

	m.Name = strings.TrimSpace(name)
	m.Touch()
	return nil
}

// DisplayName returns the "{brand} - {model}" label used across listings
// and withdrawal detail lines. Falls back to the bare model name when the
// brand association is not loaded.
func (m *ShoeModel) DisplayName() string {
	if m.Brand == nil {
		return m.Name
	}
	return m.Brand.Name + " - " + m.Name
}

func validateModelName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Model name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Model name cannot exceed 200 characters")
	}
	return nil
}
