package catalog

import (
	"strings"

	"github.com/zapateria/backend/internal/domain/shared"
)

// Brand represents a shoe brand in the catalog context.
// It is the aggregate root for brand-related operations.
type Brand struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(200);not null;uniqueIndex"`

	Models []ShoeModel `gorm:"foreignKey:BrandID"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand with the given name
func NewBrand(name string) (*Brand, error) {
	if err := validateBrandName(name); err != nil {
		return nil, err
	}

	return &Brand{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}, nil
}

// Rename updates the brand's name
func (b *Brand) Rename(name string) error {
	if err := validateBrandName(name); err != nil {
		return err
	}

	b.Name = strings.TrimSpace(name)
	b.Touch()
	return nil
}

func validateBrandName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot exceed 200 characters")
	}
	return nil
}
