package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/shared"
)

// IntakeBatch records one stock arrival of a shoe model: a set of units
// (one per pair) received on a given date. Deleting a batch removes its
// units with it.
type IntakeBatch struct {
	shared.BaseEntity
	ShoeModelID uuid.UUID `gorm:"type:uuid;not null;index"`
	IntakeDate  time.Time `gorm:"not null"`
	Units       []Unit    `gorm:"foreignKey:IntakeBatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (IntakeBatch) TableName() string {
	return "intake_batches"
}

// NewIntakeBatch creates a batch for a model with one unit per entry in
// sizes. Duplicate sizes are allowed; each entry is a distinct pair.
func NewIntakeBatch(modelID uuid.UUID, intakeDate time.Time, sizes []int, warehouseID uuid.UUID) (*IntakeBatch, error) {
	if modelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MODEL", "Shoe model reference is required")
	}
	if len(sizes) == 0 {
		return nil, shared.NewDomainError("INVALID_SIZES", "At least one size is required")
	}
	if intakeDate.IsZero() {
		intakeDate = time.Now()
	}

	batch := &IntakeBatch{
		BaseEntity:  shared.NewBaseEntity(),
		ShoeModelID: modelID,
		IntakeDate:  intakeDate,
	}

	for _, size := range sizes {
		unit, err := NewUnit(batch.ID, size, warehouseID)
		if err != nil {
			return nil, err
		}
		batch.Units = append(batch.Units, *unit)
	}

	return batch, nil
}
