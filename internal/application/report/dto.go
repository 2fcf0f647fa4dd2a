package report

import (
	"github.com/google/uuid"
)

// ModelStock groups the available pairs of one shoe model
type ModelStock struct {
	ModelID uuid.UUID `json:"model_id"`
	Model   string    `json:"model"`
	// Sizes lists the distinct sizes in stock, ascending
	Sizes []int `json:"sizes"`
	// Pairs counts every available pair, duplicates included
	Pairs int `json:"pairs"`
}

// BrandStock groups the stock of one brand
type BrandStock struct {
	BrandID uuid.UUID    `json:"brand_id"`
	Brand   string       `json:"brand"`
	Models  []ModelStock `json:"models"`
}

// WarehouseStock is the stock overview of one warehouse
type WarehouseStock struct {
	WarehouseID   uuid.UUID    `json:"warehouse_id"`
	WarehouseName string       `json:"warehouse_name"`
	Brands        []BrandStock `json:"brands"`
}

// OverviewResponse is the full stock overview, one entry per warehouse
// that holds available pairs
type OverviewResponse struct {
	Warehouses []WarehouseStock `json:"warehouses"`
	TotalPairs int              `json:"total_pairs"`
}
