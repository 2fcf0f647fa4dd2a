package report

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/zapateria/backend/internal/domain/catalog"
	"github.com/zapateria/backend/internal/domain/inventory"
	"github.com/zapateria/backend/internal/domain/partner"
	"github.com/zapateria/backend/internal/domain/shared"
)

// StockOverviewService builds the warehouse view: available pairs grouped
// by warehouse, brand and model, with the distinct sizes in stock
type StockOverviewService struct {
	unitRepo      inventory.UnitRepository
	batchRepo     inventory.IntakeBatchRepository
	modelRepo     catalog.ShoeModelRepository
	warehouseRepo partner.WarehouseRepository
}

// NewStockOverviewService creates a new StockOverviewService
func NewStockOverviewService(
	unitRepo inventory.UnitRepository,
	batchRepo inventory.IntakeBatchRepository,
	modelRepo catalog.ShoeModelRepository,
	warehouseRepo partner.WarehouseRepository,
) *StockOverviewService {
	return &StockOverviewService{
		unitRepo:      unitRepo,
		batchRepo:     batchRepo,
		modelRepo:     modelRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Overview builds the stock overview across all warehouses. Units whose
// warehouse was deleted are grouped under an unnamed entry rather than
// dropped.
func (s *StockOverviewService) Overview(ctx context.Context) (*OverviewResponse, error) {
	filter := shared.DefaultFilter()
	filter.Filters["available"] = true

	units, err := s.unitRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	warehouses, err := s.warehouseRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	warehouseNames := make(map[uuid.UUID]string, len(warehouses))
	for _, w := range warehouses {
		warehouseNames[w.ID] = w.Name
	}

	batchModel := make(map[uuid.UUID]uuid.UUID)
	models := make(map[uuid.UUID]*catalog.ShoeModel)

	// warehouse -> brand -> model -> sizes
	type modelAgg struct {
		sizes map[int]int
	}
	agg := make(map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]*modelAgg)

	for _, unit := range units {
		modelID, ok := batchModel[unit.IntakeBatchID]
		if !ok {
			batch, err := s.batchRepo.FindByID(ctx, unit.IntakeBatchID)
			if err != nil {
				return nil, err
			}
			modelID = batch.ShoeModelID
			batchModel[unit.IntakeBatchID] = modelID
		}

		model, ok := models[modelID]
		if !ok {
			model, err = s.modelRepo.FindByID(ctx, modelID)
			if err != nil {
				return nil, err
			}
			models[modelID] = model
		}

		byBrand, ok := agg[unit.WarehouseID]
		if !ok {
			byBrand = make(map[uuid.UUID]map[uuid.UUID]*modelAgg)
			agg[unit.WarehouseID] = byBrand
		}
		byModel, ok := byBrand[model.BrandID]
		if !ok {
			byModel = make(map[uuid.UUID]*modelAgg)
			byBrand[model.BrandID] = byModel
		}
		entry, ok := byModel[modelID]
		if !ok {
			entry = &modelAgg{sizes: make(map[int]int)}
			byModel[modelID] = entry
		}
		entry.sizes[unit.Size]++
	}

	resp := &OverviewResponse{Warehouses: make([]WarehouseStock, 0, len(agg))}
	for warehouseID, byBrand := range agg {
		stock := WarehouseStock{
			WarehouseID:   warehouseID,
			WarehouseName: warehouseNames[warehouseID],
			Brands:        make([]BrandStock, 0, len(byBrand)),
		}

		for brandID, byModel := range byBrand {
			brandStock := BrandStock{
				BrandID: brandID,
				Models:  make([]ModelStock, 0, len(byModel)),
			}

			for modelID, entry := range byModel {
				model := models[modelID]
				if brandStock.Brand == "" && model.Brand != nil {
					brandStock.Brand = model.Brand.Name
				}

				sizes := make([]int, 0, len(entry.sizes))
				pairs := 0
				for size, count := range entry.sizes {
					sizes = append(sizes, size)
					pairs += count
				}
				sort.Ints(sizes)

				brandStock.Models = append(brandStock.Models, ModelStock{
					ModelID: modelID,
					Model:   model.Name,
					Sizes:   sizes,
					Pairs:   pairs,
				})
				resp.TotalPairs += pairs
			}

			sort.Slice(brandStock.Models, func(i, j int) bool {
				return brandStock.Models[i].Model < brandStock.Models[j].Model
			})
			stock.Brands = append(stock.Brands, brandStock)
		}

		sort.Slice(stock.Brands, func(i, j int) bool {
			return stock.Brands[i].Brand < stock.Brands[j].Brand
		})
		resp.Warehouses = append(resp.Warehouses, stock)
	}

	sort.Slice(resp.Warehouses, func(i, j int) bool {
		return resp.Warehouses[i].WarehouseName < resp.Warehouses[j].WarehouseName
	})

	return resp, nil
}
