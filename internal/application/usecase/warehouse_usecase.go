package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// WarehouseUseCase CRUD de almacenes. La eliminación es lógica y se bloquea
// mientras alguna fila de inventario del almacén tenga stock positivo.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	reportRepo    repository.ReportRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	reportRepo repository.ReportRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		reportRepo:    reportRepo,
	}
}

// Create crea un almacén con nombre único.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.warehouseRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		Description: in.Description,
		Lifecycle:   entity.NewActiveLifecycle(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza un almacén activo.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.activeByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != warehouse.Name {
		other, err := uc.warehouseRepo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if in.City != nil {
		warehouse.City = *in.City
	}
	if in.Description != nil {
		warehouse.Description = *in.Description
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Delete borrado lógico. Si el almacén tiene productos con stock positivo la
// eliminación se rechaza indicando cuántos.
func (uc *WarehouseUseCase) Delete(id string) error {
	warehouse, err := uc.activeByID(id)
	if err != nil {
		return err
	}
	withStock, err := uc.inventoryRepo.CountWithStock(warehouse.ID)
	if err != nil {
		return err
	}
	if withStock > 0 {
		return &domain.WarehouseHasStockError{ProductsWithStock: withStock}
	}
	warehouse.Deactivate(time.Now())
	return uc.warehouseRepo.Update(warehouse)
}

// Restore reactiva un almacén eliminado lógicamente y limpia su fecha de borrado.
func (uc *WarehouseUseCase) Restore(id string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if warehouse.IsActive() {
		return domain.ErrAlreadyActive
	}
	warehouse.Restore()
	warehouse.UpdatedAt = time.Now()
	return uc.warehouseRepo.Update(warehouse)
}

// List lista almacenes activos o inactivos con su stock total y, para los
// activos, los productos con stock que alojan.
func (uc *WarehouseUseCase) List(ctx context.Context, active bool) ([]dto.WarehouseListItem, error) {
	warehouses, err := uc.warehouseRepo.List(active)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseListItem, 0, len(warehouses))
	for _, wh := range warehouses {
		item := dto.WarehouseListItem{
			WarehouseResponse: *toWarehouseResponse(wh),
			Products:          []dto.ProductStock{},
		}
		rows, err := uc.reportRepo.StockByWarehouse(ctx, wh.ID)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			item.TotalStock += row.CurrentStock
			item.Products = append(item.Products, dto.ProductStock{
				ProductID:    row.ProductID,
				ProductName:  row.ProductName,
				CurrentStock: row.CurrentStock,
				MinStock:     row.MinStock,
			})
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByID devuelve un almacén por su id, activo o no.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// ActiveForSelection lista id y nombre de los almacenes activos.
func (uc *WarehouseUseCase) ActiveForSelection() ([]dto.WarehouseSelectionItem, error) {
	warehouses, err := uc.warehouseRepo.List(true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseSelectionItem, 0, len(warehouses))
	for _, wh := range warehouses {
		items = append(items, dto.WarehouseSelectionItem{ID: wh.ID, Name: wh.Name})
	}
	return items, nil
}

func (uc *WarehouseUseCase) activeByID(id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if !warehouse.IsActive() {
		return nil, domain.ErrEntityInactive
	}
	return warehouse, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Address:     w.Address,
		City:        w.City,
		Description: w.Description,
		Active:      w.IsActive(),
		DeletedAt:   w.DeletedAt,
	}
}
