package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos con borrado lógico y restauración.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	minStock      int
}

// NewProductUseCase construye el caso de uso. defaultMinStock aplica cuando
// la petición de alta no trae umbral mínimo.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	defaultMinStock int,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		minStock:      defaultMinStock,
	}
}

// Create valida campos obligatorios, genera el SKU y crea el producto junto
// con su fila de inventario inicial en el almacén indicado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		SKU:         generateSKU(in.Name, now),
		Price:       in.Price,
		Category:    in.Category,
		Lifecycle:   entity.NewActiveLifecycle(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	minStock := in.MinStock
	if minStock <= 0 {
		minStock = uc.minStock
	}
	inv := &entity.Inventory{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		WarehouseID:  warehouse.ID,
		CurrentStock: in.InitialQuantity,
		MinStock:     minStock,
		UpdatedAt:    now,
	}
	if err := uc.inventoryRepo.Upsert(inv); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto activo por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.activeByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update modifica nombre, descripción, precio y categoría de un producto activo.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.activeByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != product.Name {
		other, err := uc.productRepo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos o inactivos con su stock total.
func (uc *ProductUseCase) List(active bool) ([]dto.ProductListItem, error) {
	rows, err := uc.productRepo.ListWithTotalStock(active)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ProductListItem{
			ProductResponse: *toProductResponse(&row.Product),
			TotalStock:      row.TotalStock,
		})
	}
	return items, nil
}

// Delete borrado lógico: el inventario y el historial del producto se conservan.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.activeByID(id)
	if err != nil {
		return err
	}
	product.Deactivate(time.Now())
	return uc.productRepo.Update(product)
}

// Restore reactiva un producto eliminado lógicamente.
func (uc *ProductUseCase) Restore(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.IsActive() {
		return domain.ErrAlreadyActive
	}
	product.Restore()
	product.UpdatedAt = time.Now()
	return uc.productRepo.Update(product)
}

func (uc *ProductUseCase) activeByID(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsActive() {
		return nil, domain.ErrEntityInactive
	}
	return product, nil
}

// generateSKU deriva el SKU del nombre en mayúsculas con guiones más un
// timestamp en milisegundos, único a efectos prácticos.
func generateSKU(name string, now time.Time) string {
	return fmt.Sprintf("%s-%d", strings.ToUpper(strings.ReplaceAll(name, " ", "-")), now.UnixMilli())
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Category:    p.Category,
		Active:      p.IsActive(),
		DeletedAt:   p.DeletedAt,
		CreatedAt:   p.CreatedAt,
	}
}
