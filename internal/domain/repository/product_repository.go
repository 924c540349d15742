package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// ProductWithStock fila de producto con su stock total sumado entre almacenes.
type ProductWithStock struct {
	Product    entity.Product
	TotalStock int
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	// ListWithTotalStock lista productos (activos o inactivos según el flag)
	// con la suma de stock de todos sus almacenes.
	ListWithTotalStock(active bool) ([]ProductWithStock, error)
	CountActive() (int64, error)
}
