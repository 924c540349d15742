package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. La cantidad inicial
// se asigna a un almacén específico, creando su fila de inventario.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	WarehouseID     string          `json:"warehouse_id"`
	InitialQuantity int             `json:"initial_quantity"`
	MinStock        int             `json:"min_stock"`
}

// UpdateProductRequest entrada para actualizar nombre, descripción, precio y categoría.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Active      bool            `json:"active"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListItem producto con su stock total sumado entre almacenes.
type ProductListItem struct {
	ProductResponse
	TotalStock int `json:"total_stock"`
}
