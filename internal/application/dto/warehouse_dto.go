package dto

import "time"

// CreateWarehouseRequest entrada para crear un almacén.
type CreateWarehouseRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Description string `json:"description"`
}

// UpdateWarehouseRequest entrada para actualizar un almacén activo.
type UpdateWarehouseRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Description *string `json:"description"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// ProductStock stock de un producto dentro del listado de almacenes.
type ProductStock struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}

// WarehouseListItem almacén con su stock total y los productos que aloja.
type WarehouseListItem struct {
	WarehouseResponse
	TotalStock int            `json:"total_stock"`
	Products   []ProductStock `json:"products"`
}

// WarehouseSelectionItem par id-nombre para selectores.
type WarehouseSelectionItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
