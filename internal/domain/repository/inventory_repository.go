package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para las filas de
// inventario (par producto-almacén). La unicidad del par y el stock no
// negativo se garantizan a nivel de esquema; el motor los re-verifica.
type InventoryRepository interface {
	// Get devuelve la fila del par o nil si nunca ha existido.
	Get(productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate igual que Get pero bloqueando la fila (SELECT FOR UPDATE)
	// hasta el commit de la transacción en curso.
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	// Upsert inserta o actualiza la fila del par.
	Upsert(inv *entity.Inventory) error
	// ListByProduct devuelve las filas del producto con stock positivo.
	ListByProduct(productID string) ([]*entity.Inventory, error)
	// CountWithStock cuenta filas del almacén con stock positivo
	// (bloqueo de eliminación de almacenes).
	CountWithStock(warehouseID string) (int64, error)
	// TotalStock suma el stock actual de todas las filas.
	TotalStock() (int64, error)
}
