package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx). La unicidad de (product_id, warehouse_id) y el
// stock no negativo los garantiza el esquema.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, product_id, warehouse_id, current_stock, min_stock, updated_at`

// Get obtiene la fila de inventario del par, o nil si nunca ha existido.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(query, productID, warehouseID)
}

// GetForUpdate obtiene la fila bloqueándola (SELECT FOR UPDATE) hasta el
// commit de la transacción en curso, o nil si no existe.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(query, productID, warehouseID)
}

func (r *InventoryRepo) scanOne(query string, args ...any) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.CurrentStock, &inv.MinStock, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Upsert inserta o actualiza la fila del par (producto, almacén).
func (r *InventoryRepo) Upsert(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, current_stock, min_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET current_stock = EXCLUDED.current_stock, min_stock = EXCLUDED.min_stock, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.WarehouseID, inv.CurrentStock, inv.MinStock, inv.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvariant
		}
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// ListByProduct devuelve las filas del producto con stock positivo.
func (r *InventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE product_id = $1 AND current_stock > 0
		ORDER BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.CurrentStock, &inv.MinStock, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// CountWithStock cuenta filas del almacén con stock positivo.
func (r *InventoryRepo) CountWithStock(warehouseID string) (int64, error) {
	query := `SELECT COUNT(*) FROM inventory WHERE warehouse_id = $1 AND current_stock > 0`
	var count int64
	if err := r.q.QueryRow(context.Background(), query, warehouseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count inventory with stock: %w", err)
	}
	return count, nil
}

// TotalStock suma el stock actual de todas las filas.
func (r *InventoryRepo) TotalStock() (int64, error) {
	query := `SELECT COALESCE(SUM(current_stock), 0) FROM inventory`
	var total int64
	if err := r.q.QueryRow(context.Background(), query).Scan(&total); err != nil {
		return 0, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}
