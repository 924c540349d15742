package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// LowStock devuelve las filas de inventario con stock por debajo del mínimo,
// limitado a productos activos.
func (r *ReportRepo) LowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	const query = `
		SELECT i.product_id, p.name, w.name, i.current_stock, i.min_stock
		FROM inventory i
		JOIN products   p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.current_stock < i.min_stock
		  AND p.active
		ORDER BY p.name, w.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStock: %w", err)
	}
	defer rows.Close()
	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.WarehouseName, &row.CurrentStock, &row.MinStock); err != nil {
			return nil, fmt.Errorf("reports.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MovementsByDate devuelve los movimientos del rango con nombres resueltos,
// en orden cronológico.
func (r *ReportRepo) MovementsByDate(ctx context.Context, from, to time.Time) ([]repository.MovementReportRow, error) {
	const query = `
		SELECT m.movement_date, p.name, m.type, m.quantity, w.name, u.name
		FROM inventory_movements m
		JOIN products   p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		JOIN users      u ON u.id = m.user_id
		WHERE m.movement_date BETWEEN $1 AND $2
		ORDER BY m.movement_date ASC`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.MovementsByDate: %w", err)
	}
	defer rows.Close()
	var results []repository.MovementReportRow
	for rows.Next() {
		var row repository.MovementReportRow
		if err := rows.Scan(&row.MovementDate, &row.ProductName, &row.MovementType, &row.Quantity, &row.WarehouseName, &row.UserName); err != nil {
			return nil, fmt.Errorf("reports.MovementsByDate scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MostSold agrupa las SALIDAS por producto. El ingreso se estima con el
// precio actual del producto, no el histórico al momento de la venta.
func (r *ReportRepo) MostSold(ctx context.Context) ([]repository.MostSoldRow, error) {
	const query = `
		SELECT p.id, p.name, SUM(m.quantity) AS units_sold,
		       p.price * SUM(m.quantity) AS total_revenue,
		       p.price AS average_price
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.type = $1
		GROUP BY p.id, p.name, p.price
		ORDER BY units_sold DESC`
	rows, err := r.pool.Query(ctx, query, entity.MovementTypeExit)
	if err != nil {
		return nil, fmt.Errorf("reports.MostSold: %w", err)
	}
	defer rows.Close()
	var results []repository.MostSoldRow
	for rows.Next() {
		var row repository.MostSoldRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.UnitsSold, &row.TotalRevenue, &row.AveragePrice); err != nil {
			return nil, fmt.Errorf("reports.MostSold scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RecentMovements devuelve los últimos movimientos con nombres resueltos.
// El usuario puede venir vacío si la fila es antigua; el caso de uso lo
// presenta como "Sistema".
func (r *ReportRepo) RecentMovements(ctx context.Context, limit int) ([]repository.RecentMovementRow, error) {
	const query = `
		SELECT m.id, p.name, w.name, m.type, m.quantity, m.movement_date, COALESCE(u.name, '')
		FROM inventory_movements m
		JOIN products   p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		LEFT JOIN users u ON u.id = m.user_id
		ORDER BY m.movement_date DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.RecentMovements: %w", err)
	}
	defer rows.Close()
	var results []repository.RecentMovementRow
	for rows.Next() {
		var row repository.RecentMovementRow
		if err := rows.Scan(&row.ID, &row.ProductName, &row.WarehouseName, &row.MovementType, &row.Quantity, &row.MovementDate, &row.UserName); err != nil {
			return nil, fmt.Errorf("reports.RecentMovements scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockByWarehouse devuelve los productos con stock positivo del almacén.
func (r *ReportRepo) StockByWarehouse(ctx context.Context, warehouseID string) ([]repository.ProductStockRow, error) {
	const query = `
		SELECT i.product_id, p.name, i.current_stock, i.min_stock
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.warehouse_id = $1 AND i.current_stock > 0
		ORDER BY p.name`
	rows, err := r.pool.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("reports.StockByWarehouse: %w", err)
	}
	defer rows.Close()
	var results []repository.ProductStockRow
	for rows.Next() {
		var row repository.ProductStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.CurrentStock, &row.MinStock); err != nil {
			return nil, fmt.Errorf("reports.StockByWarehouse scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
