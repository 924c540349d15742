package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockRow fila de inventario bajo el umbral mínimo, con nombres resueltos.
type LowStockRow struct {
	ProductID     string
	ProductName   string
	WarehouseName string
	CurrentStock  int
	MinStock      int
}

// MovementReportRow movimiento con nombres resueltos para el reporte por fechas.
type MovementReportRow struct {
	MovementDate  time.Time
	ProductName   string
	MovementType  string
	Quantity      int
	WarehouseName string
	UserName      string
}

// MostSoldRow resultado crudo del reporte de más vendidos. El ingreso se
// estima con el precio actual del producto, no el histórico al momento de
// la venta (aproximación heredada del comportamiento original).
type MostSoldRow struct {
	ProductID    string
	ProductName  string
	UnitsSold    int64
	TotalRevenue decimal.Decimal
	AveragePrice decimal.Decimal
}

// RecentMovementRow movimiento reciente con nombres resueltos (dashboard).
type RecentMovementRow struct {
	ID            string
	ProductName   string
	WarehouseName string
	MovementType  string
	Quantity      int
	MovementDate  time.Time
	UserName      string
}

// ProductStockRow stock de un producto dentro de un almacén (listado de almacenes).
type ProductStockRow struct {
	ProductID    string
	ProductName  string
	CurrentStock int
	MinStock     int
}

// ReportRepository define las consultas de solo lectura para reportes y
// dashboard. Las implementaciones nunca modifican datos.
type ReportRepository interface {
	// LowStock devuelve las filas de inventario con current_stock < min_stock
	// de productos activos.
	LowStock(ctx context.Context) ([]LowStockRow, error)
	// MovementsByDate devuelve los movimientos del rango en orden cronológico.
	MovementsByDate(ctx context.Context, from, to time.Time) ([]MovementReportRow, error)
	// MostSold agrupa las SALIDAS por producto, ordenadas por unidades desc.
	MostSold(ctx context.Context) ([]MostSoldRow, error)
	// RecentMovements devuelve los últimos `limit` movimientos con nombres.
	RecentMovements(ctx context.Context, limit int) ([]RecentMovementRow, error)
	// StockByWarehouse devuelve los productos con stock positivo del almacén.
	StockByWarehouse(ctx context.Context, warehouseID string) ([]ProductStockRow, error)
}
