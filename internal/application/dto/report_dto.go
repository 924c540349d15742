package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReportItem fila del reporte de stock bajo.
type StockReportItem struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	WarehouseName string `json:"warehouse_name"`
	CurrentStock  int    `json:"current_stock"`
	MinimumStock  int    `json:"minimum_stock"`
}

// MovementReportItem fila del reporte de movimientos por fecha.
type MovementReportItem struct {
	MovementDate  time.Time `json:"movement_date"`
	ProductName   string    `json:"product_name"`
	MovementType  string    `json:"movement_type"`
	Quantity      int       `json:"quantity"`
	WarehouseName string    `json:"warehouse_name"`
	UserName      string    `json:"user_name"`
}

// SalesReportItem fila del reporte de productos más vendidos. El ingreso se
// estima con el precio actual del producto.
type SalesReportItem struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	UnitsSold    int64           `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AveragePrice decimal.Decimal `json:"average_price"`
}
