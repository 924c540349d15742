package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El SKU se deriva del nombre
// más un timestamp al crearlo y es único globalmente, igual que el nombre.
// Desactivar un producto no elimina su inventario ni su historial de movimientos.
type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string
	Price       decimal.Decimal
	Category    string
	Lifecycle
	CreatedAt time.Time
	UpdatedAt time.Time
}
