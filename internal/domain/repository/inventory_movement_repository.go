package repository

import (
	"time"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para el
// historial de movimientos. Es append-only: no existe update ni delete.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	// ListRecent devuelve movimientos ordenados del más reciente al más antiguo.
	ListRecent(limit, offset int) ([]*entity.InventoryMovement, error)
	// ListByDateRange devuelve movimientos del rango en orden cronológico.
	ListByDateRange(from, to time.Time) ([]*entity.InventoryMovement, error)
	CountByDateRange(from, to time.Time) (int64, error)
	Count() (int64, error)
}
