package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación append-only del historial de
// movimientos sobre PostgreSQL (usable con pool o tx). No expone update ni
// delete: los movimientos son la pista de auditoría.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

const movementColumns = `id, movement_date, type, quantity, product_id, warehouse_id, user_id, motive, transfer_reference`

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, movement_date, type, quantity, product_id, warehouse_id, user_id, motive, transfer_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	motive := (*string)(nil)
	if movement.Motive != "" {
		motive = &movement.Motive
	}
	transferRef := (*string)(nil)
	if movement.TransferReference != "" {
		transferRef = &movement.TransferReference
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.MovementDate, movement.Type, movement.Quantity,
		movement.ProductID, movement.WarehouseID, movement.UserID, motive, transferRef,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListRecent lista movimientos del más reciente al más antiguo.
func (r *InventoryMovementRepo) ListRecent(limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM inventory_movements
		ORDER BY movement_date DESC
		LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByDateRange lista movimientos del rango en orden cronológico.
func (r *InventoryMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM inventory_movements
		WHERE movement_date BETWEEN $1 AND $2
		ORDER BY movement_date ASC`
	return r.list(query, from, to)
}

func (r *InventoryMovementRepo) list(query string, args ...any) ([]*entity.InventoryMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var motive, transferRef *string
		if err := rows.Scan(&m.ID, &m.MovementDate, &m.Type, &m.Quantity,
			&m.ProductID, &m.WarehouseID, &m.UserID, &motive, &transferRef); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if motive != nil {
			m.Motive = *motive
		}
		if transferRef != nil {
			m.TransferReference = *transferRef
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByDateRange cuenta movimientos dentro del rango.
func (r *InventoryMovementRepo) CountByDateRange(from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM inventory_movements WHERE movement_date BETWEEN $1 AND $2`
	var count int64
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements by date: %w", err)
	}
	return count, nil
}

// Count cuenta todos los movimientos.
func (r *InventoryMovementRepo) Count() (int64, error) {
	var count int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM inventory_movements`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}
