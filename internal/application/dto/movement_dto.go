package dto

import "time"

// RegisterMovementRequest entrada para registrar una entrada o salida.
// El user_id se toma del token, no del cuerpo.
type RegisterMovementRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
	Motive      string `json:"motive"`
}

// TransferRequest entrada para un traslado entre almacenes.
type TransferRequest struct {
	ProductID              string `json:"product_id"`
	OriginWarehouseID      string `json:"origin_warehouse_id"`
	DestinationWarehouseID string `json:"destination_warehouse_id"`
	Quantity               int    `json:"quantity"`
	Motive                 string `json:"motive"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID                string    `json:"id"`
	MovementDate      time.Time `json:"movement_date"`
	Type              string    `json:"type"`
	Quantity          int       `json:"quantity"`
	ProductID         string    `json:"product_id"`
	WarehouseID       string    `json:"warehouse_id"`
	UserID            string    `json:"user_id"`
	Motive            string    `json:"motive,omitempty"`
	TransferReference string    `json:"transfer_reference,omitempty"`
}

// TransferResponse las dos patas del traslado con su referencia compartida.
type TransferResponse struct {
	TransferReference string           `json:"transfer_reference"`
	ExitMovement      MovementResponse `json:"exit_movement"`
	EntryMovement     MovementResponse `json:"entry_movement"`
}

// WarehouseStockResponse stock de un producto en un almacén concreto.
type WarehouseStockResponse struct {
	WarehouseID  string `json:"warehouse_id"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}
