package entity

import "time"

// Warehouse representa un almacén donde se guarda inventario.
// Solo puede eliminarse lógicamente si ningún registro de inventario
// que lo referencia tiene stock positivo.
type Warehouse struct {
	ID          string
	Name        string
	Address     string
	City        string
	Description string
	Lifecycle
	CreatedAt time.Time
	UpdatedAt time.Time
}
