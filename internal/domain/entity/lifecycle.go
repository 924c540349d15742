package entity

import "time"

// Lifecycle modela el borrado lógico como un estado único: flag activo más
// fecha de eliminación, mutados siempre juntos. Restaurar limpia la fecha.
type Lifecycle struct {
	Active    bool
	DeletedAt *time.Time
}

// NewActiveLifecycle estado inicial de toda entidad recién creada.
func NewActiveLifecycle() Lifecycle {
	return Lifecycle{Active: true}
}

// Deactivate marca la entidad como eliminada lógicamente con la fecha dada.
func (l *Lifecycle) Deactivate(now time.Time) {
	l.Active = false
	t := now
	l.DeletedAt = &t
}

// Restore reactiva la entidad y limpia la fecha de eliminación.
func (l *Lifecycle) Restore() {
	l.Active = true
	l.DeletedAt = nil
}

// IsActive indica si la entidad está activa.
func (l Lifecycle) IsActive() bool {
	return l.Active
}
