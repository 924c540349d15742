package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE relevantes para el mapeo de errores.
const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation violación de constraint único (nombre, email, par producto-almacén).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isCheckViolation violación de CHECK; en este esquema solo current_stock >= 0,
// así que equivale a un invariante de inventario roto.
func isCheckViolation(err error) bool {
	return pgCode(err) == codeCheckViolation
}

// isConcurrencyConflict deadlock o fallo de serialización: la transacción fue
// abortada por Postgres y el caller puede reintentar.
func isConcurrencyConflict(err error) bool {
	code := pgCode(err)
	return code == codeDeadlockDetected || code == codeSerializationFailure
}
