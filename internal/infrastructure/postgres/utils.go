package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// check_violation: ej. stock_quantity >= 0 al descontar.
const codeCheckViolation = "23514"

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return pgErrorCode(err) == codeCheckViolation
}
