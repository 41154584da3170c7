package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable verifica si un error es una tabla inexistente (42P01).
func isUndefinedTable(err error) bool {
	return hasCode(err, "42P01") // undefined_table
}

// isUndefinedColumn verifica si un error es una columna inexistente (42703).
func isUndefinedColumn(err error) bool {
	return hasCode(err, "42703") // undefined_column
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}
