package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/faithbit/ssms-api/internal/domain"
)

// isUniqueViolation reports whether err is a unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueViolationError maps a 23505 to the domain sentinel for the violated
// constraint. The customer number and barcode constraints get dedicated
// sentinels because callers react to them (retry, surface to client).
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case "customers_customer_number_key":
			return domain.ErrNumberConflict
		case "products_barcode_key":
			return domain.ErrBarcodeCollision
		}
	}
	return domain.ErrDuplicate
}
