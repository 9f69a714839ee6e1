package helper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ParseIDParam validates a path parameter as a positive integer id before
// any lookup happens.
func ParseIDParam(raw string) (uint, *APIError) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidParam(raw)
	}
	return uint(id), nil
}

// IsDuplicateKey reports whether err is a unique-constraint violation from
// the storage driver. Postgres raises SQLSTATE 23505; the sqlite driver
// used in tests only exposes the message.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
