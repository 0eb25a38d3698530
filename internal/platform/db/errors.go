package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
)

// Postgres error classes relevant to the fixed schema contract.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// ConstraintMessages maps database constraint names to user-facing messages.
// Each adapter owns the map for its table.
type ConstraintMessages map[string]string

// Translate converts a raw store error into the application taxonomy.
// Constraint identification is structural: the Postgres driver exposes the
// violated constraint name on pgconn.PgError, which replaces any parsing of
// the human-readable error message. gorm's translated sentinels and the
// SQLite message format cover the in-memory test databases.
func Translate(err error, messages ConstraintMessages) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation:
			return violation(pgErr.ConstraintName, messages)
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return violation("", messages)
	}

	// SQLite reports named check constraints only through the message.
	if name, ok := sqliteCheckName(err); ok {
		return violation(name, messages)
	}
	return err
}

// IsUniqueViolation reports whether err is a uniqueness conflict, regardless
// of driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func violation(constraint string, messages ConstraintMessages) error {
	return &apperr.ConstraintViolation{
		Constraint: constraint,
		Message:    messages[constraint],
	}
}

func sqliteCheckName(err error) (string, bool) {
	const marker = "CHECK constraint failed: "
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", false
	}
	return strings.TrimSpace(msg[i+len(marker):]), true
}
