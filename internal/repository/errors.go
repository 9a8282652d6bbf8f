package repository

import (
	"errors"
	"fmt"

	"go_4_study_scheduler/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a duplicate-key failure from
// either driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// gorm の sqlite dialector は modernc のエラーを変換しない
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// storeError marks a driver failure as an infrastructure error while keeping
// the cause (context cancellation included) reachable through errors.Is.
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrInfrastructure, err)
}
