package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/pos-tracker/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeForeignKey       = "23503"
	codeLockNotAvailable = "55P03"
	codeSerialization    = "40001"
	codeDeadlock         = "40P01"
	codeInvalidText      = "22P02"
	codeOutOfRange       = "22003"
	codeStringTooLong    = "22001"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// mapError traduce errores de PostgreSQL a errores de dominio; el resto se envuelve con op.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.ErrDuplicate
		case codeCheckViolation:
			if strings.Contains(pgErr.ConstraintName, "quantity") {
				return domain.ErrInsufficientStock
			}
			return domain.ErrInvalidInput
		case codeForeignKey:
			return domain.ErrNotFound
		case codeInvalidText:
			// id que no es UUID: no puede existir
			return domain.ErrNotFound
		case codeOutOfRange, codeStringTooLong:
			return domain.ErrInvalidInput
		case codeLockNotAvailable, codeSerialization, codeDeadlock:
			return fmt.Errorf("%w: %s (%s)", domain.ErrConflict, op, pgErr.Code)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", domain.ErrConflict, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// whereBuilder arma cláusulas WHERE con placeholders posicionales ($1, $2, ...).
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *whereBuilder) addRaw(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page agrega LIMIT/OFFSET al final de la consulta.
func (w *whereBuilder) page(limit, offset int) string {
	w.args = append(w.args, limit, offset)
	n := len(w.args)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n-1, n)
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar las funciones scan*.
type pgxScanner interface {
	Scan(dest ...any) error
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
