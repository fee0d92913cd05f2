package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-tracker/internal/domain"
)

func TestMapError_CodigosSQLSTATE(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"unique", &pgconn.PgError{Code: codeUniqueViolation}, domain.ErrDuplicate},
		{"check cantidad", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "inventory_items_quantity_non_negative"}, domain.ErrInsufficientStock},
		{"check otro", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "inventory_items_prices_non_negative"}, domain.ErrInvalidInput},
		{"foreign key", &pgconn.PgError{Code: codeForeignKey}, domain.ErrNotFound},
		{"id no UUID", &pgconn.PgError{Code: codeInvalidText}, domain.ErrNotFound},
		{"entero fuera de rango", &pgconn.PgError{Code: codeOutOfRange}, domain.ErrInvalidInput},
		{"referencia demasiado larga", &pgconn.PgError{Code: codeStringTooLong}, domain.ErrInvalidInput},
		{"lock_timeout", &pgconn.PgError{Code: codeLockNotAvailable}, domain.ErrConflict},
		{"deadlock", &pgconn.PgError{Code: codeDeadlock}, domain.ErrConflict},
		{"envuelto", fmt.Errorf("exec: %w", &pgconn.PgError{Code: codeInvalidText}), domain.ErrNotFound},
		{"plazo vencido", context.DeadlineExceeded, domain.ErrConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tc.err, "op"), tc.want)
		})
	}
}

func TestMapError_DesconocidoSeEnvuelve(t *testing.T) {
	base := errors.New("conexión cerrada")
	err := mapError(base, "get inventory item")
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "get inventory item")
	assert.NoError(t, mapError(nil, "op"))
}
