package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		code string
		want apperrors.Kind
	}{
		{code: "23505", want: apperrors.RegistroDuplicado},
		{code: "23503", want: apperrors.RegistroEnUso},
		{code: "23001", want: apperrors.RegistroEnUso},
		{code: "22008", want: apperrors.ValorFueraDeRango},
		{code: "42P01", want: apperrors.Interno},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{
				Code:           tt.code,
				Message:        "driver message",
				Detail:         "Key (nombre)=(Caja) already exists.",
				TableName:      "cuentas_contables",
				ConstraintName: "uq_cuentas_contables_nombre",
			}
			err := translateError(fmt.Errorf("exec: %w", pgErr), "op")

			assert.Equal(t, tt.want, apperrors.KindOf(err))

			var dbErr *DBError
			require.ErrorAs(t, err, &dbErr)
			assert.Equal(t, tt.code, dbErr.Code)
			assert.Equal(t, "cuentas_contables", dbErr.Table)
			assert.Equal(t, "uq_cuentas_contables_nombre", dbErr.Constraint)
			assert.Contains(t, dbErr.Error(), "already exists")
		})
	}
}

func TestTranslateError_PassThrough(t *testing.T) {
	assert.NoError(t, translateError(nil, "op"))

	appErr := apperrors.New(apperrors.YaExisteCuenta, "dup")
	assert.Same(t, appErr, translateError(appErr, "op"))

	plain := errors.New("connection reset")
	err := translateError(plain, "op")
	assert.Equal(t, apperrors.Interno, apperrors.KindOf(err))
	assert.ErrorIs(t, err, plain)
}
