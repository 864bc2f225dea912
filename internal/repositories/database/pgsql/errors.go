package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes surfaced to clients.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgRestrictViolation   = "23001"
	pgDatetimeOverflow    = "22008"
)

// DBError keeps the diagnostic fields of a driver failure.
type DBError struct {
	Code       string
	Message    string
	Detail     string
	Table      string
	Constraint string
	Err        error
}

func (e *DBError) Error() string {
	return fmt.Sprintf("%s (code=%s table=%s constraint=%s detail=%s)", e.Message, e.Code, e.Table, e.Constraint, e.Detail)
}

func (e *DBError) Unwrap() error { return e.Err }

// translateError converts a driver error into an AppError. Constraint
// violations keep a client-facing kind; anything else becomes Interno.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.NewAppError(op, err)
	}

	dbErr := &DBError{
		Code:       pgErr.Code,
		Message:    pgErr.Message,
		Detail:     pgErr.Detail,
		Table:      pgErr.TableName,
		Constraint: pgErr.ConstraintName,
		Err:        err,
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return apperrors.Wrap(apperrors.RegistroDuplicado, "Ya existe un registro con los mismos datos únicos.", dbErr)
	case pgForeignKeyViolation, pgRestrictViolation:
		return apperrors.Wrap(apperrors.RegistroEnUso, "El registro está referenciado por otros datos o hace referencia a datos inexistentes.", dbErr)
	case pgDatetimeOverflow:
		return apperrors.Wrap(apperrors.ValorFueraDeRango, "Una fecha está fuera del rango permitido.", dbErr)
	default:
		return apperrors.NewAppError(op, dbErr)
	}
}
