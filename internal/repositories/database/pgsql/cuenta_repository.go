package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// cuentaCreationLockKey serializes account creation so that the name check,
// sibling lookup and insert of one request never interleave with another's.
const cuentaCreationLockKey int64 = 0x43544153 // "CTAS"

const cuentaColumns = `id_cuenta, codigo, nombre, tipo, categoria, padre_id`

type PgxCuentaRepository struct {
	BaseRepository
}

// newPgxCuentaRepository creates a new repository for account data.
func newPgxCuentaRepository(pool *pgxpool.Pool) portsrepo.CuentaRepositoryFacade {
	return &PgxCuentaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCuentaRepository implements portsrepo.CuentaRepositoryFacade
var _ portsrepo.CuentaRepositoryFacade = (*PgxCuentaRepository)(nil)

func scanCuenta(row pgx.Row) (models.Cuenta, error) {
	var m models.Cuenta
	err := row.Scan(&m.IDCuenta, &m.Codigo, &m.Nombre, &m.Tipo, &m.Categoria, &m.PadreID)
	return m, err
}

// CreateCuenta locks account creation, validates name and parent, derives the
// hierarchical code and inserts the account, all in one database transaction.
func (r *PgxCuentaRepository) CreateCuenta(ctx context.Context, cuenta domain.Cuenta) (*domain.Cuenta, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, cuentaCreationLockKey); err != nil {
		return nil, translateError(err, "failed to lock account creation")
	}

	var nombreTomado bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cuentas_contables WHERE nombre = $1)`, cuenta.Nombre).Scan(&nombreTomado)
	if err != nil {
		return nil, translateError(err, "failed to check account name")
	}
	if nombreTomado {
		return nil, apperrors.Newf(apperrors.YaExisteCuenta, "Ya existe una cuenta con el nombre '%s'.", cuenta.Nombre).WithField("nombre")
	}

	if cuenta.PadreID != nil {
		cuenta.Codigo, err = r.codigoHijo(ctx, tx, &cuenta)
	} else {
		cuenta.Codigo, err = r.codigoRaiz(ctx, tx, cuenta.Tipo)
	}
	if err != nil {
		return nil, err
	}

	m := mapping.ToModelCuenta(cuenta)
	err = tx.QueryRow(ctx, `
		INSERT INTO cuentas_contables (codigo, nombre, tipo, categoria, padre_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_cuenta;
	`, m.Codigo, m.Nombre, m.Tipo, m.Categoria, m.PadreID).Scan(&cuenta.IDCuenta)
	if err != nil {
		return nil, translateError(err, "failed to insert account")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &cuenta, nil
}

// codigoHijo resolves the parent and returns the next free child code.
// A child without a type inherits the parent's.
func (r *PgxCuentaRepository) codigoHijo(ctx context.Context, tx pgx.Tx, cuenta *domain.Cuenta) (string, error) {
	var padre models.Cuenta
	err := tx.QueryRow(ctx, `SELECT codigo, tipo FROM cuentas_contables WHERE id_cuenta = $1`, *cuenta.PadreID).
		Scan(&padre.Codigo, &padre.Tipo)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.Newf(apperrors.CuentaPadreNotFound, "La cuenta padre con id %d no existe.", *cuenta.PadreID).WithField("parent_id")
	}
	if err != nil {
		return "", translateError(err, "failed to find parent account")
	}
	if cuenta.Tipo == "" {
		cuenta.Tipo = domain.TipoCuenta(padre.Tipo.String)
	}

	var ultimoHermano string
	err = tx.QueryRow(ctx, `
		SELECT codigo FROM cuentas_contables
		WHERE padre_id = $1
		ORDER BY codigo COLLATE "C" DESC
		LIMIT 1;
	`, *cuenta.PadreID).Scan(&ultimoHermano)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", translateError(err, "failed to find last sibling account")
	}

	codigo, err := accounting.SiguienteCodigoHijo(padre.Codigo, ultimoHermano)
	if err != nil {
		return "", translateError(err, "failed to generate account code")
	}
	return codigo, nil
}

func (r *PgxCuentaRepository) codigoRaiz(ctx context.Context, tx pgx.Tx, tipo domain.TipoCuenta) (string, error) {
	codigo, err := accounting.CodigoRaiz(tipo)
	if err != nil {
		return "", err
	}

	var existe bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cuentas_contables WHERE codigo = $1)`, codigo).Scan(&existe)
	if err != nil {
		return "", translateError(err, "failed to check root account code")
	}
	if existe {
		return "", apperrors.Newf(apperrors.YaExisteCuenta, "Ya existe la cuenta raíz %s para el tipo %s.", codigo, tipo).WithField("tipo")
	}
	return codigo, nil
}

// FindCuentaByID retrieves an account by its ID.
func (r *PgxCuentaRepository) FindCuentaByID(ctx context.Context, id int64) (*domain.Cuenta, error) {
	m, err := scanCuenta(r.Pool.QueryRow(ctx, `SELECT `+cuentaColumns+` FROM cuentas_contables WHERE id_cuenta = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, "failed to find account by id")
	}
	cuenta := mapping.ToDomainCuenta(m)
	return &cuenta, nil
}

// ListCuentas retrieves the chart of accounts ordered by code.
func (r *PgxCuentaRepository) ListCuentas(ctx context.Context) ([]domain.Cuenta, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+cuentaColumns+` FROM cuentas_contables ORDER BY codigo COLLATE "C"`)
	if err != nil {
		return nil, translateError(err, "failed to list accounts")
	}
	defer rows.Close()

	cuentas := []domain.Cuenta{}
	for rows.Next() {
		m, err := scanCuenta(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan account row")
		}
		cuentas = append(cuentas, mapping.ToDomainCuenta(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating account rows")
	}
	return cuentas, nil
}

// ExistsCuentaByNombre reports whether an account other than excludeID uses nombre.
func (r *PgxCuentaRepository) ExistsCuentaByNombre(ctx context.Context, nombre string, excludeID int64) (bool, error) {
	var existe bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cuentas_contables WHERE nombre = $1 AND id_cuenta <> $2)`,
		nombre, excludeID).Scan(&existe)
	if err != nil {
		return false, translateError(err, "failed to check account name")
	}
	return existe, nil
}

// UpdateCuenta replaces the editable fields of an account.
func (r *PgxCuentaRepository) UpdateCuenta(ctx context.Context, cuenta domain.Cuenta) (*domain.Cuenta, error) {
	m := mapping.ToModelCuenta(cuenta)
	updated, err := scanCuenta(r.Pool.QueryRow(ctx, `
		UPDATE cuentas_contables
		SET nombre = $1, tipo = $2, categoria = $3
		WHERE id_cuenta = $4
		RETURNING `+cuentaColumns,
		m.Nombre, m.Tipo, m.Categoria, m.IDCuenta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, "failed to update account")
	}
	result := mapping.ToDomainCuenta(updated)
	return &result, nil
}

// DeleteCuenta removes an account. Children and transactions block the delete via foreign keys.
func (r *PgxCuentaRepository) DeleteCuenta(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cuentas_contables WHERE id_cuenta = $1`, id)
	if err != nil {
		return false, translateError(err, "failed to delete account")
	}
	return tag.RowsAffected() > 0, nil
}
