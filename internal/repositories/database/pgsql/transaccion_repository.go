package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transaccionSelect = `
	SELECT t.id_transaccion, t.cuenta_id, t.monto, t.tipo_transaccion, t.partida_diaria_id, t.fecha_operacion,
		c.codigo, c.nombre,
		p.concepto, p.estado, p.id_periodo,
		pc.fecha_inicio, pc.fecha_fin, pc.estado
	FROM transacciones_contables t
	LEFT JOIN cuentas_contables c ON c.id_cuenta = t.cuenta_id
	LEFT JOIN partidas_diarias p ON p.id_partida_diaria = t.partida_diaria_id
	LEFT JOIN periodos_contables pc ON pc.id_periodo = p.id_periodo`

type PgxTransaccionRepository struct {
	BaseRepository
}

// newPgxTransaccionRepository creates a new repository for journal entry lines.
func newPgxTransaccionRepository(pool *pgxpool.Pool) portsrepo.TransaccionRepositoryFacade {
	return &PgxTransaccionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransaccionRepositoryFacade = (*PgxTransaccionRepository)(nil)

func scanTransaccion(row pgx.Row) (domain.Transaccion, error) {
	var (
		m models.Transaccion
		d models.TransaccionDetalle
	)
	err := row.Scan(
		&m.IDTransaccion, &m.CuentaID, &m.Monto, &m.TipoTransaccion, &m.PartidaID, &m.FechaOperacion,
		&d.CuentaCodigo, &d.CuentaNombre,
		&d.PartidaConcepto, &d.PartidaEstado, &d.IDPeriodo,
		&d.PeriodoFechaInicio, &d.PeriodoFechaFin, &d.PeriodoEstado,
	)
	if err != nil {
		return domain.Transaccion{}, err
	}
	txn := mapping.ToDomainTransaccion(m)
	txn.Detalle = mapping.ToDomainTransaccionDetalle(d)
	return txn, nil
}

func (r *PgxTransaccionRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Transaccion, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, op)
	}
	defer rows.Close()

	txns := []domain.Transaccion{}
	for rows.Next() {
		txn, err := scanTransaccion(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan transaction row")
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating transaction rows")
	}
	return txns, nil
}

// FindTransaccionByID retrieves a transaction with its joined details.
func (r *PgxTransaccionRepository) FindTransaccionByID(ctx context.Context, id int64) (*domain.Transaccion, error) {
	txn, err := scanTransaccion(r.Pool.QueryRow(ctx, transaccionSelect+` WHERE t.id_transaccion = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, "failed to find transaction by id")
	}
	return &txn, nil
}

func (r *PgxTransaccionRepository) ListTransacciones(ctx context.Context) ([]domain.Transaccion, error) {
	return r.list(ctx, "failed to list transactions",
		transaccionSelect+` ORDER BY t.id_transaccion`)
}

func (r *PgxTransaccionRepository) ListTransaccionesByPartida(ctx context.Context, partidaID int64) ([]domain.Transaccion, error) {
	return r.list(ctx, "failed to list transactions by journal entry",
		transaccionSelect+` WHERE t.partida_diaria_id = $1 ORDER BY t.id_transaccion`, partidaID)
}

func (r *PgxTransaccionRepository) ListTransaccionesByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Transaccion, error) {
	return r.list(ctx, "failed to list transactions by period",
		transaccionSelect+` WHERE p.id_periodo = $1 ORDER BY t.id_transaccion`, idPeriodo)
}

// SaveTransaccion inserts a line and re-reads it so the joined details are populated.
func (r *PgxTransaccionRepository) SaveTransaccion(ctx context.Context, txn domain.Transaccion) (*domain.Transaccion, error) {
	m := mapping.ToModelTransaccion(txn)
	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO transacciones_contables (cuenta_id, monto, tipo_transaccion, partida_diaria_id, fecha_operacion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_transaccion;
	`, m.CuentaID, m.Monto, m.TipoTransaccion, m.PartidaID, m.FechaOperacion).Scan(&id)
	if err != nil {
		return nil, translateError(err, "failed to insert transaction")
	}
	return r.FindTransaccionByID(ctx, id)
}

// UpdateTransaccion replaces every field of a line.
func (r *PgxTransaccionRepository) UpdateTransaccion(ctx context.Context, txn domain.Transaccion) (*domain.Transaccion, error) {
	m := mapping.ToModelTransaccion(txn)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transacciones_contables
		SET cuenta_id = $1, monto = $2, tipo_transaccion = $3, partida_diaria_id = $4, fecha_operacion = $5
		WHERE id_transaccion = $6;
	`, m.CuentaID, m.Monto, m.TipoTransaccion, m.PartidaID, m.FechaOperacion, m.IDTransaccion)
	if err != nil {
		return nil, translateError(err, "failed to update transaction")
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindTransaccionByID(ctx, m.IDTransaccion)
}

func (r *PgxTransaccionRepository) DeleteTransaccion(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transacciones_contables WHERE id_transaccion = $1`, id)
	if err != nil {
		return false, translateError(err, "failed to delete transaction")
	}
	return tag.RowsAffected() > 0, nil
}
