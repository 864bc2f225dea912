package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const partidaSelect = `
	SELECT p.id_partida_diaria, p.concepto, p.estado, p.id_periodo, p.fecha_creacion, pc.fecha_fin
	FROM partidas_diarias p
	LEFT JOIN periodos_contables pc ON pc.id_periodo = p.id_periodo`

// partidaAggregateSelect nests transactions and their account into each entry row.
const partidaAggregateSelect = `
	SELECT p.id_partida_diaria, p.concepto, p.estado, p.id_periodo, p.fecha_creacion, pc.fecha_fin,
		t.id_transaccion, t.cuenta_id, t.monto, t.tipo_transaccion, t.fecha_operacion,
		c.codigo, c.nombre
	FROM partidas_diarias p
	LEFT JOIN periodos_contables pc ON pc.id_periodo = p.id_periodo
	LEFT JOIN transacciones_contables t ON t.partida_diaria_id = p.id_partida_diaria
	LEFT JOIN cuentas_contables c ON c.id_cuenta = t.cuenta_id`

const partidaAggregateOrder = `
	ORDER BY p.fecha_creacion DESC, p.id_partida_diaria DESC, t.id_transaccion`

type PgxPartidaRepository struct {
	BaseRepository
}

// newPgxPartidaRepository creates a new repository for journal entries.
func newPgxPartidaRepository(pool *pgxpool.Pool) portsrepo.PartidaRepositoryFacade {
	return &PgxPartidaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartidaRepositoryFacade = (*PgxPartidaRepository)(nil)

func scanPartida(row pgx.Row) (models.Partida, error) {
	var m models.Partida
	err := row.Scan(&m.IDPartida, &m.Concepto, &m.Estado, &m.IDPeriodo, &m.FechaCreacion, &m.FechaFin)
	return m, err
}

// FindPartidaByID retrieves a journal entry joined with its period end date.
func (r *PgxPartidaRepository) FindPartidaByID(ctx context.Context, id int64) (*domain.Partida, error) {
	m, err := scanPartida(r.Pool.QueryRow(ctx, partidaSelect+` WHERE p.id_partida_diaria = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, "failed to find journal entry by id")
	}
	partida := mapping.ToDomainPartida(m)
	return &partida, nil
}

// ListPartidas retrieves all journal entries, newest first.
func (r *PgxPartidaRepository) ListPartidas(ctx context.Context) ([]domain.Partida, error) {
	rows, err := r.Pool.Query(ctx, partidaSelect+` ORDER BY p.fecha_creacion DESC, p.id_partida_diaria DESC`)
	if err != nil {
		return nil, translateError(err, "failed to list journal entries")
	}
	defer rows.Close()

	partidas := []domain.Partida{}
	for rows.Next() {
		m, err := scanPartida(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan journal entry row")
		}
		partidas = append(partidas, mapping.ToDomainPartida(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating journal entry rows")
	}
	return partidas, nil
}

// ListPartidasByPeriodo retrieves the entries of a period with their transactions.
func (r *PgxPartidaRepository) ListPartidasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Partida, error) {
	return r.listAggregated(ctx, "failed to list journal entries by period",
		partidaAggregateSelect+` WHERE p.id_periodo = $1`+partidaAggregateOrder, idPeriodo)
}

// ListPartidasByFechaCreacion retrieves the entries created between two calendar dates, inclusive.
func (r *PgxPartidaRepository) ListPartidasByFechaCreacion(ctx context.Context, desde, hasta time.Time) ([]domain.Partida, error) {
	return r.listAggregated(ctx, "failed to list journal entries by creation date",
		partidaAggregateSelect+` WHERE p.fecha_creacion::date BETWEEN $1 AND $2`+partidaAggregateOrder,
		fecha.Normalize(desde), fecha.Normalize(hasta))
}

// listAggregated groups the flat entry/transaction rows into entries, keeping query order.
func (r *PgxPartidaRepository) listAggregated(ctx context.Context, op, query string, args ...any) ([]domain.Partida, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, op)
	}
	defer rows.Close()

	partidas := []domain.Partida{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			m              models.Partida
			idTransaccion  sql.NullInt64
			cuentaID       sql.NullInt64
			monto          decimal.NullDecimal
			tipo           sql.NullString
			fechaOperacion sql.NullTime
			cuentaCodigo   sql.NullString
			cuentaNombre   sql.NullString
		)
		if err := rows.Scan(
			&m.IDPartida, &m.Concepto, &m.Estado, &m.IDPeriodo, &m.FechaCreacion, &m.FechaFin,
			&idTransaccion, &cuentaID, &monto, &tipo, &fechaOperacion,
			&cuentaCodigo, &cuentaNombre,
		); err != nil {
			return nil, translateError(err, "failed to scan journal entry row")
		}

		pos, ok := index[m.IDPartida]
		if !ok {
			partida := mapping.ToDomainPartida(m)
			partida.Transacciones = []domain.Transaccion{}
			partidas = append(partidas, partida)
			pos = len(partidas) - 1
			index[m.IDPartida] = pos
		}
		if !idTransaccion.Valid {
			continue
		}

		txn := mapping.ToDomainTransaccion(models.Transaccion{
			IDTransaccion:   idTransaccion.Int64,
			CuentaID:        cuentaID.Int64,
			Monto:           monto.Decimal,
			TipoTransaccion: tipo.String,
			PartidaID:       m.IDPartida,
			FechaOperacion:  fechaOperacion.Time,
		})
		txn.Detalle = &domain.TransaccionDetalle{
			CuentaCodigo:    cuentaCodigo.String,
			CuentaNombre:    cuentaNombre.String,
			PartidaConcepto: m.Concepto,
			PartidaEstado:   m.Estado,
			IDPeriodo:       m.IDPeriodo,
		}
		partidas[pos].Transacciones = append(partidas[pos].Transacciones, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating journal entry rows")
	}
	return partidas, nil
}

// SavePartida inserts a new journal entry. fecha_creacion is set by the database.
func (r *PgxPartidaRepository) SavePartida(ctx context.Context, partida domain.Partida) (*domain.Partida, error) {
	m := mapping.ToModelPartida(partida)
	var saved models.Partida
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO partidas_diarias (concepto, estado, id_periodo)
		VALUES ($1, $2, $3)
		RETURNING id_partida_diaria, concepto, estado, id_periodo, fecha_creacion;
	`, m.Concepto, m.Estado, m.IDPeriodo).Scan(
		&saved.IDPartida, &saved.Concepto, &saved.Estado, &saved.IDPeriodo, &saved.FechaCreacion)
	if err != nil {
		return nil, translateError(err, "failed to insert journal entry")
	}
	result := mapping.ToDomainPartida(saved)
	return &result, nil
}

// UpdatePartida replaces concepto, estado and id_periodo of an entry.
func (r *PgxPartidaRepository) UpdatePartida(ctx context.Context, partida domain.Partida) (*domain.Partida, error) {
	m := mapping.ToModelPartida(partida)
	var saved models.Partida
	err := r.Pool.QueryRow(ctx, `
		UPDATE partidas_diarias
		SET concepto = $1, estado = $2, id_periodo = $3
		WHERE id_partida_diaria = $4
		RETURNING id_partida_diaria, concepto, estado, id_periodo, fecha_creacion;
	`, m.Concepto, m.Estado, m.IDPeriodo, m.IDPartida).Scan(
		&saved.IDPartida, &saved.Concepto, &saved.Estado, &saved.IDPeriodo, &saved.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, "failed to update journal entry")
	}
	result := mapping.ToDomainPartida(saved)
	return &result, nil
}

// DeletePartida removes an entry. Referencing transactions block the delete.
func (r *PgxPartidaRepository) DeletePartida(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM partidas_diarias WHERE id_partida_diaria = $1`, id)
	if err != nil {
		return false, translateError(err, "failed to delete journal entry")
	}
	return tag.RowsAffected() > 0, nil
}
