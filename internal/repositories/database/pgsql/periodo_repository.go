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

const periodoColumns = `id_periodo, fecha_inicio, fecha_fin, estado`

type PgxPeriodoRepository struct {
	BaseRepository
}

// newPgxPeriodoRepository creates a new repository for accounting periods.
func newPgxPeriodoRepository(pool *pgxpool.Pool) portsrepo.PeriodoRepositoryFacade {
	return &PgxPeriodoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodoRepositoryFacade = (*PgxPeriodoRepository)(nil)

func scanPeriodo(row pgx.Row) (models.Periodo, error) {
	var m models.Periodo
	err := row.Scan(&m.IDPeriodo, &m.FechaInicio, &m.FechaFin, &m.Estado)
	return m, err
}

func (r *PgxPeriodoRepository) findOne(ctx context.Context, op, query string, args ...any) (*domain.Periodo, error) {
	m, err := scanPeriodo(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, op)
	}
	periodo := mapping.ToDomainPeriodo(m)
	return &periodo, nil
}

// FindPeriodoByID retrieves a period by its ID.
func (r *PgxPeriodoRepository) FindPeriodoByID(ctx context.Context, id int64) (*domain.Periodo, error) {
	return r.findOne(ctx, "failed to find period by id",
		`SELECT `+periodoColumns+` FROM periodos_contables WHERE id_periodo = $1`, id)
}

// ListPeriodos retrieves all periods ordered by start date.
func (r *PgxPeriodoRepository) ListPeriodos(ctx context.Context) ([]domain.Periodo, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+periodoColumns+` FROM periodos_contables ORDER BY fecha_inicio, id_periodo`)
	if err != nil {
		return nil, translateError(err, "failed to list periods")
	}
	defer rows.Close()

	periodos := []domain.Periodo{}
	for rows.Next() {
		m, err := scanPeriodo(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan period row")
		}
		periodos = append(periodos, mapping.ToDomainPeriodo(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating period rows")
	}
	return periodos, nil
}

// FindPeriodoSolapado returns the first period whose range shares a day with periodo.
func (r *PgxPeriodoRepository) FindPeriodoSolapado(ctx context.Context, periodo domain.Periodo, excludeID int64) (*domain.Periodo, error) {
	return r.findOne(ctx, "failed to check overlapping periods", `
		SELECT `+periodoColumns+`
		FROM periodos_contables
		WHERE fecha_inicio <= $2 AND fecha_fin >= $1 AND id_periodo <> $3
		ORDER BY fecha_inicio
		LIMIT 1;
	`, periodo.FechaInicio, periodo.FechaFin, excludeID)
}

// SavePeriodo inserts a new period.
func (r *PgxPeriodoRepository) SavePeriodo(ctx context.Context, periodo domain.Periodo) (*domain.Periodo, error) {
	m := mapping.ToModelPeriodo(periodo)
	return r.findOne(ctx, "failed to insert period", `
		INSERT INTO periodos_contables (fecha_inicio, fecha_fin, estado)
		VALUES ($1, $2, $3)
		RETURNING `+periodoColumns,
		m.FechaInicio, m.FechaFin, m.Estado)
}

// UpdatePeriodo replaces the dates and state of a period.
func (r *PgxPeriodoRepository) UpdatePeriodo(ctx context.Context, periodo domain.Periodo) (*domain.Periodo, error) {
	m := mapping.ToModelPeriodo(periodo)
	return r.findOne(ctx, "failed to update period", `
		UPDATE periodos_contables
		SET fecha_inicio = $1, fecha_fin = $2, estado = $3
		WHERE id_periodo = $4
		RETURNING `+periodoColumns,
		m.FechaInicio, m.FechaFin, m.Estado, m.IDPeriodo)
}

// DeletePeriodo removes a period. Entries and invoices referencing it block the delete.
func (r *PgxPeriodoRepository) DeletePeriodo(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM periodos_contables WHERE id_periodo = $1`, id)
	if err != nil {
		return false, translateError(err, "failed to delete period")
	}
	return tag.RowsAffected() > 0, nil
}
