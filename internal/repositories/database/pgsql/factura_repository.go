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

const facturaSelect = `
	SELECT f.id_factura_electronica, f.numero_factura, f.fecha_emision, f.cliente_nombre,
		f.subtotal, f.impuestos, f.total, f.estado_fe, f.cufe, f.id_periodo, f.descripcion,
		pc.fecha_inicio, pc.fecha_fin, pc.estado
	FROM facturas_electronicas f
	LEFT JOIN periodos_contables pc ON pc.id_periodo = f.id_periodo`

const facturaOrder = ` ORDER BY f.fecha_emision DESC, f.id_factura_electronica DESC`

type PgxFacturaRepository struct {
	BaseRepository
}

// newPgxFacturaRepository creates a new repository for electronic invoices.
func newPgxFacturaRepository(pool *pgxpool.Pool) portsrepo.FacturaRepositoryFacade {
	return &PgxFacturaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FacturaRepositoryFacade = (*PgxFacturaRepository)(nil)

func scanFactura(row pgx.Row) (domain.Factura, error) {
	var (
		m models.Factura
		p models.FacturaPeriodo
	)
	err := row.Scan(
		&m.IDFactura, &m.NumeroFactura, &m.FechaEmision, &m.ClienteNombre,
		&m.Subtotal, &m.Impuestos, &m.Total, &m.EstadoFE, &m.CUFE, &m.IDPeriodo, &m.Descripcion,
		&p.FechaInicio, &p.FechaFin, &p.Estado,
	)
	if err != nil {
		return domain.Factura{}, err
	}
	factura := mapping.ToDomainFactura(m)
	factura.Periodo = mapping.ToDomainFacturaPeriodo(m.IDPeriodo, p)
	return factura, nil
}

func (r *PgxFacturaRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Factura, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, op)
	}
	defer rows.Close()

	facturas := []domain.Factura{}
	for rows.Next() {
		factura, err := scanFactura(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan invoice row")
		}
		facturas = append(facturas, factura)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating invoice rows")
	}
	return facturas, nil
}

// FindFacturaByID retrieves an invoice with its period.
func (r *PgxFacturaRepository) FindFacturaByID(ctx context.Context, id int64) (*domain.Factura, error) {
	factura, err := scanFactura(r.Pool.QueryRow(ctx, facturaSelect+` WHERE f.id_factura_electronica = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, "failed to find invoice by id")
	}
	return &factura, nil
}

// ListFacturas retrieves all invoices, most recently issued first.
func (r *PgxFacturaRepository) ListFacturas(ctx context.Context) ([]domain.Factura, error) {
	return r.list(ctx, "failed to list invoices", facturaSelect+facturaOrder)
}

func (r *PgxFacturaRepository) ListFacturasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Factura, error) {
	return r.list(ctx, "failed to list invoices by period",
		facturaSelect+` WHERE f.id_periodo = $1`+facturaOrder, idPeriodo)
}

// SaveFactura inserts a new invoice.
func (r *PgxFacturaRepository) SaveFactura(ctx context.Context, factura domain.Factura) (*domain.Factura, error) {
	m := mapping.ToModelFactura(factura)
	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO facturas_electronicas
			(numero_factura, fecha_emision, cliente_nombre, subtotal, impuestos, total, estado_fe, cufe, id_periodo, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_factura_electronica;
	`, m.NumeroFactura, m.FechaEmision, m.ClienteNombre, m.Subtotal, m.Impuestos, m.Total,
		m.EstadoFE, m.CUFE, m.IDPeriodo, m.Descripcion).Scan(&id)
	if err != nil {
		return nil, translateError(err, "failed to insert invoice")
	}
	return r.FindFacturaByID(ctx, id)
}

// UpdateFactura writes back every column of a merged invoice.
func (r *PgxFacturaRepository) UpdateFactura(ctx context.Context, factura domain.Factura) (*domain.Factura, error) {
	m := mapping.ToModelFactura(factura)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE facturas_electronicas
		SET numero_factura = $1, fecha_emision = $2, cliente_nombre = $3, subtotal = $4, impuestos = $5,
			total = $6, estado_fe = $7, cufe = $8, id_periodo = $9, descripcion = $10
		WHERE id_factura_electronica = $11;
	`, m.NumeroFactura, m.FechaEmision, m.ClienteNombre, m.Subtotal, m.Impuestos, m.Total,
		m.EstadoFE, m.CUFE, m.IDPeriodo, m.Descripcion, m.IDFactura)
	if err != nil {
		return nil, translateError(err, "failed to update invoice")
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindFacturaByID(ctx, m.IDFactura)
}

func (r *PgxFacturaRepository) DeleteFactura(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM facturas_electronicas WHERE id_factura_electronica = $1`, id)
	if err != nil {
		return false, translateError(err, "failed to delete invoice")
	}
	return tag.RowsAffected() > 0, nil
}
