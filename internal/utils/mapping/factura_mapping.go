package mapping

import (
	"database/sql"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
)

func ToModelFactura(d domain.Factura) models.Factura {
	return models.Factura{
		IDFactura:     d.IDFactura,
		NumeroFactura: d.NumeroFactura,
		FechaEmision:  d.FechaEmision,
		ClienteNombre: d.ClienteNombre,
		Subtotal:      d.Subtotal,
		Impuestos:     d.Impuestos,
		Total:         d.Total,
		EstadoFE:      string(d.Estado),
		CUFE:          sql.NullString{String: d.CUFE, Valid: d.CUFE != ""},
		IDPeriodo:     d.IDPeriodo,
		Descripcion:   sql.NullString{String: d.Descripcion, Valid: d.Descripcion != ""},
	}
}

func ToDomainFactura(m models.Factura) domain.Factura {
	return domain.Factura{
		IDFactura:     m.IDFactura,
		NumeroFactura: m.NumeroFactura,
		FechaEmision:  fecha.Normalize(m.FechaEmision),
		ClienteNombre: m.ClienteNombre,
		Subtotal:      m.Subtotal,
		Impuestos:     m.Impuestos,
		Total:         m.Total,
		Estado:        domain.EstadoFactura(m.EstadoFE),
		CUFE:          m.CUFE.String,
		IDPeriodo:     m.IDPeriodo,
		Descripcion:   m.Descripcion.String,
	}
}

// ToDomainFacturaPeriodo converts the joined period columns, or returns nil when the join found no row.
func ToDomainFacturaPeriodo(idPeriodo int64, m models.FacturaPeriodo) *domain.Periodo {
	if !m.FechaInicio.Valid {
		return nil
	}
	return &domain.Periodo{
		IDPeriodo:   idPeriodo,
		FechaInicio: fecha.Normalize(m.FechaInicio.Time),
		FechaFin:    fecha.Normalize(m.FechaFin.Time),
		Estado:      domain.EstadoPeriodo(m.Estado.String),
	}
}
