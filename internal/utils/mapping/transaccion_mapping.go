package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
)

func ToModelTransaccion(d domain.Transaccion) models.Transaccion {
	return models.Transaccion{
		IDTransaccion:   d.IDTransaccion,
		CuentaID:        d.CuentaID,
		Monto:           d.Monto,
		TipoTransaccion: string(d.TipoTransaccion),
		PartidaID:       d.PartidaID,
		FechaOperacion:  d.FechaOperacion,
	}
}

func ToDomainTransaccion(m models.Transaccion) domain.Transaccion {
	return domain.Transaccion{
		IDTransaccion:   m.IDTransaccion,
		CuentaID:        m.CuentaID,
		Monto:           m.Monto,
		TipoTransaccion: domain.TipoTransaccion(m.TipoTransaccion),
		PartidaID:       m.PartidaID,
		FechaOperacion:  fecha.Normalize(m.FechaOperacion),
	}
}

// ToDomainTransaccionDetalle converts the joined columns. Missing joins yield zero values.
func ToDomainTransaccionDetalle(m models.TransaccionDetalle) *domain.TransaccionDetalle {
	d := &domain.TransaccionDetalle{
		CuentaCodigo:    m.CuentaCodigo.String,
		CuentaNombre:    m.CuentaNombre.String,
		PartidaConcepto: m.PartidaConcepto.String,
		PartidaEstado:   m.PartidaEstado.String,
		IDPeriodo:       m.IDPeriodo.Int64,
		PeriodoEstado:   domain.EstadoPeriodo(m.PeriodoEstado.String),
	}
	if m.PeriodoFechaInicio.Valid {
		d.PeriodoFechaInicio = fecha.Normalize(m.PeriodoFechaInicio.Time)
	}
	if m.PeriodoFechaFin.Valid {
		d.PeriodoFechaFin = fecha.Normalize(m.PeriodoFechaFin.Time)
	}
	return d
}
