package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
)

func ToModelPartida(d domain.Partida) models.Partida {
	return models.Partida{
		IDPartida:     d.IDPartida,
		Concepto:      d.Concepto,
		Estado:        d.Estado,
		IDPeriodo:     d.IDPeriodo,
		FechaCreacion: d.FechaCreacion,
	}
}

func ToDomainPartida(m models.Partida) domain.Partida {
	d := domain.Partida{
		IDPartida:     m.IDPartida,
		Concepto:      m.Concepto,
		Estado:        m.Estado,
		IDPeriodo:     m.IDPeriodo,
		FechaCreacion: m.FechaCreacion,
	}
	if m.FechaFin.Valid {
		fin := fecha.Normalize(m.FechaFin.Time)
		d.PeriodoFechaFin = &fin
	}
	return d
}
