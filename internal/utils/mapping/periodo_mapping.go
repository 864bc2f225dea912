package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
)

func ToModelPeriodo(d domain.Periodo) models.Periodo {
	return models.Periodo{
		IDPeriodo:   d.IDPeriodo,
		FechaInicio: d.FechaInicio,
		FechaFin:    d.FechaFin,
		Estado:      string(d.Estado),
	}
}

// ToDomainPeriodo converts a model Periodo, normalizing the dates to UTC midnight.
func ToDomainPeriodo(m models.Periodo) domain.Periodo {
	return domain.Periodo{
		IDPeriodo:   m.IDPeriodo,
		FechaInicio: fecha.Normalize(m.FechaInicio),
		FechaFin:    fecha.Normalize(m.FechaFin),
		Estado:      domain.EstadoPeriodo(m.Estado),
	}
}
