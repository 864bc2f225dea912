package dto

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
)

// PeriodoRequest is used both to create and to fully replace a period.
// Dates use the DD/MM/YYYY format.
type PeriodoRequest struct {
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Estado      string `json:"estado" validate:"required,oneof=ACTIVO PRÓXIMO FINALIZADO"`
}

// PeriodoResponse defines the data returned for a period. Dates are ISO YYYY-MM-DD.
type PeriodoResponse struct {
	IDPeriodo   int64  `json:"id_periodo"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Estado      string `json:"estado"`
}

func ToPeriodoResponse(p *domain.Periodo) PeriodoResponse {
	return PeriodoResponse{
		IDPeriodo:   p.IDPeriodo,
		FechaInicio: fecha.FormatISO(p.FechaInicio),
		FechaFin:    fecha.FormatISO(p.FechaFin),
		Estado:      string(p.Estado),
	}
}

func ToListPeriodoResponse(periodos []domain.Periodo) []PeriodoResponse {
	res := make([]PeriodoResponse, len(periodos))
	for i := range periodos {
		res[i] = ToPeriodoResponse(&periodos[i])
	}
	return res
}
