package dto

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/shopspring/decimal"
)

// PartidaRequest is used both to create and to replace a journal entry.
// Estado defaults to PENDIENTE when empty.
type PartidaRequest struct {
	Concepto  string `json:"concepto" validate:"required,max=255" errkind:"ConceptoInvalido"`
	Estado    string `json:"estado" validate:"omitempty,max=20"`
	IDPeriodo int64  `json:"id_periodo" validate:"required,gt=0" errkind:"IdPeriodoInvalido"`
}

// PartidaFechasParams holds the creation-date range query. Dates use DD/MM/YYYY.
type PartidaFechasParams struct {
	FechaInicio string `form:"fecha_inicio"`
	FechaFin    string `form:"fecha_fin"`
}

// PartidaResponse defines the data returned for a journal entry.
type PartidaResponse struct {
	IDPartidaDiaria int64     `json:"id_partida_diaria"`
	Concepto        string    `json:"concepto"`
	Estado          string    `json:"estado"`
	IDPeriodo       int64     `json:"id_periodo"`
	FechaCreacion   time.Time `json:"fecha_creacion"`
	FechaFin        string    `json:"fecha_fin,omitempty"`
}

// PartidaTransaccionResponse is a transaction nested under its journal entry.
type PartidaTransaccionResponse struct {
	IDTransaccion   int64           `json:"id_transaccion"`
	CuentaID        int64           `json:"cuenta_id"`
	CuentaCodigo    string          `json:"cuenta_codigo"`
	CuentaNombre    string          `json:"cuenta_nombre"`
	Monto           decimal.Decimal `json:"monto"`
	TipoTransaccion string          `json:"tipo_transaccion"`
	FechaOperacion  string          `json:"fecha_operacion"`
}

// PartidaConTransaccionesResponse is returned by the aggregated reads.
type PartidaConTransaccionesResponse struct {
	PartidaResponse
	Transacciones []PartidaTransaccionResponse `json:"transacciones"`
}

func ToPartidaResponse(p *domain.Partida) PartidaResponse {
	res := PartidaResponse{
		IDPartidaDiaria: p.IDPartida,
		Concepto:        p.Concepto,
		Estado:          p.Estado,
		IDPeriodo:       p.IDPeriodo,
		FechaCreacion:   p.FechaCreacion,
	}
	if p.PeriodoFechaFin != nil {
		res.FechaFin = fecha.FormatISO(*p.PeriodoFechaFin)
	}
	return res
}

func ToListPartidaResponse(partidas []domain.Partida) []PartidaResponse {
	res := make([]PartidaResponse, len(partidas))
	for i := range partidas {
		res[i] = ToPartidaResponse(&partidas[i])
	}
	return res
}

func ToListPartidaConTransaccionesResponse(partidas []domain.Partida) []PartidaConTransaccionesResponse {
	res := make([]PartidaConTransaccionesResponse, len(partidas))
	for i := range partidas {
		p := &partidas[i]
		txns := make([]PartidaTransaccionResponse, len(p.Transacciones))
		for j, t := range p.Transacciones {
			txns[j] = PartidaTransaccionResponse{
				IDTransaccion:   t.IDTransaccion,
				CuentaID:        t.CuentaID,
				Monto:           t.Monto,
				TipoTransaccion: string(t.TipoTransaccion),
				FechaOperacion:  fecha.FormatISO(t.FechaOperacion),
			}
			if t.Detalle != nil {
				txns[j].CuentaCodigo = t.Detalle.CuentaCodigo
				txns[j].CuentaNombre = t.Detalle.CuentaNombre
			}
		}
		res[i] = PartidaConTransaccionesResponse{
			PartidaResponse: ToPartidaResponse(p),
			Transacciones:   txns,
		}
	}
	return res
}
