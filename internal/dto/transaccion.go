package dto

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/shopspring/decimal"
)

// TransaccionRequest is used both to create and to replace a transaction.
// Monto accepts a JSON number or string and is rounded to two decimals.
type TransaccionRequest struct {
	CuentaID        int64            `json:"cuenta_id" validate:"required,gt=0" errkind:"CuentaIdInvalido"`
	Monto           *decimal.Decimal `json:"monto" validate:"required"`
	TipoTransaccion string           `json:"tipo_transaccion" validate:"required,oneof=DEBE HABER" errkind:"TipoTransaccionInvalido"`
	PartidaDiariaID int64            `json:"partida_diaria_id" validate:"required,gt=0" errkind:"PartidaIdInvalido"`
	FechaOperacion  string           `json:"fecha_operacion"`
}

// TransaccionDetalleResponse holds the joined columns of a transaction read.
type TransaccionDetalleResponse struct {
	CuentaCodigo       string `json:"cuenta_codigo"`
	CuentaNombre       string `json:"cuenta_nombre"`
	Concepto           string `json:"concepto"`
	PartidaEstado      string `json:"partida_estado"`
	IDPeriodo          int64  `json:"id_periodo"`
	PeriodoFechaInicio string `json:"periodo_fecha_inicio"`
	PeriodoFechaFin    string `json:"periodo_fecha_fin"`
	PeriodoEstado      string `json:"periodo_estado"`
}

// TransaccionResponse defines the data returned for a transaction.
type TransaccionResponse struct {
	IDTransaccion   int64           `json:"id_transaccion"`
	CuentaID        int64           `json:"cuenta_id"`
	Monto           decimal.Decimal `json:"monto"`
	TipoTransaccion string          `json:"tipo_transaccion"`
	PartidaDiariaID int64           `json:"partida_diaria_id"`
	FechaOperacion  string          `json:"fecha_operacion"`
	*TransaccionDetalleResponse
}

func ToTransaccionResponse(t *domain.Transaccion) TransaccionResponse {
	res := TransaccionResponse{
		IDTransaccion:   t.IDTransaccion,
		CuentaID:        t.CuentaID,
		Monto:           t.Monto,
		TipoTransaccion: string(t.TipoTransaccion),
		PartidaDiariaID: t.PartidaID,
		FechaOperacion:  fecha.FormatISO(t.FechaOperacion),
	}
	if d := t.Detalle; d != nil {
		res.TransaccionDetalleResponse = &TransaccionDetalleResponse{
			CuentaCodigo:       d.CuentaCodigo,
			CuentaNombre:       d.CuentaNombre,
			Concepto:           d.PartidaConcepto,
			PartidaEstado:      d.PartidaEstado,
			IDPeriodo:          d.IDPeriodo,
			PeriodoFechaInicio: fecha.FormatISO(d.PeriodoFechaInicio),
			PeriodoFechaFin:    fecha.FormatISO(d.PeriodoFechaFin),
			PeriodoEstado:      string(d.PeriodoEstado),
		}
	}
	return res
}

func ToListTransaccionResponse(txns []domain.Transaccion) []TransaccionResponse {
	res := make([]TransaccionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransaccionResponse(&txns[i])
	}
	return res
}
