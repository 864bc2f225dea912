package dto

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/shopspring/decimal"
)

// CreateFacturaRequest defines the data needed to issue an invoice.
// FechaEmision uses DD/MM/YYYY; EstadoFE defaults to BORRADOR.
type CreateFacturaRequest struct {
	NumeroFactura string           `json:"numero_factura" validate:"required,max=50"`
	FechaEmision  string           `json:"fecha_emision"`
	ClienteNombre string           `json:"cliente_nombre" validate:"required,max=150"`
	Subtotal      *decimal.Decimal `json:"subtotal" validate:"required"`
	Impuestos     *decimal.Decimal `json:"impuestos" validate:"required"`
	Total         *decimal.Decimal `json:"total" validate:"required"`
	EstadoFE      string           `json:"estado_fe" validate:"omitempty,oneof=BORRADOR ENVIADA ACEPTADA RECHAZADA ANULADA"`
	CUFE          string           `json:"cufe" validate:"omitempty,max=128"`
	IDPeriodo     int64            `json:"id_periodo" validate:"required,gt=0" errkind:"IdPeriodoInvalido"`
	Descripcion   string           `json:"descripcion"`
}

// UpdateFacturaRequest defines the data allowed for updating an invoice.
// Nil fields keep their stored value.
type UpdateFacturaRequest struct {
	NumeroFactura *string          `json:"numero_factura"`
	FechaEmision  *string          `json:"fecha_emision"`
	ClienteNombre *string          `json:"cliente_nombre"`
	Subtotal      *decimal.Decimal `json:"subtotal"`
	Impuestos     *decimal.Decimal `json:"impuestos"`
	Total         *decimal.Decimal `json:"total"`
	EstadoFE      *string          `json:"estado_fe"`
	CUFE          *string          `json:"cufe"`
	IDPeriodo     *int64           `json:"id_periodo"`
	Descripcion   *string          `json:"descripcion"`
}

// FacturaResponse defines the data returned for an invoice.
// The periodo_* fields are present only on reads that join the period.
type FacturaResponse struct {
	IDFacturaElectronica int64           `json:"id_factura_electronica"`
	NumeroFactura        string          `json:"numero_factura"`
	FechaEmision         string          `json:"fecha_emision"`
	ClienteNombre        string          `json:"cliente_nombre"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Impuestos            decimal.Decimal `json:"impuestos"`
	Total                decimal.Decimal `json:"total"`
	EstadoFE             string          `json:"estado_fe"`
	CUFE                 string          `json:"cufe"`
	IDPeriodo            int64           `json:"id_periodo"`
	Descripcion          string          `json:"descripcion"`
	PeriodoFechaInicio   string          `json:"periodo_fecha_inicio,omitempty"`
	PeriodoFechaFin      string          `json:"periodo_fecha_fin,omitempty"`
	PeriodoEstado        string          `json:"periodo_estado,omitempty"`
}

func ToFacturaResponse(f *domain.Factura) FacturaResponse {
	res := FacturaResponse{
		IDFacturaElectronica: f.IDFactura,
		NumeroFactura:        f.NumeroFactura,
		FechaEmision:         fecha.FormatISO(f.FechaEmision),
		ClienteNombre:        f.ClienteNombre,
		Subtotal:             f.Subtotal,
		Impuestos:            f.Impuestos,
		Total:                f.Total,
		EstadoFE:             string(f.Estado),
		CUFE:                 f.CUFE,
		IDPeriodo:            f.IDPeriodo,
		Descripcion:          f.Descripcion,
	}
	if p := f.Periodo; p != nil {
		res.PeriodoFechaInicio = fecha.FormatISO(p.FechaInicio)
		res.PeriodoFechaFin = fecha.FormatISO(p.FechaFin)
		res.PeriodoEstado = string(p.Estado)
	}
	return res
}

func ToListFacturaResponse(facturas []domain.Factura) []FacturaResponse {
	res := make([]FacturaResponse, len(facturas))
	for i := range facturas {
		res[i] = ToFacturaResponse(&facturas[i])
	}
	return res
}
