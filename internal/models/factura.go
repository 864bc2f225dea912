package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Factura mirrors a row of facturas_electronicas.
type Factura struct {
	IDFactura     int64           `db:"id_factura_electronica"`
	NumeroFactura string          `db:"numero_factura"`
	FechaEmision  time.Time       `db:"fecha_emision"`
	ClienteNombre string          `db:"cliente_nombre"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	Impuestos     decimal.Decimal `db:"impuestos"`
	Total         decimal.Decimal `db:"total"`
	EstadoFE      string          `db:"estado_fe"`
	CUFE          sql.NullString  `db:"cufe"`
	IDPeriodo     int64           `db:"id_periodo"`
	Descripcion   sql.NullString  `db:"descripcion"`
}

// FacturaPeriodo holds the period columns LEFT JOINed onto invoice lists.
type FacturaPeriodo struct {
	FechaInicio sql.NullTime   `db:"periodo_fecha_inicio"`
	FechaFin    sql.NullTime   `db:"periodo_fecha_fin"`
	Estado      sql.NullString `db:"periodo_estado"`
}
