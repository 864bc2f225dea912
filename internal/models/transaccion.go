package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaccion mirrors a row of transacciones_contables.
type Transaccion struct {
	IDTransaccion   int64           `db:"id_transaccion"`
	CuentaID        int64           `db:"cuenta_id"`
	Monto           decimal.Decimal `db:"monto"`
	TipoTransaccion string          `db:"tipo_transaccion"`
	PartidaID       int64           `db:"partida_diaria_id"`
	FechaOperacion  time.Time       `db:"fecha_operacion"`
}

// TransaccionDetalle holds the columns joined onto a transaction read.
// They are nullable because the joins are LEFT JOINs.
type TransaccionDetalle struct {
	CuentaCodigo       sql.NullString `db:"cuenta_codigo"`
	CuentaNombre       sql.NullString `db:"cuenta_nombre"`
	PartidaConcepto    sql.NullString `db:"concepto"`
	PartidaEstado      sql.NullString `db:"partida_estado"`
	IDPeriodo          sql.NullInt64  `db:"id_periodo"`
	PeriodoFechaInicio sql.NullTime   `db:"periodo_fecha_inicio"`
	PeriodoFechaFin    sql.NullTime   `db:"periodo_fecha_fin"`
	PeriodoEstado      sql.NullString `db:"periodo_estado"`
}
