package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoTransaccion indicates whether a line debits or credits its account.
type TipoTransaccion string

const (
	Debe  TipoTransaccion = "DEBE"
	Haber TipoTransaccion = "HABER"
)

// Valid reports whether t is DEBE or HABER.
func (t TipoTransaccion) Valid() bool {
	return t == Debe || t == Haber
}

// Transaccion is a single debit or credit line of a journal entry.
type Transaccion struct {
	IDTransaccion   int64
	CuentaID        int64
	Monto           decimal.Decimal
	TipoTransaccion TipoTransaccion
	PartidaID       int64
	FechaOperacion  time.Time

	// Read-side details joined from related tables.
	Detalle *TransaccionDetalle
}

// TransaccionDetalle holds the joined account, journal entry and period columns.
type TransaccionDetalle struct {
	CuentaCodigo       string
	CuentaNombre       string
	PartidaConcepto    string
	PartidaEstado      string
	IDPeriodo          int64
	PeriodoFechaInicio time.Time
	PeriodoFechaFin    time.Time
	PeriodoEstado      EstadoPeriodo
}
