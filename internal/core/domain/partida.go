package domain

import "time"

// EstadoPartidaPendiente is assigned to journal entries created without a state.
const EstadoPartidaPendiente = "PENDIENTE"

// Partida is a journal entry (partida diaria) grouping transactions of one period.
type Partida struct {
	IDPartida     int64
	Concepto      string
	Estado        string
	IDPeriodo     int64
	FechaCreacion time.Time

	// Populated by reads that join the period.
	PeriodoFechaFin *time.Time

	// Populated by the aggregated reads (by period, by date range).
	Transacciones []Transaccion
}
