package domain

import "time"

// EstadoPeriodo is the lifecycle state of an accounting period.
type EstadoPeriodo string

const (
	PeriodoActivo     EstadoPeriodo = "ACTIVO"
	PeriodoProximo    EstadoPeriodo = "PRÓXIMO"
	PeriodoFinalizado EstadoPeriodo = "FINALIZADO"
)

// Valid reports whether e is a known period state.
func (e EstadoPeriodo) Valid() bool {
	switch e {
	case PeriodoActivo, PeriodoProximo, PeriodoFinalizado:
		return true
	}
	return false
}

// Periodo is an accounting period. Dates are calendar dates at UTC midnight.
type Periodo struct {
	IDPeriodo   int64
	FechaInicio time.Time
	FechaFin    time.Time
	Estado      EstadoPeriodo
}
