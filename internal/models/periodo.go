package models

import "time"

// Periodo mirrors a row of periodos_contables.
type Periodo struct {
	IDPeriodo   int64     `db:"id_periodo"`
	FechaInicio time.Time `db:"fecha_inicio"`
	FechaFin    time.Time `db:"fecha_fin"`
	Estado      string    `db:"estado"`
}
