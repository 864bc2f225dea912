package models

import (
	"database/sql"
	"time"
)

// Partida mirrors a row of partidas_diarias.
type Partida struct {
	IDPartida     int64        `db:"id_partida_diaria"`
	Concepto      string       `db:"concepto"`
	Estado        string       `db:"estado"`
	IDPeriodo     int64        `db:"id_periodo"`
	FechaCreacion time.Time    `db:"fecha_creacion"`
	FechaFin      sql.NullTime `db:"fecha_fin"` // joined from periodos_contables
}
