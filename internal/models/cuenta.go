package models

import "database/sql"

// Cuenta mirrors a row of cuentas_contables.
type Cuenta struct {
	IDCuenta  int64          `db:"id_cuenta"`
	Codigo    string         `db:"codigo"`
	Nombre    string         `db:"nombre"`
	Tipo      sql.NullString `db:"tipo"`
	Categoria string         `db:"categoria"`
	PadreID   sql.NullInt64  `db:"padre_id"`
}
