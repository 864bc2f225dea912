package mapping

import (
	"database/sql"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelCuenta converts a domain Cuenta to a model Cuenta
func ToModelCuenta(d domain.Cuenta) models.Cuenta {
	m := models.Cuenta{
		IDCuenta:  d.IDCuenta,
		Codigo:    d.Codigo,
		Nombre:    d.Nombre,
		Categoria: d.Categoria,
	}
	if d.Tipo != "" {
		m.Tipo = sql.NullString{String: string(d.Tipo), Valid: true}
	}
	if d.PadreID != nil {
		m.PadreID = sql.NullInt64{Int64: *d.PadreID, Valid: true}
	}
	return m
}

// ToDomainCuenta converts a model Cuenta to a domain Cuenta
func ToDomainCuenta(m models.Cuenta) domain.Cuenta {
	d := domain.Cuenta{
		IDCuenta:  m.IDCuenta,
		Codigo:    m.Codigo,
		Nombre:    m.Nombre,
		Tipo:      domain.TipoCuenta(m.Tipo.String),
		Categoria: m.Categoria,
	}
	if m.PadreID.Valid {
		padre := m.PadreID.Int64
		d.PadreID = &padre
	}
	return d
}
