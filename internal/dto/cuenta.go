package dto

import "github.com/SscSPs/contabilidad_app/internal/core/domain"

// CreateCuentaRequest defines the data needed to create a new account.
// Tipo is required only for root accounts; children inherit it from their parent.
type CreateCuentaRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Tipo      string `json:"tipo" validate:"omitempty,max=20"`
	Categoria string `json:"categoria" validate:"required,max=50"`
	ParentID  *int64 `json:"parent_id" validate:"omitempty,gt=0" errkind:"ParentIdInvalido"`
}

// UpdateCuentaRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCuentaRequest struct {
	Nombre    *string `json:"nombre"`
	Tipo      *string `json:"tipo"`
	Categoria *string `json:"categoria"`
}

// CuentaResponse defines the data returned for an account.
type CuentaResponse struct {
	IDCuenta  int64  `json:"id_cuenta"`
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	Categoria string `json:"categoria"`
	PadreID   *int64 `json:"padre_id"`
}

// ToCuentaResponse converts a domain.Cuenta to CuentaResponse DTO
func ToCuentaResponse(c *domain.Cuenta) CuentaResponse {
	return CuentaResponse{
		IDCuenta:  c.IDCuenta,
		Codigo:    c.Codigo,
		Nombre:    c.Nombre,
		Tipo:      string(c.Tipo),
		Categoria: c.Categoria,
		PadreID:   c.PadreID,
	}
}

// ToListCuentaResponse converts a slice of domain.Cuenta to a slice of CuentaResponse DTOs
func ToListCuentaResponse(cuentas []domain.Cuenta) []CuentaResponse {
	res := make([]CuentaResponse, len(cuentas))
	for i := range cuentas {
		res[i] = ToCuentaResponse(&cuentas[i])
	}
	return res
}
