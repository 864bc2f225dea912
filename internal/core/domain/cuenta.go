package domain

// TipoCuenta defines the fundamental accounting type of an account.
type TipoCuenta string

const (
	Activo     TipoCuenta = "ACTIVO"
	Pasivo     TipoCuenta = "PASIVO"
	Patrimonio TipoCuenta = "PATRIMONIO"
	Ingreso    TipoCuenta = "INGRESO"
	Gasto      TipoCuenta = "GASTO"
)

// TiposCuenta lists the account types in root-code order.
var TiposCuenta = []TipoCuenta{Activo, Pasivo, Patrimonio, Ingreso, Gasto}

// Valid reports whether t is one of the known account types.
func (t TipoCuenta) Valid() bool {
	for _, known := range TiposCuenta {
		if t == known {
			return true
		}
	}
	return false
}

// Cuenta represents an account in the chart of accounts (cuentas_contables).
// Codigo is derived from the account's position in the tree and never supplied by clients.
type Cuenta struct {
	IDCuenta  int64
	Codigo    string
	Nombre    string
	Tipo      TipoCuenta
	Categoria string
	PadreID   *int64
}

// IsRoot reports whether the account has no parent.
func (c Cuenta) IsRoot() bool {
	return c.PadreID == nil
}
