package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoFactura is the electronic invoice status.
type EstadoFactura string

const (
	FacturaBorrador  EstadoFactura = "BORRADOR"
	FacturaEnviada   EstadoFactura = "ENVIADA"
	FacturaAceptada  EstadoFactura = "ACEPTADA"
	FacturaRechazada EstadoFactura = "RECHAZADA"
	FacturaAnulada   EstadoFactura = "ANULADA"
)

// Valid reports whether e is a known invoice status.
func (e EstadoFactura) Valid() bool {
	switch e {
	case FacturaBorrador, FacturaEnviada, FacturaAceptada, FacturaRechazada, FacturaAnulada:
		return true
	}
	return false
}

// Factura is an electronic invoice issued within an accounting period.
type Factura struct {
	IDFactura     int64
	NumeroFactura string
	FechaEmision  time.Time
	ClienteNombre string
	Subtotal      decimal.Decimal
	Impuestos     decimal.Decimal
	Total         decimal.Decimal
	Estado        EstadoFactura
	CUFE          string
	IDPeriodo     int64
	Descripcion   string

	// Populated by list reads joining the period.
	Periodo *Periodo
}
