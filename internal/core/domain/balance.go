package domain

import "github.com/shopspring/decimal"

// ProblemaTransaccion classifies an incomplete or inconsistent transaction.
type ProblemaTransaccion string

const (
	SinPartida     ProblemaTransaccion = "SIN_PARTIDA"
	MontoInvalido  ProblemaTransaccion = "MONTO_INVALIDO"
	CuentaInvalida ProblemaTransaccion = "CUENTA_INVALIDA"
	TipoInvalido   ProblemaTransaccion = "TIPO_INVALIDO"
)

// BalancePartida holds the debit and credit totals of one journal entry.
type BalancePartida struct {
	IDPartida  int64
	Concepto   string
	TotalDebe  decimal.Decimal
	TotalHaber decimal.Decimal
	Diferencia decimal.Decimal
	Cuadrado   bool
}

// TransaccionIncompleta reports one transaction together with the problems found in it.
type TransaccionIncompleta struct {
	IDTransaccion int64
	Problemas     []ProblemaTransaccion
}

// Integridad counts the transactions per problem type.
type Integridad struct {
	TotalTransacciones int
	Validas            int
	SinPartida         int
	MontoInvalido      int
	CuentaInvalida     int
	TipoInvalido       int
}

// BalanceGeneral is the ledger-wide double-entry check.
type BalanceGeneral struct {
	TotalDebe   decimal.Decimal
	TotalHaber  decimal.Decimal
	Diferencia  decimal.Decimal
	Cuadrado    bool
	Partidas    []BalancePartida
	Incompletas []TransaccionIncompleta
	Integridad  Integridad
}
