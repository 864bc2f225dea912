package accounting_test

import (
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id, cuenta, partida int64, monto string, tipo domain.TipoTransaccion) domain.Transaccion {
	return domain.Transaccion{
		IDTransaccion:   id,
		CuentaID:        cuenta,
		PartidaID:       partida,
		Monto:           decimal.RequireFromString(monto),
		TipoTransaccion: tipo,
	}
}

func TestCuadra(t *testing.T) {
	assert.True(t, accounting.Cuadra(decimal.RequireFromString("100.00"), decimal.RequireFromString("100.00")))
	assert.True(t, accounting.Cuadra(decimal.RequireFromString("100.005"), decimal.RequireFromString("100.00")))
	assert.False(t, accounting.Cuadra(decimal.RequireFromString("100.01"), decimal.RequireFromString("100.00")))
}

func TestToleranciaCuadre(t *testing.T) {
	assert.True(t, accounting.ToleranciaCuadre().Equal(decimal.RequireFromString("0.01")))

	_ = accounting.ToleranciaCuadre().Add(decimal.NewFromInt(5))
	assert.True(t, accounting.ToleranciaCuadre().Equal(decimal.RequireFromString("0.01")))
	assert.False(t, accounting.Cuadra(decimal.RequireFromString("103"), decimal.RequireFromString("100")))
}

func TestDentroDeTolerancia(t *testing.T) {
	assert.True(t, accounting.DentroDeTolerancia(decimal.RequireFromString("100.01"), decimal.RequireFromString("100.00")))
	assert.True(t, accounting.DentroDeTolerancia(decimal.RequireFromString("100.00"), decimal.RequireFromString("100.01")))
	assert.False(t, accounting.DentroDeTolerancia(decimal.RequireFromString("100.014"), decimal.RequireFromString("100.0249")))
}

func TestCalcularBalance_Balanced(t *testing.T) {
	partidas := []domain.Partida{{IDPartida: 2, Concepto: "Venta"}, {IDPartida: 1, Concepto: "Apertura"}}
	cuentas := []domain.Cuenta{{IDCuenta: 10}, {IDCuenta: 20}}
	transacciones := []domain.Transaccion{
		txn(1, 10, 1, "500.00", domain.Debe),
		txn(2, 20, 1, "500.00", domain.Haber),
		txn(3, 10, 2, "80.50", domain.Debe),
		txn(4, 20, 2, "80.50", domain.Haber),
	}

	balance := accounting.CalcularBalance(partidas, cuentas, transacciones)

	assert.True(t, balance.Cuadrado)
	assert.True(t, balance.TotalDebe.Equal(decimal.RequireFromString("580.50")))
	assert.True(t, balance.TotalHaber.Equal(decimal.RequireFromString("580.50")))
	assert.True(t, balance.Diferencia.IsZero())
	assert.Empty(t, balance.Incompletas)
	assert.Equal(t, 4, balance.Integridad.TotalTransacciones)
	assert.Equal(t, 4, balance.Integridad.Validas)

	require.Len(t, balance.Partidas, 2)
	assert.Equal(t, int64(1), balance.Partidas[0].IDPartida)
	assert.Equal(t, "Apertura", balance.Partidas[0].Concepto)
	assert.True(t, balance.Partidas[0].Cuadrado)
	assert.True(t, balance.Partidas[1].Cuadrado)
}

func TestCalcularBalance_Unbalanced(t *testing.T) {
	partidas := []domain.Partida{{IDPartida: 1}}
	cuentas := []domain.Cuenta{{IDCuenta: 10}, {IDCuenta: 20}}
	transacciones := []domain.Transaccion{
		txn(1, 10, 1, "100.00", domain.Debe),
		txn(2, 20, 1, "90.00", domain.Haber),
	}

	balance := accounting.CalcularBalance(partidas, cuentas, transacciones)

	assert.False(t, balance.Cuadrado)
	assert.True(t, balance.Diferencia.Equal(decimal.RequireFromString("10.00")))
	require.Len(t, balance.Partidas, 1)
	assert.False(t, balance.Partidas[0].Cuadrado)
	assert.True(t, balance.Partidas[0].Diferencia.Equal(decimal.RequireFromString("10.00")))
}

func TestCalcularBalance_IncompleteTransactions(t *testing.T) {
	partidas := []domain.Partida{{IDPartida: 1}}
	cuentas := []domain.Cuenta{{IDCuenta: 10}}
	transacciones := []domain.Transaccion{
		txn(1, 10, 1, "50.00", domain.Debe),
		txn(2, 10, 99, "50.00", domain.Haber),
		txn(3, 77, 1, "0", "CREDITO"),
	}

	balance := accounting.CalcularBalance(partidas, cuentas, transacciones)

	require.Len(t, balance.Incompletas, 2)
	assert.Equal(t, int64(2), balance.Incompletas[0].IDTransaccion)
	assert.Equal(t, []domain.ProblemaTransaccion{domain.SinPartida}, balance.Incompletas[0].Problemas)
	assert.Equal(t, int64(3), balance.Incompletas[1].IDTransaccion)
	assert.ElementsMatch(t, []domain.ProblemaTransaccion{domain.MontoInvalido, domain.CuentaInvalida, domain.TipoInvalido},
		balance.Incompletas[1].Problemas)

	assert.Equal(t, 3, balance.Integridad.TotalTransacciones)
	assert.Equal(t, 1, balance.Integridad.Validas)
	assert.Equal(t, 1, balance.Integridad.SinPartida)
	assert.Equal(t, 1, balance.Integridad.MontoInvalido)
	assert.Equal(t, 1, balance.Integridad.CuentaInvalida)
	assert.Equal(t, 1, balance.Integridad.TipoInvalido)

	assert.True(t, balance.TotalDebe.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, balance.TotalHaber.IsZero())
	assert.False(t, balance.Cuadrado)
}

func TestCalcularBalance_Empty(t *testing.T) {
	balance := accounting.CalcularBalance(nil, nil, nil)

	assert.True(t, balance.Cuadrado)
	assert.Empty(t, balance.Partidas)
	assert.Empty(t, balance.Incompletas)
	assert.Zero(t, balance.Integridad.TotalTransacciones)
}
