package accounting

import (
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var toleranciaCuadre = decimal.New(1, -2)

// ToleranciaCuadre returns the largest debit/credit difference still treated as balanced.
func ToleranciaCuadre() decimal.Decimal {
	return toleranciaCuadre
}

// Cuadra reports whether debe and haber differ by less than ToleranciaCuadre.
func Cuadra(debe, haber decimal.Decimal) bool {
	return debe.Sub(haber).Abs().LessThan(toleranciaCuadre)
}

// DentroDeTolerancia reports whether a and b differ by at most ToleranciaCuadre.
func DentroDeTolerancia(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(toleranciaCuadre)
}

// CalcularBalance checks that the ledger balances under double entry.
// Only transactions without problems contribute to the totals; the rest are
// reported as incomplete together with every problem found in them.
func CalcularBalance(partidas []domain.Partida, cuentas []domain.Cuenta, transacciones []domain.Transaccion) domain.BalanceGeneral {
	cuentaIDs := make(map[int64]struct{}, len(cuentas))
	for _, c := range cuentas {
		cuentaIDs[c.IDCuenta] = struct{}{}
	}

	porPartida := make(map[int64]*domain.BalancePartida, len(partidas))
	for _, p := range partidas {
		porPartida[p.IDPartida] = &domain.BalancePartida{
			IDPartida:  p.IDPartida,
			Concepto:   p.Concepto,
			TotalDebe:  decimal.Zero,
			TotalHaber: decimal.Zero,
		}
	}

	balance := domain.BalanceGeneral{
		TotalDebe:   decimal.Zero,
		TotalHaber:  decimal.Zero,
		Incompletas: []domain.TransaccionIncompleta{},
	}
	balance.Integridad.TotalTransacciones = len(transacciones)

	for _, txn := range transacciones {
		problemas := detectarProblemas(txn, porPartida, cuentaIDs)
		if len(problemas) > 0 {
			balance.Incompletas = append(balance.Incompletas, domain.TransaccionIncompleta{
				IDTransaccion: txn.IDTransaccion,
				Problemas:     problemas,
			})
			contarProblemas(&balance.Integridad, problemas)
			continue
		}

		balance.Integridad.Validas++
		bp := porPartida[txn.PartidaID]
		if txn.TipoTransaccion == domain.Debe {
			balance.TotalDebe = balance.TotalDebe.Add(txn.Monto)
			bp.TotalDebe = bp.TotalDebe.Add(txn.Monto)
		} else {
			balance.TotalHaber = balance.TotalHaber.Add(txn.Monto)
			bp.TotalHaber = bp.TotalHaber.Add(txn.Monto)
		}
	}

	balance.Diferencia = balance.TotalDebe.Sub(balance.TotalHaber)
	balance.Cuadrado = Cuadra(balance.TotalDebe, balance.TotalHaber)

	balance.Partidas = make([]domain.BalancePartida, 0, len(porPartida))
	for _, bp := range porPartida {
		bp.Diferencia = bp.TotalDebe.Sub(bp.TotalHaber)
		bp.Cuadrado = Cuadra(bp.TotalDebe, bp.TotalHaber)
		balance.Partidas = append(balance.Partidas, *bp)
	}
	sort.Slice(balance.Partidas, func(i, j int) bool {
		return balance.Partidas[i].IDPartida < balance.Partidas[j].IDPartida
	})

	return balance
}

func detectarProblemas(txn domain.Transaccion, partidas map[int64]*domain.BalancePartida, cuentas map[int64]struct{}) []domain.ProblemaTransaccion {
	var problemas []domain.ProblemaTransaccion
	if _, ok := partidas[txn.PartidaID]; !ok {
		problemas = append(problemas, domain.SinPartida)
	}
	if !txn.Monto.IsPositive() {
		problemas = append(problemas, domain.MontoInvalido)
	}
	if _, ok := cuentas[txn.CuentaID]; !ok {
		problemas = append(problemas, domain.CuentaInvalida)
	}
	if !txn.TipoTransaccion.Valid() {
		problemas = append(problemas, domain.TipoInvalido)
	}
	return problemas
}

func contarProblemas(integridad *domain.Integridad, problemas []domain.ProblemaTransaccion) {
	for _, p := range problemas {
		switch p {
		case domain.SinPartida:
			integridad.SinPartida++
		case domain.MontoInvalido:
			integridad.MontoInvalido++
		case domain.CuentaInvalida:
			integridad.CuentaInvalida++
		case domain.TipoInvalido:
			integridad.TipoInvalido++
		}
	}
}
