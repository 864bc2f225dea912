package dto

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type BalancePartidaResponse struct {
	IDPartidaDiaria int64           `json:"id_partida_diaria"`
	Concepto        string          `json:"concepto"`
	TotalDebe       decimal.Decimal `json:"total_debe"`
	TotalHaber      decimal.Decimal `json:"total_haber"`
	Diferencia      decimal.Decimal `json:"diferencia"`
	Cuadrado        bool            `json:"cuadrado"`
}

type TransaccionIncompletaResponse struct {
	IDTransaccion int64    `json:"id_transaccion"`
	Problemas     []string `json:"problemas"`
}

type IntegridadResponse struct {
	TotalTransacciones int `json:"total_transacciones"`
	Validas            int `json:"validas"`
	SinPartida         int `json:"sin_partida"`
	MontoInvalido      int `json:"monto_invalido"`
	CuentaInvalida     int `json:"cuenta_invalida"`
	TipoInvalido       int `json:"tipo_invalido"`
}

// BalanceResponse is the ledger-wide double-entry check.
type BalanceResponse struct {
	TotalDebe   decimal.Decimal                 `json:"total_debe"`
	TotalHaber  decimal.Decimal                 `json:"total_haber"`
	Diferencia  decimal.Decimal                 `json:"diferencia"`
	Cuadrado    bool                            `json:"cuadrado"`
	Partidas    []BalancePartidaResponse        `json:"partidas"`
	Incompletas []TransaccionIncompletaResponse `json:"transacciones_incompletas"`
	Integridad  IntegridadResponse              `json:"integridad"`
}

func ToBalanceResponse(b *domain.BalanceGeneral) BalanceResponse {
	res := BalanceResponse{
		TotalDebe:   b.TotalDebe,
		TotalHaber:  b.TotalHaber,
		Diferencia:  b.Diferencia,
		Cuadrado:    b.Cuadrado,
		Partidas:    make([]BalancePartidaResponse, len(b.Partidas)),
		Incompletas: make([]TransaccionIncompletaResponse, len(b.Incompletas)),
		Integridad: IntegridadResponse{
			TotalTransacciones: b.Integridad.TotalTransacciones,
			Validas:            b.Integridad.Validas,
			SinPartida:         b.Integridad.SinPartida,
			MontoInvalido:      b.Integridad.MontoInvalido,
			CuentaInvalida:     b.Integridad.CuentaInvalida,
			TipoInvalido:       b.Integridad.TipoInvalido,
		},
	}
	for i, p := range b.Partidas {
		res.Partidas[i] = BalancePartidaResponse{
			IDPartidaDiaria: p.IDPartida,
			Concepto:        p.Concepto,
			TotalDebe:       p.TotalDebe,
			TotalHaber:      p.TotalHaber,
			Diferencia:      p.Diferencia,
			Cuadrado:        p.Cuadrado,
		}
	}
	for i, inc := range b.Incompletas {
		problemas := make([]string, len(inc.Problemas))
		for j, p := range inc.Problemas {
			problemas[j] = string(p)
		}
		res.Incompletas[i] = TransaccionIncompletaResponse{IDTransaccion: inc.IDTransaccion, Problemas: problemas}
	}
	return res
}
