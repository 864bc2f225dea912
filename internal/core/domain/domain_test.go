package domain_test

import (
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTipoCuenta_Valid(t *testing.T) {
	for _, tipo := range domain.TiposCuenta {
		assert.True(t, tipo.Valid(), tipo)
	}
	assert.False(t, domain.TipoCuenta("COSTO").Valid())
	assert.False(t, domain.TipoCuenta("activo").Valid())
	assert.False(t, domain.TipoCuenta("").Valid())
}

func TestEstadoPeriodo_Valid(t *testing.T) {
	assert.True(t, domain.PeriodoActivo.Valid())
	assert.True(t, domain.EstadoPeriodo("PRÓXIMO").Valid())
	assert.True(t, domain.PeriodoFinalizado.Valid())
	assert.False(t, domain.EstadoPeriodo("PROXIMO").Valid())
	assert.False(t, domain.EstadoPeriodo("1").Valid())
}

func TestTipoTransaccion_Valid(t *testing.T) {
	assert.True(t, domain.Debe.Valid())
	assert.True(t, domain.Haber.Valid())
	assert.False(t, domain.TipoTransaccion("CREDITO").Valid())
}

func TestEstadoFactura_Valid(t *testing.T) {
	for _, e := range []domain.EstadoFactura{
		domain.FacturaBorrador, domain.FacturaEnviada, domain.FacturaAceptada,
		domain.FacturaRechazada, domain.FacturaAnulada,
	} {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, domain.EstadoFactura("PAGADA").Valid())
}

func TestCuenta_IsRoot(t *testing.T) {
	padre := int64(1)
	assert.True(t, domain.Cuenta{}.IsRoot())
	assert.False(t, domain.Cuenta{PadreID: &padre}.IsRoot())
}
