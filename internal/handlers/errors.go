package handlers

import (
	"net/http"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
)

const internalErrorMessage = "Error interno del servidor"

// kindStatus maps every error kind to the HTTP status returned to clients.
// Kinds missing from the table are answered with 500.
var kindStatus = map[apperrors.Kind]int{
	apperrors.DatosFaltantes:          http.StatusBadRequest,
	apperrors.LongitudExcedida:        http.StatusBadRequest,
	apperrors.FormatoFechaInvalido:    http.StatusBadRequest,
	apperrors.FechaNoReal:             http.StatusBadRequest,
	apperrors.RangoDeFechasInvalido:   http.StatusBadRequest,
	apperrors.EstadoInvalido:          http.StatusBadRequest,
	apperrors.TipoCuentaInvalido:      http.StatusBadRequest,
	apperrors.TipoTransaccionInvalido: http.StatusBadRequest,
	apperrors.MontoInvalido:           http.StatusBadRequest,
	apperrors.IdInvalido:              http.StatusBadRequest,
	apperrors.ParentIdInvalido:        http.StatusBadRequest,
	apperrors.IdPeriodoInvalido:       http.StatusBadRequest,
	apperrors.CuentaIdInvalido:        http.StatusBadRequest,
	apperrors.PartidaIdInvalido:       http.StatusBadRequest,
	apperrors.ConceptoInvalido:        http.StatusBadRequest,
	apperrors.TotalNoCoincide:         http.StatusBadRequest,
	apperrors.FechaFueraDePeriodo:     http.StatusBadRequest,
	apperrors.ValorFueraDeRango:       http.StatusBadRequest,

	apperrors.CuentaContableNotFound:      http.StatusNotFound,
	apperrors.CuentaPadreNotFound:         http.StatusNotFound,
	apperrors.PeriodoContableNotFound:     http.StatusNotFound,
	apperrors.PartidaDiariaNotFound:       http.StatusNotFound,
	apperrors.TransaccionContableNotFound: http.StatusNotFound,
	apperrors.FacturaNotFound:             http.StatusNotFound,

	apperrors.YaExisteCuenta:     http.StatusConflict,
	apperrors.PeriodoExistente:   http.StatusConflict,
	apperrors.SubcuentasAgotadas: http.StatusConflict,
	apperrors.RegistroDuplicado:  http.StatusConflict,
	apperrors.RegistroEnUso:      http.StatusConflict,
}

// statusFor returns the HTTP status for err.
func statusFor(err error) int {
	if status, ok := kindStatus[apperrors.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
