package accounting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// maxSubcuentas is the highest sequence a two-digit child suffix can hold.
const maxSubcuentas = 99

var codigosRaiz = map[domain.TipoCuenta]string{
	domain.Activo:     "1",
	domain.Pasivo:     "2",
	domain.Patrimonio: "3",
	domain.Ingreso:    "4",
	domain.Gasto:      "5",
}

// CodigoRaiz returns the single-digit code of a root account of the given type.
func CodigoRaiz(tipo domain.TipoCuenta) (string, error) {
	codigo, ok := codigosRaiz[tipo]
	if !ok {
		return "", apperrors.Newf(apperrors.TipoCuentaInvalido,
			"Tipo de cuenta inválido para una cuenta raíz: '%s'. Debe ser ACTIVO, PASIVO, PATRIMONIO, INGRESO o GASTO.", tipo).WithField("tipo")
	}
	return codigo, nil
}

// SiguienteCodigoHijo returns the code for a new child of codigoPadre.
// ultimoHermano is the greatest existing sibling code, or "" when the parent has no children.
// Sibling suffixes are fixed-width, so codes sort lexicographically in sequence order.
func SiguienteCodigoHijo(codigoPadre, ultimoHermano string) (string, error) {
	if ultimoHermano == "" {
		return codigoPadre + "01", nil
	}

	sufijo, ok := strings.CutPrefix(ultimoHermano, codigoPadre)
	if !ok || sufijo == "" {
		return "", fmt.Errorf("sibling code %q does not extend parent code %q", ultimoHermano, codigoPadre)
	}
	secuencia, err := strconv.Atoi(sufijo)
	if err != nil || secuencia < 0 {
		return "", fmt.Errorf("sibling code %q has a non-numeric suffix: %w", ultimoHermano, err)
	}

	siguiente := secuencia + 1
	if siguiente > maxSubcuentas {
		return "", apperrors.Newf(apperrors.SubcuentasAgotadas,
			"La cuenta %s ya tiene el máximo de %d subcuentas.", codigoPadre, maxSubcuentas)
	}
	return fmt.Sprintf("%s%02d", codigoPadre, siguiente), nil
}
