// Package fecha parses and formats the calendar dates exchanged with API clients.
// Accounting dates are timezone-naive: they are always represented as UTC midnight.
package fecha

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
)

// LayoutISO is the format used when returning dates to clients.
const LayoutISO = "2006-01-02"

var patronFecha = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Parse converts a DD/MM/YYYY value into a calendar date.
// campo names the input field in the returned error.
func Parse(campo, valor string) (time.Time, error) {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return time.Time{}, apperrors.Newf(apperrors.DatosFaltantes, "El campo %s es obligatorio.", campo).WithField(campo)
	}
	if !patronFecha.MatchString(valor) {
		return time.Time{}, apperrors.Newf(apperrors.FormatoFechaInvalido, "El campo %s debe tener el formato DD/MM/YYYY.", campo).WithField(campo)
	}

	// The pattern guarantees three numeric parts.
	partes := strings.Split(valor, "/")
	dia, _ := strconv.Atoi(partes[0])
	mes, _ := strconv.Atoi(partes[1])
	anio, _ := strconv.Atoi(partes[2])

	d := Date(anio, time.Month(mes), dia)
	if anio == 0 || d.Year() != anio || d.Month() != time.Month(mes) || d.Day() != dia {
		return time.Time{}, apperrors.Newf(apperrors.FechaNoReal, "El campo %s no es una fecha real.", campo).WithField(campo)
	}
	return d, nil
}

// ParseRango parses a start and end date and checks that start is not after end.
func ParseRango(campoInicio, inicio, campoFin, fin string) (time.Time, time.Time, error) {
	desde, err := Parse(campoInicio, inicio)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hasta, err := Parse(campoFin, fin)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if desde.After(hasta) {
		return time.Time{}, time.Time{}, apperrors.Newf(apperrors.RangoDeFechasInvalido,
			"La %s no puede ser posterior a la %s.", campoInicio, campoFin).WithField(campoInicio)
	}
	return desde, hasta, nil
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the clock and zone of t, keeping its calendar date.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// FormatISO renders t as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(LayoutISO)
}
