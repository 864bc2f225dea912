package fecha_test

import (
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind apperrors.Kind
		want     string
	}{
		{name: "valid date", input: "15/04/2024", want: "2024-04-15"},
		{name: "leap day", input: "29/02/2024", want: "2024-02-29"},
		{name: "year boundary", input: "31/12/2023", want: "2023-12-31"},
		{name: "first day of year", input: "01/01/2024", want: "2024-01-01"},
		{name: "surrounding spaces", input: "  01/03/2024 ", want: "2024-03-01"},
		{name: "empty", input: "", wantKind: apperrors.DatosFaltantes},
		{name: "blank", input: "   ", wantKind: apperrors.DatosFaltantes},
		{name: "iso format", input: "2024-04-15", wantKind: apperrors.FormatoFechaInvalido},
		{name: "single digit day", input: "1/04/2024", wantKind: apperrors.FormatoFechaInvalido},
		{name: "text", input: "ayer", wantKind: apperrors.FormatoFechaInvalido},
		{name: "february overflow", input: "31/02/2024", wantKind: apperrors.FechaNoReal},
		{name: "non leap year", input: "29/02/2023", wantKind: apperrors.FechaNoReal},
		{name: "april 31", input: "31/04/2024", wantKind: apperrors.FechaNoReal},
		{name: "month 13", input: "01/13/2024", wantKind: apperrors.FechaNoReal},
		{name: "month zero", input: "10/00/2024", wantKind: apperrors.FechaNoReal},
		{name: "day zero", input: "00/01/2024", wantKind: apperrors.FechaNoReal},
		{name: "year zero", input: "01/01/0000", wantKind: apperrors.FechaNoReal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fecha.Parse("fecha", tt.input)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, fecha.FormatISO(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParse_ErrorNamesField(t *testing.T) {
	_, err := fecha.Parse("fecha_operacion", "")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "fecha_operacion", appErr.Field)
	assert.Contains(t, appErr.Message, "fecha_operacion")
}

func TestParseRango(t *testing.T) {
	desde, hasta, err := fecha.ParseRango("fecha_inicio", "01/01/2024", "fecha_fin", "31/03/2024")
	require.NoError(t, err)
	assert.Equal(t, fecha.Date(2024, time.January, 1), desde)
	assert.Equal(t, fecha.Date(2024, time.March, 31), hasta)

	_, _, err = fecha.ParseRango("fecha_inicio", "01/01/2024", "fecha_fin", "01/01/2024")
	assert.NoError(t, err, "a single-day range is valid")

	_, _, err = fecha.ParseRango("fecha_inicio", "01/04/2024", "fecha_fin", "31/03/2024")
	assert.Equal(t, apperrors.RangoDeFechasInvalido, apperrors.KindOf(err))

	_, _, err = fecha.ParseRango("fecha_inicio", "01/04/2024", "fecha_fin", "")
	assert.Equal(t, apperrors.DatosFaltantes, apperrors.KindOf(err))

	_, _, err = fecha.ParseRango("fecha_inicio", "30/02/2024", "fecha_fin", "31/03/2024")
	assert.Equal(t, apperrors.FechaNoReal, apperrors.KindOf(err))
}

func TestNormalize(t *testing.T) {
	local := time.Date(2024, time.December, 31, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, "2024-12-31", fecha.FormatISO(fecha.Normalize(local)))
}
