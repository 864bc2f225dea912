package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{apperrors.New(apperrors.FechaNoReal, "x"), http.StatusBadRequest},
		{apperrors.New(apperrors.FechaFueraDePeriodo, "x"), http.StatusBadRequest},
		{apperrors.New(apperrors.PartidaDiariaNotFound, "x"), http.StatusNotFound},
		{apperrors.New(apperrors.SubcuentasAgotadas, "x"), http.StatusConflict},
		{apperrors.New(apperrors.PeriodoExistente, "x"), http.StatusConflict},
		{fmt.Errorf("wrapped: %w", apperrors.New(apperrors.RegistroDuplicado, "x")), http.StatusConflict},
		{apperrors.NewAppError("boom", nil), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestKindStatus_AgreesWithErrorClass(t *testing.T) {
	classStatus := map[error]int{
		apperrors.ErrValidation: http.StatusBadRequest,
		apperrors.ErrNotFound:   http.StatusNotFound,
		apperrors.ErrDuplicate:  http.StatusConflict,
		apperrors.ErrConflict:   http.StatusConflict,
	}

	for kind, status := range kindStatus {
		err := apperrors.New(kind, "x")
		matched := false
		for sentinel, want := range classStatus {
			if errors.Is(err, sentinel) {
				matched = true
				assert.Equal(t, want, status, string(kind))
			}
		}
		assert.True(t, matched, string(kind))
	}
}
