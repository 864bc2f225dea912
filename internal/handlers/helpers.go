package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorData is the payload of a failed request.
type ErrorData struct {
	Error string `json:"error"`
	Campo string `json:"campo,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.APIResponse{Success: true, Message: message, Data: data})
}

// respondError writes the failure envelope for err. Internal causes are only logged.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(status, dto.APIResponse{
			Success: false,
			Message: internalErrorMessage,
			Data:    ErrorData{Error: string(apperrors.Interno)},
		})
		return
	}

	data := ErrorData{Error: string(apperrors.KindOf(err))}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		data.Campo = appErr.Field
	}
	logger.Debug("Request rejected", slog.String("kind", data.Error), slog.String("error", err.Error()))
	c.JSON(status, dto.APIResponse{
		Success: false,
		Message: apperrors.Message(err, internalErrorMessage),
		Data:    data,
	})
}

// bindJSON decodes the request body into req, answering 400 when it is malformed.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		respondError(c, apperrors.Wrap(apperrors.DatosFaltantes, "Formato de solicitud inválido", err))
		return false
	}
	return true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, param string) (int64, bool) {
	return parsePositive(c, param, c.Param(param), apperrors.IdInvalido)
}

func parsePositive(c *gin.Context, campo, raw string, kind apperrors.Kind) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(c, apperrors.Newf(kind, "El parámetro %s debe ser un entero positivo.", campo).WithField(campo))
		return 0, false
	}
	return id, true
}
