package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// healthCheck godoc
// @Summary Health check
// @Description Pings the database
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func healthCheck(healthService portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := dto.HealthResponse{Timestamp: time.Now().UTC().Format(time.RFC3339)}

		if err := healthService.Check(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, dto.APIResponse{
				Success: false,
				Message: "Base de datos no disponible",
				Data:    data,
			})
			return
		}

		respond(c, http.StatusOK, "API funcionando correctamente", data)
	}
}
