package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cuentaHandler handles HTTP requests related to the chart of accounts.
type cuentaHandler struct {
	cuentaService portssvc.CuentaSvcFacade
}

func newCuentaHandler(cs portssvc.CuentaSvcFacade) *cuentaHandler {
	return &cuentaHandler{cuentaService: cs}
}

// registerCuentaRoutes registers routes related to accounts.
func registerCuentaRoutes(rg *gin.RouterGroup, cuentaService portssvc.CuentaSvcFacade) {
	h := newCuentaHandler(cuentaService)

	cuentas := rg.Group("/cuentas-contables")
	{
		cuentas.GET("", h.listCuentas)
		cuentas.GET("/:id", h.getCuenta)
		cuentas.POST("", h.createCuenta)
		cuentas.PUT("/:id", h.updateCuenta)
		cuentas.DELETE("/:id", h.deleteCuenta)
	}
}

// createCuenta godoc
// @Summary Create an account
// @Description Creates a root account, or a child account when parent_id is given. The code is generated.
// @Tags cuentas-contables
// @Accept json
// @Produce json
// @Param cuenta body dto.CreateCuentaRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=dto.CuentaResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData} "Invalid input"
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData} "Parent account not found"
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData} "Duplicate name or exhausted sub-accounts"
// @Failure 500 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /cuentas-contables [post]
func (h *cuentaHandler) createCuenta(c *gin.Context) {
	var req dto.CreateCuentaRequest
	if !bindJSON(c, &req) {
		return
	}

	cuenta, err := h.cuentaService.CreateCuenta(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.String("codigo", cuenta.Codigo))
	respond(c, http.StatusCreated, "Cuenta contable creada exitosamente", dto.ToCuentaResponse(cuenta))
}

// getCuenta godoc
// @Summary Get an account
// @Tags cuentas-contables
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse{data=dto.CuentaResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /cuentas-contables/{id} [get]
func (h *cuentaHandler) getCuenta(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	cuenta, err := h.cuentaService.GetCuentaByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToCuentaResponse(cuenta))
}

// listCuentas godoc
// @Summary List accounts
// @Description Returns the whole chart of accounts ordered by code
// @Tags cuentas-contables
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CuentaResponse}
// @Failure 500 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /cuentas-contables [get]
func (h *cuentaHandler) listCuentas(c *gin.Context) {
	cuentas, err := h.cuentaService.ListCuentas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListCuentaResponse(cuentas))
}

// updateCuenta godoc
// @Summary Update an account
// @Description Changes nombre, tipo or categoria. The code and parent never change.
// @Tags cuentas-contables
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param cuenta body dto.UpdateCuentaRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CuentaResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /cuentas-contables/{id} [put]
func (h *cuentaHandler) updateCuenta(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCuentaRequest
	if !bindJSON(c, &req) {
		return
	}

	cuenta, err := h.cuentaService.UpdateCuenta(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Cuenta contable actualizada exitosamente", dto.ToCuentaResponse(cuenta))
}

// deleteCuenta godoc
// @Summary Delete an account
// @Tags cuentas-contables
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData} "Account in use"
// @Router /cuentas-contables/{id} [delete]
func (h *cuentaHandler) deleteCuenta(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.cuentaService.DeleteCuenta(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Cuenta contable eliminada exitosamente", nil)
}
