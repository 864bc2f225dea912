package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// periodoHandler handles HTTP requests related to accounting periods.
type periodoHandler struct {
	periodoService portssvc.PeriodoSvcFacade
}

func newPeriodoHandler(ps portssvc.PeriodoSvcFacade) *periodoHandler {
	return &periodoHandler{periodoService: ps}
}

func registerPeriodoRoutes(rg *gin.RouterGroup, periodoService portssvc.PeriodoSvcFacade) {
	h := newPeriodoHandler(periodoService)

	periodos := rg.Group("/periodos-contables")
	{
		periodos.GET("", h.listPeriodos)
		periodos.GET("/:id", h.getPeriodo)
		periodos.POST("", h.createPeriodo)
		periodos.PUT("/:id", h.updatePeriodo)
		periodos.DELETE("/:id", h.deletePeriodo)
	}
}

// createPeriodo godoc
// @Summary Create an accounting period
// @Description Dates use DD/MM/YYYY. Ranges overlapping an existing period are rejected.
// @Tags periodos-contables
// @Accept json
// @Produce json
// @Param periodo body dto.PeriodoRequest true "Period details"
// @Success 201 {object} dto.APIResponse{data=dto.PeriodoResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData} "Overlapping period"
// @Router /periodos-contables [post]
func (h *periodoHandler) createPeriodo(c *gin.Context) {
	var req dto.PeriodoRequest
	if !bindJSON(c, &req) {
		return
	}

	periodo, err := h.periodoService.CreatePeriodo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Periodo contable creado exitosamente", dto.ToPeriodoResponse(periodo))
}

// getPeriodo godoc
// @Summary Get an accounting period
// @Tags periodos-contables
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} dto.APIResponse{data=dto.PeriodoResponse}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /periodos-contables/{id} [get]
func (h *periodoHandler) getPeriodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	periodo, err := h.periodoService.GetPeriodoByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToPeriodoResponse(periodo))
}

// listPeriodos godoc
// @Summary List accounting periods
// @Tags periodos-contables
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PeriodoResponse}
// @Router /periodos-contables [get]
func (h *periodoHandler) listPeriodos(c *gin.Context) {
	periodos, err := h.periodoService.ListPeriodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListPeriodoResponse(periodos))
}

// updatePeriodo godoc
// @Summary Replace an accounting period
// @Tags periodos-contables
// @Accept json
// @Produce json
// @Param id path int true "Period ID"
// @Param periodo body dto.PeriodoRequest true "Period details"
// @Success 200 {object} dto.APIResponse{data=dto.PeriodoResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /periodos-contables/{id} [put]
func (h *periodoHandler) updatePeriodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PeriodoRequest
	if !bindJSON(c, &req) {
		return
	}

	periodo, err := h.periodoService.UpdatePeriodo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Periodo contable actualizado exitosamente", dto.ToPeriodoResponse(periodo))
}

// deletePeriodo godoc
// @Summary Delete an accounting period
// @Tags periodos-contables
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData} "Period in use"
// @Router /periodos-contables/{id} [delete]
func (h *periodoHandler) deletePeriodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.periodoService.DeletePeriodo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Periodo contable eliminado exitosamente", nil)
}
