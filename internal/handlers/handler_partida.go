package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partidaHandler handles HTTP requests related to journal entries.
type partidaHandler struct {
	partidaService portssvc.PartidaSvcFacade
}

func newPartidaHandler(ps portssvc.PartidaSvcFacade) *partidaHandler {
	return &partidaHandler{partidaService: ps}
}

func registerPartidaRoutes(rg *gin.RouterGroup, partidaService portssvc.PartidaSvcFacade) {
	h := newPartidaHandler(partidaService)

	partidas := rg.Group("/partidas-diarias")
	{
		partidas.GET("", h.listPartidas)
		partidas.GET("/fechas", h.listPartidasByFechas)
		partidas.GET("/periodo/:id_periodo", h.listPartidasByPeriodo)
		partidas.GET("/:id", h.getPartida)
		partidas.POST("", h.createPartida)
		partidas.PUT("/:id", h.updatePartida)
		partidas.DELETE("/:id", h.deletePartida)
	}
}

// createPartida godoc
// @Summary Create a journal entry
// @Tags partidas-diarias
// @Accept json
// @Produce json
// @Param partida body dto.PartidaRequest true "Journal entry details"
// @Success 201 {object} dto.APIResponse{data=dto.PartidaResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData} "Period not found"
// @Router /partidas-diarias [post]
func (h *partidaHandler) createPartida(c *gin.Context) {
	var req dto.PartidaRequest
	if !bindJSON(c, &req) {
		return
	}

	partida, err := h.partidaService.CreatePartida(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Partida diaria creada exitosamente", dto.ToPartidaResponse(partida))
}

// getPartida godoc
// @Summary Get a journal entry
// @Tags partidas-diarias
// @Produce json
// @Param id path int true "Journal entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.PartidaResponse}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /partidas-diarias/{id} [get]
func (h *partidaHandler) getPartida(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	partida, err := h.partidaService.GetPartidaByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToPartidaResponse(partida))
}

// listPartidas godoc
// @Summary List journal entries
// @Tags partidas-diarias
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PartidaResponse}
// @Router /partidas-diarias [get]
func (h *partidaHandler) listPartidas(c *gin.Context) {
	partidas, err := h.partidaService.ListPartidas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListPartidaResponse(partidas))
}

// listPartidasByPeriodo godoc
// @Summary List the journal entries of a period
// @Description Each entry carries its transactions with the account code and name
// @Tags partidas-diarias
// @Produce json
// @Param id_periodo path int true "Period ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.PartidaConTransaccionesResponse}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /partidas-diarias/periodo/{id_periodo} [get]
func (h *partidaHandler) listPartidasByPeriodo(c *gin.Context) {
	idPeriodo, ok := parseID(c, "id_periodo")
	if !ok {
		return
	}

	partidas, err := h.partidaService.ListPartidasByPeriodo(c.Request.Context(), idPeriodo)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListPartidaConTransaccionesResponse(partidas))
}

// listPartidasByFechas godoc
// @Summary List journal entries by creation date
// @Description Both bounds are inclusive and use DD/MM/YYYY
// @Tags partidas-diarias
// @Produce json
// @Param fecha_inicio query string true "Start date (DD/MM/YYYY)"
// @Param fecha_fin query string true "End date (DD/MM/YYYY)"
// @Success 200 {object} dto.APIResponse{data=[]dto.PartidaConTransaccionesResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /partidas-diarias/fechas [get]
func (h *partidaHandler) listPartidasByFechas(c *gin.Context) {
	var params dto.PartidaFechasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind date filters", slog.String("error", err.Error()))
	}

	partidas, err := h.partidaService.ListPartidasByFechas(c.Request.Context(), params.FechaInicio, params.FechaFin)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListPartidaConTransaccionesResponse(partidas))
}

// updatePartida godoc
// @Summary Replace a journal entry
// @Tags partidas-diarias
// @Accept json
// @Produce json
// @Param id path int true "Journal entry ID"
// @Param partida body dto.PartidaRequest true "Journal entry details"
// @Success 200 {object} dto.APIResponse{data=dto.PartidaResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /partidas-diarias/{id} [put]
func (h *partidaHandler) updatePartida(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PartidaRequest
	if !bindJSON(c, &req) {
		return
	}

	partida, err := h.partidaService.UpdatePartida(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Partida diaria actualizada exitosamente", dto.ToPartidaResponse(partida))
}

// deletePartida godoc
// @Summary Delete a journal entry
// @Tags partidas-diarias
// @Produce json
// @Param id path int true "Journal entry ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData} "Entry has transactions"
// @Router /partidas-diarias/{id} [delete]
func (h *partidaHandler) deletePartida(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.partidaService.DeletePartida(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Partida diaria eliminada exitosamente", nil)
}
