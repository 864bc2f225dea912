package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transaccionHandler handles HTTP requests related to ledger transactions and the balance check.
type transaccionHandler struct {
	transaccionService portssvc.TransaccionSvcFacade
}

func newTransaccionHandler(ts portssvc.TransaccionSvcFacade) *transaccionHandler {
	return &transaccionHandler{transaccionService: ts}
}

func registerTransaccionRoutes(rg *gin.RouterGroup, transaccionService portssvc.TransaccionSvcFacade) {
	h := newTransaccionHandler(transaccionService)

	transacciones := rg.Group("/transacciones-contables")
	{
		transacciones.GET("", h.listTransacciones)
		transacciones.GET("/balance", h.getBalance)
		transacciones.GET("/partida/:partida_diaria_id", h.listTransaccionesByPartida)
		transacciones.GET("/:id", h.getTransaccion)
		transacciones.POST("", h.createTransaccion)
		transacciones.PUT("/:id", h.updateTransaccion)
		transacciones.DELETE("/:id", h.deleteTransaccion)
	}
}

// createTransaccion godoc
// @Summary Record a transaction
// @Description Amounts are rounded to two decimals. fecha_operacion uses DD/MM/YYYY and may not be after the period end.
// @Tags transacciones-contables
// @Accept json
// @Produce json
// @Param transaccion body dto.TransaccionRequest true "Transaction details"
// @Success 201 {object} dto.APIResponse{data=dto.TransaccionResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData} "Account or journal entry not found"
// @Router /transacciones-contables [post]
func (h *transaccionHandler) createTransaccion(c *gin.Context) {
	var req dto.TransaccionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.transaccionService.CreateTransaccion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Transacción contable creada exitosamente", dto.ToTransaccionResponse(txn))
}

// getTransaccion godoc
// @Summary Get a transaction
// @Tags transacciones-contables
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.APIResponse{data=dto.TransaccionResponse}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /transacciones-contables/{id} [get]
func (h *transaccionHandler) getTransaccion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	txn, err := h.transaccionService.GetTransaccionByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToTransaccionResponse(txn))
}

// listTransacciones godoc
// @Summary List transactions
// @Tags transacciones-contables
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TransaccionResponse}
// @Router /transacciones-contables [get]
func (h *transaccionHandler) listTransacciones(c *gin.Context) {
	txns, err := h.transaccionService.ListTransacciones(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListTransaccionResponse(txns))
}

// listTransaccionesByPartida godoc
// @Summary List the transactions of a journal entry
// @Tags transacciones-contables
// @Produce json
// @Param partida_diaria_id path int true "Journal entry ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.TransaccionResponse}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /transacciones-contables/partida/{partida_diaria_id} [get]
func (h *transaccionHandler) listTransaccionesByPartida(c *gin.Context) {
	partidaID, ok := parseID(c, "partida_diaria_id")
	if !ok {
		return
	}

	txns, err := h.transaccionService.ListTransaccionesByPartida(c.Request.Context(), partidaID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListTransaccionResponse(txns))
}

// getBalance godoc
// @Summary Check the double-entry balance
// @Description Totals debits and credits per journal entry and overall, and reports incomplete transactions.
// @Tags transacciones-contables
// @Produce json
// @Param id_periodo query int false "Limit the check to one period"
// @Success 200 {object} dto.APIResponse{data=dto.BalanceResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /transacciones-contables/balance [get]
func (h *transaccionHandler) getBalance(c *gin.Context) {
	var idPeriodo *int64
	if raw, present := c.GetQuery("id_periodo"); present {
		id, ok := parsePositive(c, "id_periodo", raw, apperrors.IdPeriodoInvalido)
		if !ok {
			return
		}
		idPeriodo = &id
	}

	balance, err := h.transaccionService.GetBalance(c.Request.Context(), idPeriodo)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "El balance está cuadrado"
	if !balance.Cuadrado {
		message = "El balance no está cuadrado"
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Ledger out of balance",
			slog.String("diferencia", balance.Diferencia.String()))
	}
	respond(c, http.StatusOK, message, dto.ToBalanceResponse(balance))
}

// updateTransaccion godoc
// @Summary Replace a transaction
// @Tags transacciones-contables
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaccion body dto.TransaccionRequest true "Transaction details"
// @Success 200 {object} dto.APIResponse{data=dto.TransaccionResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /transacciones-contables/{id} [put]
func (h *transaccionHandler) updateTransaccion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.TransaccionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.transaccionService.UpdateTransaccion(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Transacción contable actualizada exitosamente", dto.ToTransaccionResponse(txn))
}

// deleteTransaccion godoc
// @Summary Delete a transaction
// @Tags transacciones-contables
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /transacciones-contables/{id} [delete]
func (h *transaccionHandler) deleteTransaccion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.transaccionService.DeleteTransaccion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Transacción contable eliminada exitosamente", nil)
}
