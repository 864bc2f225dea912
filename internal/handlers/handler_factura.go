package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// facturaHandler handles HTTP requests related to electronic invoices.
type facturaHandler struct {
	facturaService portssvc.FacturaSvcFacade
}

func newFacturaHandler(fs portssvc.FacturaSvcFacade) *facturaHandler {
	return &facturaHandler{facturaService: fs}
}

func registerFacturaRoutes(rg *gin.RouterGroup, facturaService portssvc.FacturaSvcFacade) {
	h := newFacturaHandler(facturaService)

	facturas := rg.Group("/facturacion-electronica")
	{
		facturas.GET("", h.listFacturas)
		facturas.GET("/periodo/:id_periodo", h.listFacturasByPeriodo)
		facturas.GET("/:id", h.getFactura)
		facturas.POST("", h.createFactura)
		facturas.PUT("/:id", h.updateFactura)
		facturas.DELETE("/:id", h.deleteFactura)
	}
}

// createFactura godoc
// @Summary Issue an electronic invoice
// @Description total must equal subtotal plus impuestos within 0.01. A CUFE is generated for non-draft invoices without one.
// @Tags facturacion-electronica
// @Accept json
// @Produce json
// @Param factura body dto.CreateFacturaRequest true "Invoice details"
// @Success 201 {object} dto.APIResponse{data=dto.FacturaResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData} "Period not found"
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData} "Duplicate invoice number"
// @Router /facturacion-electronica [post]
func (h *facturaHandler) createFactura(c *gin.Context) {
	var req dto.CreateFacturaRequest
	if !bindJSON(c, &req) {
		return
	}

	factura, err := h.facturaService.CreateFactura(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Factura electrónica creada exitosamente", dto.ToFacturaResponse(factura))
}

// getFactura godoc
// @Summary Get an electronic invoice
// @Tags facturacion-electronica
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} dto.APIResponse{data=dto.FacturaResponse}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /facturacion-electronica/{id} [get]
func (h *facturaHandler) getFactura(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	factura, err := h.facturaService.GetFacturaByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToFacturaResponse(factura))
}

// listFacturas godoc
// @Summary List electronic invoices
// @Description Newest first, with the period dates and status
// @Tags facturacion-electronica
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FacturaResponse}
// @Router /facturacion-electronica [get]
func (h *facturaHandler) listFacturas(c *gin.Context) {
	facturas, err := h.facturaService.ListFacturas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListFacturaResponse(facturas))
}

// listFacturasByPeriodo godoc
// @Summary List the invoices of a period
// @Tags facturacion-electronica
// @Produce json
// @Param id_periodo path int true "Period ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.FacturaResponse}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /facturacion-electronica/periodo/{id_periodo} [get]
func (h *facturaHandler) listFacturasByPeriodo(c *gin.Context) {
	idPeriodo, ok := parseID(c, "id_periodo")
	if !ok {
		return
	}

	facturas, err := h.facturaService.ListFacturasByPeriodo(c.Request.Context(), idPeriodo)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", dto.ToListFacturaResponse(facturas))
}

// updateFactura godoc
// @Summary Update an electronic invoice
// @Description Only the fields present in the body change
// @Tags facturacion-electronica
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param factura body dto.UpdateFacturaRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.FacturaResponse}
// @Failure 400 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Failure 409 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /facturacion-electronica/{id} [put]
func (h *facturaHandler) updateFactura(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateFacturaRequest
	if !bindJSON(c, &req) {
		return
	}

	factura, err := h.facturaService.UpdateFactura(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Factura electrónica actualizada exitosamente", dto.ToFacturaResponse(factura))
}

// deleteFactura godoc
// @Summary Delete an electronic invoice
// @Tags facturacion-electronica
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{data=handlers.ErrorData}
// @Router /facturacion-electronica/{id} [delete]
func (h *facturaHandler) deleteFactura(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.facturaService.DeleteFactura(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Factura electrónica eliminada exitosamente", nil)
}
