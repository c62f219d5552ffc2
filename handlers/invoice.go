package handlers

import (
	"net/http"

	"invoicely/models"
	"invoicely/services/business"
	"invoicely/services/invoice"
	"invoicely/services/render"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	Service  invoice.InvoiceService
	Business business.BusinessService
}

func NewInvoiceHandler(svc invoice.InvoiceService, biz business.BusinessService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc, Business: biz}
}

// ListInvoicesHandler handles GET /api/invoices.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	invoices, err := h.Service.ListInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceHandler handles GET /api/invoices/:id.
func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	inv, err := h.Service.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Invoice not found", "Failed to fetch invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// CreateInvoiceHandler handles POST /api/invoices.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	var input models.InvoiceInput
	if !bindJSON(c, &input, false) {
		return
	}
	inv, err := h.Service.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "", "Failed to create invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoiceHandler handles PUT /api/invoices/:id.
func (h *InvoiceHandler) UpdateInvoiceHandler(c *gin.Context) {
	var input models.InvoiceInput
	if !bindJSON(c, &input, false) {
		return
	}
	inv, err := h.Service.UpdateInvoice(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Invoice not found", "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoiceStatusHandler handles PUT /api/invoices/:id/status.
func (h *InvoiceHandler) UpdateInvoiceStatusHandler(c *gin.Context) {
	var body struct {
		Status models.InvoiceStatus `json:"status"`
	}
	if !bindJSON(c, &body, false) {
		return
	}
	inv, err := h.Service.SetInvoiceStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err, "Invoice not found", "Failed to update invoice status")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DeleteInvoiceHandler handles DELETE /api/invoices/:id.
func (h *InvoiceHandler) DeleteInvoiceHandler(c *gin.Context) {
	if err := h.Service.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Invoice not found", "Failed to delete invoice")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice deleted successfully"})
}

// InvoiceDocumentHandler handles GET /api/invoices/:id/pdf.
func (h *InvoiceHandler) InvoiceDocumentHandler(c *gin.Context) {
	ctx := c.Request.Context()
	inv, err := h.Service.GetInvoice(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "Invoice not found", "Failed to generate invoice PDF")
		return
	}
	cfg, err := h.Business.ConfigForRender(ctx)
	if err != nil {
		respondError(c, err, "", "Failed to generate invoice PDF")
		return
	}
	html, err := render.Document(render.FromInvoice(inv), cfg)
	if err != nil {
		respondError(c, err, "", "Failed to generate invoice PDF")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
