package handlers

import (
	"net/http"

	"invoicely/models"
	"invoicely/services/business"
	"invoicely/services/quote"
	"invoicely/services/render"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	Service  quote.QuoteService
	Business business.BusinessService
}

func NewQuoteHandler(svc quote.QuoteService, biz business.BusinessService) *QuoteHandler {
	return &QuoteHandler{Service: svc, Business: biz}
}

func (h *QuoteHandler) ListQuotesHandler(c *gin.Context) {
	quotes, err := h.Service.ListQuotes(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch quotes")
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	q, err := h.Service.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Quote not found", "Failed to fetch quote")
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) CreateQuoteHandler(c *gin.Context) {
	var input models.QuoteInput
	if !bindJSON(c, &input, false) {
		return
	}
	q, err := h.Service.CreateQuote(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "", "Failed to create quote")
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) UpdateQuoteHandler(c *gin.Context) {
	var input models.QuoteInput
	if !bindJSON(c, &input, false) {
		return
	}
	q, err := h.Service.UpdateQuote(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Quote not found", "Failed to update quote")
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) UpdateQuoteStatusHandler(c *gin.Context) {
	var body struct {
		Status models.QuoteStatus `json:"status"`
	}
	if !bindJSON(c, &body, false) {
		return
	}
	q, err := h.Service.SetQuoteStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err, "Quote not found", "Failed to update quote status")
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) DeleteQuoteHandler(c *gin.Context) {
	if err := h.Service.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Quote not found", "Failed to delete quote")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quote deleted successfully"})
}

// ConvertQuoteHandler handles POST /api/quotes/:id/convert. The body is
// optional and may carry {"dueDate": "YYYY-MM-DD"}.
func (h *QuoteHandler) ConvertQuoteHandler(c *gin.Context) {
	var body struct {
		DueDate string `json:"dueDate"`
	}
	if !bindJSON(c, &body, true) {
		return
	}
	inv, err := h.Service.ConvertQuote(c.Request.Context(), c.Param("id"), body.DueDate)
	if err != nil {
		respondError(c, err, "Quote not found", "Failed to convert quote to invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *QuoteHandler) QuoteDocumentHandler(c *gin.Context) {
	ctx := c.Request.Context()
	q, err := h.Service.GetQuote(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "Quote not found", "Failed to generate quote PDF")
		return
	}
	cfg, err := h.Business.ConfigForRender(ctx)
	if err != nil {
		respondError(c, err, "", "Failed to generate quote PDF")
		return
	}
	html, err := render.Document(render.FromQuote(q), cfg)
	if err != nil {
		respondError(c, err, "", "Failed to generate quote PDF")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
