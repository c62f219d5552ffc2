package handlers

import (
	"net/http"

	"invoicely/models"
	"invoicely/services/invoice"
	"invoicely/services/quote"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type DashboardHandler struct {
	Invoices invoice.InvoiceService
	Quotes   quote.QuoteService
}

func NewDashboardHandler(invoices invoice.InvoiceService, quotes quote.QuoteService) *DashboardHandler {
	return &DashboardHandler{Invoices: invoices, Quotes: quotes}
}

// DashboardHandler handles GET /api/dashboard, loading both lists concurrently.
func (h *DashboardHandler) DashboardHandler(c *gin.Context) {
	g, ctx := errgroup.WithContext(c.Request.Context())

	var (
		invoices []models.Invoice
		quotes   []models.Quote
	)
	g.Go(func() error {
		var err error
		invoices, err = h.Invoices.ListInvoices(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = h.Quotes.ListQuotes(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(c, err, "", "Failed to fetch dashboard data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "quotes": quotes})
}
