package handlers

import (
	"invoicely/services/auth"
	"invoicely/services/business"
	"invoicely/services/diagnostics"
	"invoicely/services/invoice"
	"invoicely/services/quote"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Invoice endpoints
	ListInvoicesHandler        gin.HandlerFunc
	GetInvoiceHandler          gin.HandlerFunc
	CreateInvoiceHandler       gin.HandlerFunc
	UpdateInvoiceHandler       gin.HandlerFunc
	UpdateInvoiceStatusHandler gin.HandlerFunc
	DeleteInvoiceHandler       gin.HandlerFunc
	InvoiceDocumentHandler     gin.HandlerFunc

	// Quote endpoints
	ListQuotesHandler        gin.HandlerFunc
	GetQuoteHandler          gin.HandlerFunc
	CreateQuoteHandler       gin.HandlerFunc
	UpdateQuoteHandler       gin.HandlerFunc
	UpdateQuoteStatusHandler gin.HandlerFunc
	DeleteQuoteHandler       gin.HandlerFunc
	QuoteDocumentHandler     gin.HandlerFunc
	ConvertQuoteHandler      gin.HandlerFunc

	DashboardHandler gin.HandlerFunc

	// Business configuration endpoints
	GetConfigHandler     gin.HandlerFunc
	SaveConfigHandler    gin.HandlerFunc
	LineItemTypesHandler gin.HandlerFunc

	VerifyPasswordHandler gin.HandlerFunc

	AdminHandler *AdminHandler
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	invoices invoice.InvoiceService,
	quotes quote.QuoteService,
	biz business.BusinessService,
	authSvc auth.AuthService,
	diag diagnostics.DiagnosticsService,
) *HandlerBundle {
	ih := NewInvoiceHandler(invoices, biz)
	qh := NewQuoteHandler(quotes, biz)
	dh := NewDashboardHandler(invoices, quotes)
	ch := NewConfigHandler(biz)
	ah := NewAuthHandler(authSvc)

	return &HandlerBundle{
		ListInvoicesHandler:        ih.ListInvoicesHandler,
		GetInvoiceHandler:          ih.GetInvoiceHandler,
		CreateInvoiceHandler:       ih.CreateInvoiceHandler,
		UpdateInvoiceHandler:       ih.UpdateInvoiceHandler,
		UpdateInvoiceStatusHandler: ih.UpdateInvoiceStatusHandler,
		DeleteInvoiceHandler:       ih.DeleteInvoiceHandler,
		InvoiceDocumentHandler:     ih.InvoiceDocumentHandler,

		ListQuotesHandler:        qh.ListQuotesHandler,
		GetQuoteHandler:          qh.GetQuoteHandler,
		CreateQuoteHandler:       qh.CreateQuoteHandler,
		UpdateQuoteHandler:       qh.UpdateQuoteHandler,
		UpdateQuoteStatusHandler: qh.UpdateQuoteStatusHandler,
		DeleteQuoteHandler:       qh.DeleteQuoteHandler,
		QuoteDocumentHandler:     qh.QuoteDocumentHandler,
		ConvertQuoteHandler:      qh.ConvertQuoteHandler,

		DashboardHandler: dh.DashboardHandler,

		GetConfigHandler:     ch.GetConfigHandler,
		SaveConfigHandler:    ch.SaveConfigHandler,
		LineItemTypesHandler: LineItemTypesHandler,

		VerifyPasswordHandler: ah.VerifyPasswordHandler,

		AdminHandler: NewAdminHandler(diag),
	}
}
