package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"invoicely/models"
	"invoicely/services/invoice"
	"invoicely/services/quote"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = models.WrapStore("find", errors.New("server selection timeout"))

// brokenInvoices fails every call with a store error.
type brokenInvoices struct{ invoice.InvoiceService }

func (brokenInvoices) ListInvoices(context.Context) ([]models.Invoice, error) { return nil, errStore }
func (brokenInvoices) GetInvoice(context.Context, string) (*models.Invoice, error) {
	return nil, errStore
}
func (brokenInvoices) DeleteInvoice(context.Context, string) error { return errStore }

type okQuotes struct{ quote.QuoteService }

func (okQuotes) ListQuotes(context.Context) ([]models.Quote, error) { return []models.Quote{}, nil }

func serve(h gin.HandlerFunc, method, path, route, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, route, h)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestStoreFailuresHideDetails(t *testing.T) {
	ih := NewInvoiceHandler(brokenInvoices{}, nil)

	cases := []struct {
		name          string
		handler       gin.HandlerFunc
		method, route string
		path, want    string
	}{
		{"list", ih.ListInvoicesHandler, http.MethodGet, "/api/invoices", "/api/invoices", "Failed to fetch invoices"},
		{"get", ih.GetInvoiceHandler, http.MethodGet, "/api/invoices/:id", "/api/invoices/x", "Failed to fetch invoice"},
		{"delete", ih.DeleteInvoiceHandler, http.MethodDelete, "/api/invoices/:id", "/api/invoices/x", "Failed to delete invoice"},
		{"pdf", ih.InvoiceDocumentHandler, http.MethodGet, "/api/invoices/:id/pdf", "/api/invoices/x/pdf", "Failed to generate invoice PDF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(tc.handler, tc.method, tc.path, tc.route, "")
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tc.want, errorBody(t, w))
			assert.NotContains(t, w.Body.String(), "server selection")
		})
	}
}

func TestDashboardFailsWhenEitherListFails(t *testing.T) {
	dh := NewDashboardHandler(brokenInvoices{}, okQuotes{})

	w := serve(dh.DashboardHandler, http.MethodGet, "/api/dashboard", "/api/dashboard", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch dashboard data", errorBody(t, w))
}

func TestConvertRejectsMalformedBody(t *testing.T) {
	qh := NewQuoteHandler(okQuotes{}, nil)

	w := serve(qh.ConvertQuoteHandler, http.MethodPost, "/api/quotes/q/convert", "/api/quotes/:id/convert", "{bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
