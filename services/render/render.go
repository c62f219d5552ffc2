package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"invoicely/models"
	"invoicely/services/pricing"
)

const fallbackBusinessName = "Your Business Name"

//go:embed templates/document.html
var templateFS embed.FS

var documentTemplate = template.Must(
	template.New("document.html").
		Funcs(template.FuncMap{
			"money":    pricing.Format,
			"quantity": formatQuantity,
			"kind":     models.LineItemKind.Label,
		}).
		ParseFS(templateFS, "templates/document.html"),
)

type documentData struct {
	Title           string
	Number          string
	Date            string
	DateLabel       string
	DateValue       string
	IsInvoice       bool
	BusinessName    string
	OwnerName       string
	Address         string
	Locality        string
	Phone           string
	Email           string
	Website         string
	ClientName      string
	ClientEmail     string
	Vehicle         models.VehicleInfo
	ShowVehicle     bool
	Items           []models.LineItem
	Total           float64
	WorkDescription string
}

// Document renders doc as a standalone HTML page meant for the browser's
// print-to-PDF. A nil cfg renders with an empty business profile.
func Document(doc Printable, cfg *models.BusinessConfig) (string, error) {
	if cfg == nil {
		cfg = &models.BusinessConfig{}
	}

	data := documentData{
		Title:        "QUOTE",
		Number:       doc.Number,
		Date:         doc.Date,
		DateLabel:    "Valid Until",
		DateValue:    doc.SecondaryDate,
		IsInvoice:    doc.Kind == KindInvoice,
		BusinessName: cfg.BusinessName,
		OwnerName:    cfg.OwnerName,
		Address:      cfg.Address,
		Locality:     localityLine(cfg.City, cfg.State, cfg.ZipCode),
		Phone:        cfg.Phone,
		Email:        cfg.Email,
		Website:      cfg.Website,
		ClientName:   doc.ClientName,
		ClientEmail:  doc.ClientEmail,
		Vehicle:      doc.Vehicle,
		ShowVehicle:  !doc.Vehicle.IsEmpty(),
		Items:        doc.Items,
		Total:        doc.Total,
	}
	if data.BusinessName == "" {
		data.BusinessName = fallbackBusinessName
	}
	if data.IsInvoice {
		data.Title = "INVOICE"
		data.DateLabel = "Due Date"
		data.WorkDescription = strings.TrimSpace(doc.WorkDescription)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s %s: %w", doc.Kind, doc.Number, err)
	}
	return buf.String(), nil
}

// localityLine formats "City, State Zip"; the comma appears only when both
// city and state are present.
func localityLine(city, state, zip string) string {
	if city == "" && state == "" && zip == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(city)
	if city != "" && state != "" {
		b.WriteString(", ")
	}
	b.WriteString(state)
	if zip != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(zip)
	}
	return b.String()
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
