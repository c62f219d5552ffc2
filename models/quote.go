package models

import "time"

// Quote is an estimate that may later be converted into an invoice.
type Quote struct {
	ID                 string      `bson:"id" json:"id"`
	Number             string      `bson:"number" json:"number"`
	Date               string      `bson:"date" json:"date"`
	ValidUntil         string      `bson:"validUntil" json:"validUntil"`
	ClientName         string      `bson:"clientName" json:"clientName"`
	ClientEmail        string      `bson:"clientEmail" json:"clientEmail"`
	VehicleInformation VehicleInfo `bson:"vehicleInformation" json:"vehicleInformation"`
	Items              []LineItem  `bson:"items" json:"items"`
	Total              float64     `bson:"total" json:"total"`
	Status             QuoteStatus `bson:"status" json:"status"`
	CreatedAt          time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// QuoteInput is the client-submitted body for create and update.
type QuoteInput struct {
	ValidUntil         string       `json:"validUntil"`
	ClientName         string       `json:"clientName"`
	ClientEmail        string       `json:"clientEmail"`
	VehicleInformation *VehicleInfo `json:"vehicleInformation"`
	Items              []LineItem   `json:"items"`
	Total              Amount       `json:"total"`
	Status             QuoteStatus  `json:"status,omitempty"`
}
