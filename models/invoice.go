package models

import "time"

// Invoice is a billed document. Date and DueDate are calendar dates (YYYY-MM-DD).
type Invoice struct {
	ID                 string        `bson:"id" json:"id"`
	Number             string        `bson:"number" json:"number"`
	Date               string        `bson:"date" json:"date"`
	DueDate            string        `bson:"dueDate" json:"dueDate"`
	ClientName         string        `bson:"clientName" json:"clientName"`
	ClientEmail        string        `bson:"clientEmail" json:"clientEmail"`
	VehicleInformation VehicleInfo   `bson:"vehicleInformation" json:"vehicleInformation"`
	Items              []LineItem    `bson:"items" json:"items"`
	WorkDescription    string        `bson:"workDescription" json:"workDescription"`
	Total              float64       `bson:"total" json:"total"`
	Status             InvoiceStatus `bson:"status" json:"status"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// InvoiceInput is the client-submitted body for create and update.
type InvoiceInput struct {
	DueDate            string        `json:"dueDate"`
	ClientName         string        `json:"clientName"`
	ClientEmail        string        `json:"clientEmail"`
	VehicleInformation *VehicleInfo  `json:"vehicleInformation"`
	Items              []LineItem    `json:"items"`
	WorkDescription    string        `json:"workDescription"`
	Total              Amount        `json:"total"`
	Status             InvoiceStatus `json:"status,omitempty"` // honoured on update only
}
