package models

import "time"

// BusinessConfig is the singleton shop profile printed on every document.
type BusinessConfig struct {
	BusinessName string    `bson:"businessName" json:"businessName"`
	OwnerName    string    `bson:"ownerName" json:"ownerName"`
	Address      string    `bson:"address" json:"address"`
	City         string    `bson:"city" json:"city"`
	State        string    `bson:"state" json:"state"`
	ZipCode      string    `bson:"zipCode" json:"zipCode"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	HourlyRate   float64   `bson:"hourlyRate" json:"hourlyRate"`
	Website      string    `bson:"website" json:"website"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BusinessConfigPatch carries only the fields a client sent; nil means
// "leave as is".
type BusinessConfigPatch struct {
	BusinessName *string `json:"businessName"`
	OwnerName    *string `json:"ownerName"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zipCode"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	HourlyRate   *Amount `json:"hourlyRate"`
	Website      *string `json:"website"`
}

// Fields returns the patched values keyed by their stored field name.
func (p BusinessConfigPatch) Fields() map[string]any {
	out := map[string]any{}
	str := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	str("businessName", p.BusinessName)
	str("ownerName", p.OwnerName)
	str("address", p.Address)
	str("city", p.City)
	str("state", p.State)
	str("zipCode", p.ZipCode)
	str("phone", p.Phone)
	str("email", p.Email)
	str("website", p.Website)
	if p.HourlyRate != nil {
		out["hourlyRate"] = p.HourlyRate.Float64()
	}
	return out
}

// Apply merges the patch into c.
func (p BusinessConfigPatch) Apply(c *BusinessConfig) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&c.BusinessName, p.BusinessName)
	set(&c.OwnerName, p.OwnerName)
	set(&c.Address, p.Address)
	set(&c.City, p.City)
	set(&c.State, p.State)
	set(&c.ZipCode, p.ZipCode)
	set(&c.Phone, p.Phone)
	set(&c.Email, p.Email)
	set(&c.Website, p.Website)
	if p.HourlyRate != nil {
		c.HourlyRate = p.HourlyRate.Float64()
	}
}

// DefaultBusinessConfigFields are the values a freshly created config holds.
func DefaultBusinessConfigFields() map[string]any {
	return map[string]any{
		"businessName": "",
		"ownerName":    "",
		"address":      "",
		"city":         "",
		"state":        "",
		"zipCode":      "",
		"phone":        "",
		"email":        "",
		"hourlyRate":   0.0,
		"website":      "",
	}
}
