package models

import "time"

// DiagnosticRecord is an entry in the free-form key/value collection used to
// check that the store accepts writes.
type DiagnosticRecord struct {
	Key       string         `bson:"key" json:"key"`
	Value     map[string]any `bson:"value" json:"value"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
