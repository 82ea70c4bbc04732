package entities

import "time"

// BillingFact records what a table actually paid when it was settled.
//
// Storage model (DynamoDB, collection "billing_complete"):
//   - PK: id
//   - GSI1 (table-index): table
//
// Append-only: one fact per settlement action, never mutated. TotalPaid is the
// full-table total plus tip as charged; a retried partial settlement must not
// write a second fact.
type BillingFact struct {
	ID        string    `json:"id"`
	Table     string    `json:"table"`
	TotalPaid float64   `json:"totalPaid"`
	SettledAt time.Time `json:"settledAt"`
}
