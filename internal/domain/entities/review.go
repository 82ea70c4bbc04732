package entities

import "time"

// Review is the customer feedback fact recorded at settlement.
//
// Storage model (DynamoDB, collection "reviews"):
//   - PK: id
//   - GSI1 (table-index): table
//
// Reviews are append-only: written once per settlement, never mutated or
// deleted. ReviewNote is only meaningful when Rating < 3; settlement discards
// it otherwise so the stored fact matches what the customer was asked.
type Review struct {
	ID         string    `json:"id"`
	Table      string    `json:"table"`
	Rating     int       `json:"rating"`
	ReviewNote string    `json:"reviewNote"`
	Tip        float64   `json:"tip"`
	Timestamp  time.Time `json:"timestamp"`
}
