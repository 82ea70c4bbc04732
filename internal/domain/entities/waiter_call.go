package entities

import "time"

// WaiterCallStatus is the two-state lifecycle of a waiter request.

type WaiterCallStatus string

const (
	WaiterCallStatusPending WaiterCallStatus = "pending"
	WaiterCallStatusHandled WaiterCallStatus = "handled"
)

// WaiterCall is a customer's request for staff attention.
//
// Storage model (DynamoDB, collection "waiter_calls"):
//   - PK: id
//
// Independent of the order lifecycle; mutated exactly once, pending -> handled.
type WaiterCall struct {
	ID        string           `json:"id"`
	Table     string           `json:"table"`
	Timestamp time.Time        `json:"timestamp"`
	Status    WaiterCallStatus `json:"status"`
}
