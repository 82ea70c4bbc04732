package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the kitchen-side lifecycle of an order.
//
// Transitions are monotonic: pending -> in-progress -> completed. Completed is
// terminal. Legality is enforced in the order use case, never in the
// repository.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// AnonymousPerson is the label substituted for lines placed without a name.
const AnonymousPerson = "Anonymous"

// OrderLine is a single cart line inside an order.
//
// Person is optional at the edge; NormalizeLines substitutes AnonymousPerson
// exactly once when orders are read for billing, so all downstream grouping
// and filtering sees a consistent label.
type OrderLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
	Person   string  `json:"person,omitempty"`
}

// Order is the unit of work the kitchen sees and the unit the bill aggregates.
//
// Storage model (DynamoDB, collection "order"):
//   - PK: id
//   - GSI1 (table-index): table
//
// Table and CreatedAt are immutable after creation; only Status is ever
// updated. Orders are never deleted.
type Order struct {
	ID        string      `json:"id"`
	Table     string      `json:"table"`
	Items     []OrderLine `json:"items"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// orderStatusRank orders statuses along the lifecycle so monotonicity checks
// do not depend on string comparison.
func orderStatusRank(s OrderStatus) int {
	switch s {
	case OrderStatusPending:
		return 0
	case OrderStatusInProgress:
		return 1
	case OrderStatusCompleted:
		return 2
	}
	return -1
}

// IsValidOrderStatus reports whether s is one of the known lifecycle states.
func IsValidOrderStatus(s OrderStatus) bool {
	return orderStatusRank(s) >= 0
}

// StatusPrecedes reports whether from comes strictly before to in the
// lifecycle. It does not decide legality of a transition by itself; the order
// use case restricts advances to single forward steps, while settlement walks
// the chain forward to completed.
func StatusPrecedes(from, to OrderStatus) bool {
	fr, tr := orderStatusRank(from), orderStatusRank(to)
	return fr >= 0 && tr >= 0 && fr < tr
}

// NormalizeLines returns a copy of lines with blank person labels replaced by
// AnonymousPerson. The input is never mutated; orders read from the store are
// treated as immutable snapshots.
func NormalizeLines(lines []OrderLine) []OrderLine {
	out := make([]OrderLine, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l.Person) == "" {
			l.Person = AnonymousPerson
		}
		out[i] = l
	}
	return out
}

// NormalizeOrder returns ord with its lines normalized via NormalizeLines.
func NormalizeOrder(ord Order) Order {
	ord.Items = NormalizeLines(ord.Items)
	return ord
}

// NormalizeOrders applies NormalizeOrder to every order in a fresh slice.
func NormalizeOrders(orders []Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = NormalizeOrder(o)
	}
	return out
}
