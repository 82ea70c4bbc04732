package response

import (
	"math"

	"github.com/tino-ryan/restaurant-app/internal/usecase"
)

type BillResponse struct {
	Table     string          `json:"table"`
	Person    string          `json:"person"`
	Persons   []string        `json:"persons"`
	Orders    []OrderResponse `json:"orders"`
	Total     float64         `json:"total"`
	PerPerson float64         `json:"perPerson,omitempty"`
}

// round2 rounds for display only; amounts are accumulated at full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func FromBillView(b usecase.BillView) BillResponse {
	return BillResponse{
		Table:     b.Table,
		Person:    b.Person,
		Persons:   b.Persons,
		Orders:    FromOrders(b.Orders),
		Total:     round2(b.Total),
		PerPerson: round2(b.PerPerson),
	}
}
