package response

import (
	"time"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

type OrderLineResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
	Person   string  `json:"person"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	Table     string              `json:"table"`
	Items     []OrderLineResponse `json:"items"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, OrderLineResponse{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
			Notes:    l.Notes,
			Person:   l.Person,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		Table:     o.Table,
		Items:     items,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
