package request

import (
	"strconv"
	"strings"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// OrderLineRequest mirrors a cart line. Validation (quantity, name) belongs to
// the order use case so API and any future callers share one rule set.
type OrderLineRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
	Person   string  `json:"person"`
}

// PlaceOrderRequest is the customer checkout payload.
type PlaceOrderRequest struct {
	Table string             `json:"table"`
	Items []OrderLineRequest `json:"items"`
}

func (r PlaceOrderRequest) ToLines() []entities.OrderLine {
	lines := make([]entities.OrderLine, len(r.Items))
	for i, it := range r.Items {
		lines[i] = entities.OrderLine{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Notes:    it.Notes,
			Person:   it.Person,
		}
	}
	return lines
}

// StaffOrderRequest is the staff "quick create" form: one plain-text line per
// item, "Burger x2 | no onions" style.
type StaffOrderRequest struct {
	Table     string `json:"table"`
	ItemsText string `json:"itemsText"`
}

// ParseLines turns the text block into order lines. A line without an "xN"
// suffix gets quantity 1; text after "|" becomes the notes. Prices are not
// part of the quick form and default to 0.
func (r StaffOrderRequest) ParseLines() []entities.OrderLine {
	var lines []entities.OrderLine
	for _, raw := range strings.Split(r.ItemsText, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		itemPart := raw
		notes := ""
		if idx := strings.Index(raw, "|"); idx >= 0 {
			itemPart = strings.TrimSpace(raw[:idx])
			notes = strings.TrimSpace(raw[idx+1:])
		}

		name := itemPart
		quantity := 1
		if idx := strings.LastIndex(itemPart, "x"); idx > 0 {
			if qty, err := strconv.Atoi(strings.TrimSpace(itemPart[idx+1:])); err == nil && qty >= 1 {
				name = strings.TrimSpace(itemPart[:idx])
				quantity = qty
			}
		}

		lines = append(lines, entities.OrderLine{
			Name:     name,
			Quantity: quantity,
			Notes:    notes,
		})
	}
	return lines
}

// AdvanceOrderRequest is the staff status-change payload.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}
