package entities

import "time"

// MenuItem is a dish offered to customers.
//
// Storage model (DynamoDB, collection "menu"):
//   - PK: id
//
// Items are archived (Active=false) rather than deleted so historical orders
// keep their names meaningful. ImageURL points at the external image host.
// MenuItemUpdate carries the editable fields of a MenuItem. Nil pointers mean
// "leave unchanged"; Active and CreatedAt are managed elsewhere.
type MenuItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Allergens   *string  `json:"allergens,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Allergens   string    `json:"allergens,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}
