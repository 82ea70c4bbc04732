package request

import "github.com/tino-ryan/restaurant-app/internal/domain/entities"

// MenuItemUpdateRequest carries partial edits; absent fields stay unchanged.
type MenuItemUpdateRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Allergens   *string  `json:"allergens"`
	ImageURL    *string  `json:"imageUrl"`
}

func (r MenuItemUpdateRequest) ToUpdate() entities.MenuItemUpdate {
	return entities.MenuItemUpdate{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
		Allergens:   r.Allergens,
		ImageURL:    r.ImageURL,
	}
}
