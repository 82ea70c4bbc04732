package interfaces

import (
	"context"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// IMenuRepository abstracts DynamoDB persistence for MenuItem.
//
// Archived items remain queryable (ListAll) so staff can restore them.

type IMenuRepository interface {
	Create(ctx context.Context, m entities.MenuItem) (entities.MenuItem, error)
	GetByID(ctx context.Context, id string) (entities.MenuItem, error)
	ListActive(ctx context.Context) ([]entities.MenuItem, error)
	ListAll(ctx context.Context) ([]entities.MenuItem, error)
	Update(ctx context.Context, id string, fields entities.MenuItemUpdate) (entities.MenuItem, error)
	SetActive(ctx context.Context, id string, active bool) error
}
