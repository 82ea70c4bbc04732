package interfaces

import (
	"context"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The repository performs no status-transition validation; it is a plain
// create/query/update surface over the "order" collection. Reads filter with
// equality predicates on table and status only.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByTableAndStatus(ctx context.Context, table string, status entities.OrderStatus) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	SetStatus(ctx context.Context, id string, status entities.OrderStatus) error
}
