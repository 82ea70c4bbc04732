package interfaces

import (
	"context"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// IChangeNotifier publishes change events so staff screens can refresh without
// polling. Delivery is best-effort: use cases log publish failures and carry
// on, since the store remains the source of truth.

type IChangeNotifier interface {
	OrderCreated(ctx context.Context, o entities.Order) error
	OrderStatusChanged(ctx context.Context, orderID string, status entities.OrderStatus) error
	WaiterCalled(ctx context.Context, c entities.WaiterCall) error
	TableSettled(ctx context.Context, f entities.BillingFact) error
}
