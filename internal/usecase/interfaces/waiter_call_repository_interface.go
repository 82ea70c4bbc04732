package interfaces

import (
	"context"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// IWaiterCallRepository abstracts DynamoDB persistence for WaiterCall.

type IWaiterCallRepository interface {
	Create(ctx context.Context, c entities.WaiterCall) (entities.WaiterCall, error)
	GetByID(ctx context.Context, id string) (entities.WaiterCall, error)
	ListByStatus(ctx context.Context, status entities.WaiterCallStatus) ([]entities.WaiterCall, error)
	SetStatus(ctx context.Context, id string, status entities.WaiterCallStatus) error
}
