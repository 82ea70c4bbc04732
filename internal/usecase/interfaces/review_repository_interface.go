package interfaces

import (
	"context"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review facts.
//
// Reviews are append-only; the interface deliberately has no update or delete.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByTable(ctx context.Context, table string) ([]entities.Review, error)
}
