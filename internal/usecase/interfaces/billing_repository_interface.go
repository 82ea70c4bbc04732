package interfaces

import (
	"context"
	"time"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// IBillingRepository abstracts DynamoDB persistence for BillingFact records.
//
// Append-only, like reviews. The range listing feeds the insights screens
// (today's sales, monthly revenue, busiest hours).

type IBillingRepository interface {
	Create(ctx context.Context, f entities.BillingFact) (entities.BillingFact, error)
	ListBySettledRange(ctx context.Context, from, to time.Time) ([]entities.BillingFact, error)
	ListAll(ctx context.Context) ([]entities.BillingFact, error)
}
