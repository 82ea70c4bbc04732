package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidTip       = errors.New("tip cannot be negative")
	ErrSettlementFailed = errors.New("settlement failed before any order was completed")
)

// SettlementPartialError reports that the review and billing facts were
// committed but some order transitions failed. The facts are NOT rolled back;
// they describe what was charged. A retry must re-attempt only the failed
// transitions (orders the retry finds still pending), never re-write the
// facts.
type SettlementPartialError struct {
	FailedOrderIDs []string
	cause          error
}

func (e *SettlementPartialError) Error() string {
	return fmt.Sprintf("settlement partial: facts committed but %d order transition(s) failed (%s)",
		len(e.FailedOrderIDs), strings.Join(e.FailedOrderIDs, ", "))
}

func (e *SettlementPartialError) Unwrap() error { return e.cause }

// TransitionOutcome is the per-order result of the settlement completion walk.
type TransitionOutcome struct {
	OrderID string
	Err     error
}

// SettlementResult is the two-phase outcome: the committed facts plus the
// per-order transition outcomes. Callers must inspect both halves; a boolean
// would hide partial success.
type SettlementResult struct {
	Review      entities.Review
	BillingFact entities.BillingFact
	Outcomes    []TransitionOutcome
}

// SettleInput carries the settlement form. ReviewNote is kept only when
// Rating < 3, matching what the customer was actually asked.
type SettleInput struct {
	Rating     int
	ReviewNote string
	Tip        float64
}

// ISettlementUseCase closes out a table: review fact, billing fact, then all
// pending orders completed.
type ISettlementUseCase interface {
	Settle(ctx context.Context, table string, in SettleInput) (SettlementResult, error)
}

type SettlementUseCase struct {
	orders   interfaces.IOrderRepository
	reviews  interfaces.IReviewRepository
	billing  interfaces.IBillingRepository
	notifier interfaces.IChangeNotifier
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	orders interfaces.IOrderRepository,
	reviews interfaces.IReviewRepository,
	billing interfaces.IBillingRepository,
	notifier interfaces.IChangeNotifier,
) *SettlementUseCase {
	return &SettlementUseCase{orders: orders, reviews: reviews, billing: billing, notifier: notifier}
}

// Settle runs the settlement workflow:
//
//  1. compute the full-table total over the current pending set (always the
//     unfiltered view, regardless of any person filter last shown),
//  2. append the Review fact,
//  3. append the BillingFact with totalPaid = total + tip,
//  4. re-query pending orders (a fresh read, to catch anything submitted after
//     the bill was rendered) and complete each one.
//
// If step 2 or 3 fails nothing is committed to order status and the error is
// ErrSettlementFailed. If step 4 partially fails the facts stay committed and
// the error is *SettlementPartialError naming the failed order ids; orders it
// names stay pending and are caught by the next settlement attempt.
//
// The re-query-then-update-loop is not atomic across clients. An order placed
// between the re-query and the loop finishing stays pending; one already
// completed by concurrent staff action no-ops. Both are accepted outcomes.
func (u *SettlementUseCase) Settle(ctx context.Context, table string, in SettleInput) (SettlementResult, error) {
	log.Printf("[settlement][usecase] settle start table=%q rating=%d tip=%.2f", table, in.Rating, in.Tip)
	table = strings.TrimSpace(table)
	if table == "" {
		return SettlementResult{}, ErrInvalidTable
	}
	if in.Rating < 1 || in.Rating > 5 {
		return SettlementResult{}, ErrInvalidRating
	}
	if in.Tip < 0 {
		return SettlementResult{}, ErrInvalidTip
	}

	billed, err := u.orders.ListByTableAndStatus(ctx, table, entities.OrderStatusPending)
	if err != nil {
		log.Printf("[settlement][usecase] bill read failed table=%s err=%v", table, err)
		return SettlementResult{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}
	total := Total(entities.NormalizeOrders(billed))
	log.Printf("[settlement][usecase] bill computed table=%s orders=%d total=%.2f", table, len(billed), total)

	now := time.Now().UTC()
	note := ""
	if in.Rating < 3 {
		note = in.ReviewNote
	}
	review, err := u.reviews.Create(ctx, entities.Review{
		ID:         uuid.NewString(),
		Table:      table,
		Rating:     in.Rating,
		ReviewNote: note,
		Tip:        in.Tip,
		Timestamp:  now,
	})
	if err != nil {
		log.Printf("[settlement][usecase] review write failed table=%s err=%v", table, err)
		return SettlementResult{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	fact, err := u.billing.Create(ctx, entities.BillingFact{
		ID:        uuid.NewString(),
		Table:     table,
		TotalPaid: total + in.Tip,
		SettledAt: now,
	})
	if err != nil {
		log.Printf("[settlement][usecase] billing fact write failed table=%s err=%v", table, err)
		return SettlementResult{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}
	log.Printf("[settlement][usecase] facts committed table=%s total_paid=%.2f", table, fact.TotalPaid)

	result := SettlementResult{Review: review, BillingFact: fact}

	// Fresh read, not the list used for the total: late orders belong to this
	// settlement too.
	pending, err := u.orders.ListByTableAndStatus(ctx, table, entities.OrderStatusPending)
	if err != nil {
		log.Printf("[settlement][usecase] re-query failed table=%s err=%v", table, err)
		return result, &SettlementPartialError{cause: err}
	}

	var failed []string
	for _, ord := range pending {
		outcome := TransitionOutcome{OrderID: ord.ID}
		if err := completeForSettlement(ctx, u.orders, ord); err != nil {
			log.Printf("[settlement][usecase] order completion failed table=%s order_id=%s err=%v", table, ord.ID, err)
			outcome.Err = err
			failed = append(failed, ord.ID)
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	if len(failed) > 0 {
		return result, &SettlementPartialError{FailedOrderIDs: failed}
	}

	if u.notifier != nil {
		if err := u.notifier.TableSettled(ctx, fact); err != nil {
			log.Printf("[settlement][usecase] settled notify failed table=%s err=%v", table, err)
		}
	}
	log.Printf("[settlement][usecase] settle success table=%s orders_completed=%d", table, len(result.Outcomes))
	return result, nil
}
