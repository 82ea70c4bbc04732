package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	mock_interfaces "github.com/tino-ryan/restaurant-app/internal/usecase/interfaces/mocks"
)

func settlementOrders() []entities.Order {
	return []entities.Order{
		{
			ID:    "ord-1",
			Table: "5",
			Items: []entities.OrderLine{
				{Name: "Burger", Quantity: 2, Price: 50, Person: "Ana"},
			},
			Status: entities.OrderStatusPending,
		},
		{
			ID:    "ord-2",
			Table: "5",
			Items: []entities.OrderLine{
				{Name: "Coke", Quantity: 1, Price: 15, Person: "Bruno"},
			},
			Status: entities.OrderStatusPending,
		},
	}
}

func TestSettlementUseCase_Validation(t *testing.T) {
	uc := NewSettlementUseCase(nil, nil, nil, nil)

	t.Run("blank table", func(t *testing.T) {
		_, err := uc.Settle(context.Background(), "  ", SettleInput{Rating: 4})
		if !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("expected ErrInvalidTable, got %v", err)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := uc.Settle(context.Background(), "5", SettleInput{Rating: rating})
			if !errors.Is(err, ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
			}
		}
	})

	t.Run("negative tip", func(t *testing.T) {
		_, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 4, Tip: -1})
		if !errors.Is(err, ErrInvalidTip) {
			t.Fatalf("expected ErrInvalidTip, got %v", err)
		}
	})
}

func TestSettlementUseCase_Settle(t *testing.T) {
	t.Run("full settlement completes every pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewSettlementUseCase(orders, reviews, billing, notifier)

		orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).
			Return(settlementOrders(), nil).Times(2)
		reviews.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.ID == "" || r.Table != "5" || r.Rating != 4 || r.Tip != 20 {
					t.Fatalf("unexpected review: %+v", r)
				}
				if r.ReviewNote != "" {
					t.Fatalf("note must be dropped for rating >= 3, got %q", r.ReviewNote)
				}
				return r, nil
			},
		)
		billing.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingFact{})).DoAndReturn(
			func(_ context.Context, f entities.BillingFact) (entities.BillingFact, error) {
				// 2x50 + 1x15 = 115, plus tip 20.
				if f.TotalPaid != 135 {
					t.Fatalf("expected totalPaid 135, got %v", f.TotalPaid)
				}
				if f.Table != "5" || f.SettledAt.IsZero() {
					t.Fatalf("unexpected fact: %+v", f)
				}
				return f, nil
			},
		)
		orders.EXPECT().SetStatus(gomock.Any(), "ord-1", entities.OrderStatusCompleted).Return(nil)
		orders.EXPECT().SetStatus(gomock.Any(), "ord-2", entities.OrderStatusCompleted).Return(nil)
		notifier.EXPECT().TableSettled(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 4, ReviewNote: "great", Tip: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Outcomes) != 2 {
			t.Fatalf("expected 2 outcomes, got %d", len(res.Outcomes))
		}
		for _, o := range res.Outcomes {
			if o.Err != nil {
				t.Fatalf("order %s: unexpected outcome error: %v", o.OrderID, o.Err)
			}
		}
	})

	t.Run("low rating keeps the note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewSettlementUseCase(orders, reviews, billing, nil)

		orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).
			Return(nil, nil).Times(2)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.ReviewNote != "cold food" {
					t.Fatalf("expected note preserved, got %q", r.ReviewNote)
				}
				return r, nil
			},
		)
		billing.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.BillingFact) (entities.BillingFact, error) { return f, nil },
		)

		if _, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 2, ReviewNote: "cold food"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("review write failure aborts before any fact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewSettlementUseCase(orders, reviews, nil, nil)

		orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).Return(nil, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Review{}, errors.New("db"))

		_, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 4})
		if !errors.Is(err, ErrSettlementFailed) {
			t.Fatalf("expected ErrSettlementFailed, got %v", err)
		}
	})

	t.Run("billing write failure aborts with ErrSettlementFailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewSettlementUseCase(orders, reviews, billing, nil)

		orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).Return(nil, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil },
		)
		billing.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingFact{}, errors.New("db"))

		_, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 4})
		if !errors.Is(err, ErrSettlementFailed) {
			t.Fatalf("expected ErrSettlementFailed, got %v", err)
		}
	})

	t.Run("partial transition failure names the failed orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewSettlementUseCase(orders, reviews, billing, nil)

		orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).
			Return(settlementOrders(), nil).Times(2)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil },
		)
		billing.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.BillingFact) (entities.BillingFact, error) { return f, nil },
		)
		orders.EXPECT().SetStatus(gomock.Any(), "ord-1", entities.OrderStatusCompleted).Return(nil)
		orders.EXPECT().SetStatus(gomock.Any(), "ord-2", entities.OrderStatusCompleted).Return(errors.New("conditional check"))

		res, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 4})
		var partial *SettlementPartialError
		if !errors.As(err, &partial) {
			t.Fatalf("expected SettlementPartialError, got %v", err)
		}
		if len(partial.FailedOrderIDs) != 1 || partial.FailedOrderIDs[0] != "ord-2" {
			t.Fatalf("unexpected failed ids: %v", partial.FailedOrderIDs)
		}
		// Facts stay committed even on partial failure.
		if res.BillingFact.Table != "5" {
			t.Fatalf("expected committed billing fact, got %+v", res.BillingFact)
		}
	})

	t.Run("re-query failure after facts is partial with no failed ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewSettlementUseCase(orders, reviews, billing, nil)

		first := orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).Return(nil, nil)
		orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).
			Return(nil, errors.New("timeout")).After(first)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil },
		)
		billing.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.BillingFact) (entities.BillingFact, error) { return f, nil },
		)

		_, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 4})
		var partial *SettlementPartialError
		if !errors.As(err, &partial) {
			t.Fatalf("expected SettlementPartialError, got %v", err)
		}
		if len(partial.FailedOrderIDs) != 0 {
			t.Fatalf("expected no failed ids, got %v", partial.FailedOrderIDs)
		}
	})

	t.Run("already completed order is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		uc := NewSettlementUseCase(orders, reviews, billing, nil)

		completed := settlementOrders()
		completed[0].Status = entities.OrderStatusCompleted

		first := orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).Return(nil, nil)
		orders.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).
			Return(completed, nil).After(first)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil },
		)
		billing.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.BillingFact) (entities.BillingFact, error) { return f, nil },
		)
		// Only the still-open order gets a write.
		orders.EXPECT().SetStatus(gomock.Any(), "ord-2", entities.OrderStatusCompleted).Return(nil)

		res, err := uc.Settle(context.Background(), "5", SettleInput{Rating: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Outcomes) != 2 {
			t.Fatalf("expected outcomes for both orders, got %d", len(res.Outcomes))
		}
	})
}
