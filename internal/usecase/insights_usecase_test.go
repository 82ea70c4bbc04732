package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	mock_interfaces "github.com/tino-ryan/restaurant-app/internal/usecase/interfaces/mocks"
)

func TestInsightsUseCase_Overview(t *testing.T) {
	fixedNow := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	t.Run("aggregates facts and completed orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewInsightsUseCase(billing, orders)
		uc.now = func() time.Time { return fixedNow }

		dayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
		dayEnd := dayStart.AddDate(0, 0, 1)

		todayFacts := []entities.BillingFact{
			{ID: "b-1", Table: "5", TotalPaid: 135, SettledAt: fixedNow.Add(-2 * time.Hour)},
			{ID: "b-2", Table: "5", TotalPaid: 60, SettledAt: fixedNow.Add(-1 * time.Hour)},
			{ID: "b-3", Table: "2", TotalPaid: 40, SettledAt: fixedNow.Add(-30 * time.Minute)},
		}
		allFacts := append(todayFacts, entities.BillingFact{
			ID: "b-0", Table: "5", TotalPaid: 100,
			SettledAt: time.Date(2025, time.February, 3, 19, 0, 0, 0, time.UTC),
		})

		billing.EXPECT().ListBySettledRange(gomock.Any(), dayStart, dayEnd).Return(todayFacts, nil)
		billing.EXPECT().ListAll(gomock.Any()).Return(allFacts, nil)
		orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusCompleted).Return([]entities.Order{
			{ID: "ord-1", Items: []entities.OrderLine{
				{Name: "Burger", Quantity: 2, Price: 50},
				{Name: "Coke", Quantity: 1, Price: 15},
			}},
			{ID: "ord-2", Items: []entities.OrderLine{
				{Name: "Coke", Quantity: 4, Price: 15},
			}},
		}, nil)

		ov, err := uc.Overview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ov.TodaySales != 235 {
			t.Fatalf("expected today sales 235, got %v", ov.TodaySales)
		}
		if ov.TablesToday != 2 {
			t.Fatalf("expected 2 distinct tables, got %d", ov.TablesToday)
		}
		if len(ov.PopularItems) != 2 || ov.PopularItems[0].Name != "Coke" || ov.PopularItems[0].Quantity != 5 {
			t.Fatalf("unexpected popular items: %+v", ov.PopularItems)
		}
		if len(ov.Monthly) != 2 || ov.Monthly[0].Month != "2025-02" || ov.Monthly[1].Total != 235 {
			t.Fatalf("unexpected monthly revenue: %+v", ov.Monthly)
		}
		if len(ov.BusiestHours) != 24 {
			t.Fatalf("expected 24 hour buckets, got %d", len(ov.BusiestHours))
		}
		if ov.BusiestHours[13].Count != 1 || ov.BusiestHours[14].Count != 1 {
			t.Fatalf("unexpected hour buckets: %+v", ov.BusiestHours[12:15])
		}
	})

	t.Run("popularity ties break alphabetically", func(t *testing.T) {
		got := popularItems([]entities.Order{
			{Items: []entities.OrderLine{
				{Name: "Tea", Quantity: 3},
				{Name: "Coffee", Quantity: 3},
			}},
		})
		if got[0].Name != "Coffee" || got[1].Name != "Tea" {
			t.Fatalf("unexpected tie order: %+v", got)
		}
	})

	t.Run("billing error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		billing := mock_interfaces.NewMockIBillingRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewInsightsUseCase(billing, orders)
		uc.now = func() time.Time { return fixedNow }

		billing.EXPECT().ListBySettledRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db"))

		if _, err := uc.Overview(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
