package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	mock_interfaces "github.com/tino-ryan/restaurant-app/internal/usecase/interfaces/mocks"
)

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	validLines := []entities.OrderLine{
		{Name: "Burger", Quantity: 2, Price: 50, Person: "Ana"},
	}

	t.Run("invalid table", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "   ", validLines)
		if !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("expected ErrInvalidTable, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "5", nil)
		if !errors.Is(err, ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "5", []entities.OrderLine{{Name: "Burger", Quantity: 0, Price: 50}})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "5", []entities.OrderLine{{Name: "Burger", Quantity: 1, Price: -1}})
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("blank line name", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "5", []entities.OrderLine{{Name: "  ", Quantity: 1, Price: 10}})
		if !errors.Is(err, ErrInvalidLineName) {
			t.Fatalf("expected ErrInvalidLineName, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.Table != "5" || o.Status != entities.OrderStatusPending {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return o, nil
			},
		)
		notifier.EXPECT().OrderCreated(gomock.Any(), gomock.Any()).Return(nil)

		created, err := uc.PlaceOrder(context.Background(), " 5 ", validLines)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("notify failure does not fail the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewOrderUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		notifier.EXPECT().OrderCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		if _, err := uc.PlaceOrder(context.Background(), "5", validLines); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.PlaceOrder(context.Background(), "5", validLines)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_Advance(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.Advance(context.Background(), "ord-1", "shipped")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.Advance(context.Background(), "missing", entities.OrderStatusInProgress)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("legal single steps", func(t *testing.T) {
		steps := []struct {
			from, to entities.OrderStatus
		}{
			{entities.OrderStatusPending, entities.OrderStatusInProgress},
			{entities.OrderStatusInProgress, entities.OrderStatusCompleted},
		}
		for _, s := range steps {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: s.from}, nil)
			repo.EXPECT().SetStatus(gomock.Any(), "ord-1", s.to).Return(nil)

			got, err := uc.Advance(context.Background(), "ord-1", s.to)
			if err != nil {
				t.Fatalf("%s -> %s: unexpected error: %v", s.from, s.to, err)
			}
			if got.Status != s.to {
				t.Fatalf("expected %s, got %s", s.to, got.Status)
			}
			ctrl.Finish()
		}
	})

	t.Run("illegal transitions", func(t *testing.T) {
		illegal := []struct {
			from, to entities.OrderStatus
		}{
			{entities.OrderStatusPending, entities.OrderStatusCompleted},
			{entities.OrderStatusPending, entities.OrderStatusPending},
			{entities.OrderStatusInProgress, entities.OrderStatusPending},
			{entities.OrderStatusCompleted, entities.OrderStatusPending},
			{entities.OrderStatusCompleted, entities.OrderStatusInProgress},
			{entities.OrderStatusCompleted, entities.OrderStatusCompleted},
		}
		for _, s := range illegal {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: s.from}, nil)

			_, err := uc.Advance(context.Background(), "ord-1", s.to)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", s.from, s.to, err)
			}
			ctrl.Finish()
		}
	})
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	t.Run("all filter lists everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{{ID: "ord-1"}}, nil).Times(2)

		for _, filter := range []string{"", "all"} {
			got, err := uc.ListOrders(context.Background(), filter)
			if err != nil {
				t.Fatalf("filter %q: unexpected error: %v", filter, err)
			}
			if len(got) != 1 {
				t.Fatalf("filter %q: expected 1 order, got %d", filter, len(got))
			}
		}
	})

	t.Run("status filter queries by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusPending).Return(nil, nil)

		if _, err := uc.ListOrders(context.Background(), "pending"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown filter", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.ListOrders(context.Background(), "shipped")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestOrderUseCase_ListPendingForTable(t *testing.T) {
	t.Run("normalizes person labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListByTableAndStatus(gomock.Any(), "5", entities.OrderStatusPending).Return([]entities.Order{
			{ID: "ord-1", Items: []entities.OrderLine{{Name: "Coke", Quantity: 1, Price: 15, Person: "  "}}},
		}, nil)

		got, err := uc.ListPendingForTable(context.Background(), "5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].Items[0].Person != entities.AnonymousPerson {
			t.Fatalf("expected anonymous label, got %q", got[0].Items[0].Person)
		}
	})

	t.Run("invalid table", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if _, err := uc.ListPendingForTable(context.Background(), ""); !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("expected ErrInvalidTable, got %v", err)
		}
	})
}
