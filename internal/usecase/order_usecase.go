package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

var (
	ErrInvalidTable      = errors.New("invalid table")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("line quantity must be at least 1")
	ErrInvalidPrice      = errors.New("line price cannot be negative")
	ErrInvalidLineName   = errors.New("line name is required")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("illegal order status transition")
	ErrOrderNotFound     = errors.New("order not found")
)

// IOrderUseCase is the order lifecycle engine: it creates pending orders and
// is the sole place status-transition legality is enforced. The repository
// below it validates nothing.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, table string, lines []entities.OrderLine) (entities.Order, error)
	Advance(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error)
	ListOrders(ctx context.Context, statusFilter string) ([]entities.Order, error)
	ListPendingForTable(ctx context.Context, table string) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.IChangeNotifier
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, notifier interfaces.IChangeNotifier) *OrderUseCase {
	return &OrderUseCase{repo: repo, notifier: notifier}
}

// PlaceOrder validates the cart and submits a pending order. Validation
// failures are rejected before any store call.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, table string, lines []entities.OrderLine) (entities.Order, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return entities.Order{}, ErrInvalidTable
	}
	if len(lines) == 0 {
		return entities.Order{}, ErrEmptyOrder
	}
	for _, l := range lines {
		if strings.TrimSpace(l.Name) == "" {
			return entities.Order{}, ErrInvalidLineName
		}
		if l.Quantity < 1 {
			return entities.Order{}, ErrInvalidQuantity
		}
		if l.Price < 0 {
			return entities.Order{}, ErrInvalidPrice
		}
	}

	o := entities.Order{
		ID:        uuid.NewString(),
		Table:     table,
		Items:     lines,
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.OrderCreated(ctx, created); err != nil {
			log.Printf("[order][usecase] order-created notify failed order_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

// Advance moves an order one step forward. Only pending -> in-progress and
// in-progress -> completed are legal; everything else is ErrInvalidTransition.
func (u *OrderUseCase) Advance(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !entities.IsValidOrderStatus(target) {
		return entities.Order{}, ErrInvalidStatus
	}

	ord, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if ord.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !advanceAllowed(ord.Status, target) {
		return entities.Order{}, ErrInvalidTransition
	}

	if err := u.repo.SetStatus(ctx, ord.ID, target); err != nil {
		return entities.Order{}, err
	}
	ord.Status = target

	if u.notifier != nil {
		if err := u.notifier.OrderStatusChanged(ctx, ord.ID, target); err != nil {
			log.Printf("[order][usecase] status-changed notify failed order_id=%s err=%v", ord.ID, err)
		}
	}
	return ord, nil
}

// ListOrders returns orders for the staff dashboard, optionally narrowed to a
// single status. "all" or "" means no filter.
func (u *OrderUseCase) ListOrders(ctx context.Context, statusFilter string) ([]entities.Order, error) {
	statusFilter = strings.TrimSpace(statusFilter)
	if statusFilter == "" || statusFilter == "all" {
		return u.repo.ListAll(ctx)
	}
	status := entities.OrderStatus(statusFilter)
	if !entities.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

// ListPendingForTable returns the table's open bill: all pending orders with
// person labels normalized. This is the single normalization point; everything
// downstream (grouping, filtering, totals) sees consistent labels.
func (u *OrderUseCase) ListPendingForTable(ctx context.Context, table string) ([]entities.Order, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, ErrInvalidTable
	}
	orders, err := u.repo.ListByTableAndStatus(ctx, table, entities.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	return entities.NormalizeOrders(orders), nil
}

// advanceAllowed is the transition table for Advance: single forward steps
// only, completed is terminal.
func advanceAllowed(from, to entities.OrderStatus) bool {
	switch {
	case from == entities.OrderStatusPending && to == entities.OrderStatusInProgress:
		return true
	case from == entities.OrderStatusInProgress && to == entities.OrderStatusCompleted:
		return true
	}
	return false
}

// completeForSettlement closes out a single order during settlement. Already
// completed orders are a no-op so a retried partial settlement can re-run the
// transition step safely. Pending and in-progress orders move forward to
// completed (the settlement walk collapses the single steps into one write).
func completeForSettlement(ctx context.Context, repo interfaces.IOrderRepository, ord entities.Order) error {
	switch ord.Status {
	case entities.OrderStatusCompleted:
		return nil
	case entities.OrderStatusPending, entities.OrderStatusInProgress:
		return repo.SetStatus(ctx, ord.ID, entities.OrderStatusCompleted)
	}
	return ErrInvalidTransition
}
