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
	ErrWaiterCallNotFound       = errors.New("waiter call not found")
	ErrWaiterCallAlreadyHandled = errors.New("waiter call already handled")
)

// IWaiterCallUseCase covers the call-a-waiter flow: customers raise a call,
// staff see the pending queue and mark calls handled. pending -> handled is
// the only transition.

type IWaiterCallUseCase interface {
	CallWaiter(ctx context.Context, table string) (entities.WaiterCall, error)
	ListPending(ctx context.Context) ([]entities.WaiterCall, error)
	MarkHandled(ctx context.Context, id string) (entities.WaiterCall, error)
}

type WaiterCallUseCase struct {
	repo     interfaces.IWaiterCallRepository
	notifier interfaces.IChangeNotifier
}

var _ IWaiterCallUseCase = (*WaiterCallUseCase)(nil)

func NewWaiterCallUseCase(repo interfaces.IWaiterCallRepository, notifier interfaces.IChangeNotifier) *WaiterCallUseCase {
	return &WaiterCallUseCase{repo: repo, notifier: notifier}
}

func (u *WaiterCallUseCase) CallWaiter(ctx context.Context, table string) (entities.WaiterCall, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return entities.WaiterCall{}, ErrInvalidTable
	}

	call := entities.WaiterCall{
		ID:        uuid.NewString(),
		Table:     table,
		Timestamp: time.Now().UTC(),
		Status:    entities.WaiterCallStatusPending,
	}
	created, err := u.repo.Create(ctx, call)
	if err != nil {
		return entities.WaiterCall{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.WaiterCalled(ctx, created); err != nil {
			log.Printf("[waiter][usecase] waiter-called notify failed call_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (u *WaiterCallUseCase) ListPending(ctx context.Context) ([]entities.WaiterCall, error) {
	return u.repo.ListByStatus(ctx, entities.WaiterCallStatusPending)
}

func (u *WaiterCallUseCase) MarkHandled(ctx context.Context, id string) (entities.WaiterCall, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WaiterCall{}, ErrWaiterCallNotFound
	}

	call, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WaiterCall{}, err
	}
	if call.ID == "" {
		return entities.WaiterCall{}, ErrWaiterCallNotFound
	}
	if call.Status != entities.WaiterCallStatusPending {
		return entities.WaiterCall{}, ErrWaiterCallAlreadyHandled
	}

	if err := u.repo.SetStatus(ctx, call.ID, entities.WaiterCallStatusHandled); err != nil {
		return entities.WaiterCall{}, err
	}
	call.Status = entities.WaiterCallStatusHandled
	return call, nil
}
