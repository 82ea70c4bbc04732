package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

var ErrUnknownPerson = errors.New("person has no lines on this bill")

// BillView is the aggregated bill for a table, optionally narrowed to one
// person. Total is full precision; rounding is a display concern.
type BillView struct {
	Table     string
	Person    string
	Persons   []string
	Orders    []entities.Order
	Total     float64
	PerPerson float64
}

// IBillUseCase assembles the bill screen from the open pending set.

type IBillUseCase interface {
	TableBill(ctx context.Context, table, person string) (BillView, error)
}

type BillUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(orders interfaces.IOrderRepository) *BillUseCase {
	return &BillUseCase{orders: orders}
}

// TableBill reads the table's pending orders once and aggregates in memory.
// person == "" is treated as AllPersons. The equal split is only defined for
// the unfiltered view and uses the distinct-person count.
func (u *BillUseCase) TableBill(ctx context.Context, table, person string) (BillView, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return BillView{}, ErrInvalidTable
	}
	if person == "" {
		person = AllPersons
	}

	orders, err := u.orders.ListByTableAndStatus(ctx, table, entities.OrderStatusPending)
	if err != nil {
		return BillView{}, err
	}
	orders = entities.NormalizeOrders(orders)

	persons := DistinctPersons(orders)
	filtered := FilterByPerson(orders, person)
	if person != AllPersons && len(filtered) == 0 {
		return BillView{}, ErrUnknownPerson
	}

	view := BillView{
		Table:   table,
		Person:  person,
		Persons: persons,
		Orders:  filtered,
		Total:   Total(filtered),
	}
	if person == AllPersons && len(persons) > 0 {
		split, err := SplitEqually(view.Total, len(persons))
		if err != nil {
			return BillView{}, err
		}
		view.PerPerson = split
	}
	return view, nil
}
