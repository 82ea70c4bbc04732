package usecase

import (
	"errors"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

// AllPersons is the selector meaning "the whole table" when filtering a bill.
const AllPersons = "All"

var ErrNoParticipants = errors.New("cannot split a bill between zero people")

// The bill aggregation functions are pure: they take order snapshots, never
// touch the store, and never mutate their inputs. Callers are expected to pass
// normalized orders (entities.NormalizeOrders) so person labels are consistent.

// DistinctPersons returns the distinct person labels across all lines, in
// order of first appearance. The AllPersons selector is not included; it is a
// caller-side constant.
func DistinctPersons(orders []entities.Order) []string {
	seen := make(map[string]struct{})
	var persons []string
	for _, o := range orders {
		for _, l := range o.Items {
			label := l.Person
			if label == "" {
				label = entities.AnonymousPerson
			}
			if _, ok := seen[label]; !ok {
				seen[label] = struct{}{}
				persons = append(persons, label)
			}
		}
	}
	return persons
}

// FilterByPerson narrows orders to a single person's lines. AllPersons is the
// identity. Orders left with no lines are dropped. The input slice and its
// orders are copied, never modified.
func FilterByPerson(orders []entities.Order, person string) []entities.Order {
	if person == AllPersons {
		return orders
	}
	var out []entities.Order
	for _, o := range orders {
		var kept []entities.OrderLine
		for _, l := range o.Items {
			label := l.Person
			if label == "" {
				label = entities.AnonymousPerson
			}
			if label == person {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			continue
		}
		filtered := o
		filtered.Items = kept
		out = append(out, filtered)
	}
	return out
}

// Total sums quantity*price over every line at full float64 precision.
// Rounding to two decimals happens only at the response DTO, never while
// accumulating, to avoid compounding rounding error.
func Total(orders []entities.Order) float64 {
	var sum float64
	for _, o := range orders {
		for _, l := range o.Items {
			sum += float64(l.Quantity) * l.Price
		}
	}
	return sum
}

// SplitEqually divides total across persons. persons == 0 is an error, not an
// Inf or NaN.
func SplitEqually(total float64, persons int) (float64, error) {
	if persons == 0 {
		return 0, ErrNoParticipants
	}
	return total / float64(persons), nil
}
