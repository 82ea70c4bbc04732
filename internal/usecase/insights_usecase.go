package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

// ItemCount is a dish with the total quantity sold across completed orders.
type ItemCount struct {
	Name     string
	Quantity int
}

// MonthRevenue is total settled revenue for one calendar month ("2006-01").
type MonthRevenue struct {
	Month string
	Total float64
}

// HourCount is the number of settlements in one hour-of-day bucket.
type HourCount struct {
	Hour  string
	Count int
}

// InsightsOverview is the staff performance dashboard payload.
type InsightsOverview struct {
	TodaySales   float64
	TablesToday  int
	PopularItems []ItemCount
	Monthly      []MonthRevenue
	BusiestHours []HourCount
}

// IInsightsUseCase aggregates billing and order history into the staff
// performance dashboard.

type IInsightsUseCase interface {
	Overview(ctx context.Context) (InsightsOverview, error)
}

type InsightsUseCase struct {
	billing interfaces.IBillingRepository
	orders  interfaces.IOrderRepository
	now     func() time.Time
}

var _ IInsightsUseCase = (*InsightsUseCase)(nil)

func NewInsightsUseCase(billing interfaces.IBillingRepository, orders interfaces.IOrderRepository) *InsightsUseCase {
	return &InsightsUseCase{billing: billing, orders: orders, now: time.Now}
}

// Overview assembles every metric from two collections: billing facts drive
// the revenue/occupancy numbers, completed orders drive item popularity. The
// aggregation itself is in-memory over small snapshots.
func (u *InsightsUseCase) Overview(ctx context.Context) (InsightsOverview, error) {
	now := u.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	today, err := u.billing.ListBySettledRange(ctx, dayStart, dayEnd)
	if err != nil {
		return InsightsOverview{}, err
	}
	allFacts, err := u.billing.ListAll(ctx)
	if err != nil {
		return InsightsOverview{}, err
	}
	completed, err := u.orders.ListByStatus(ctx, entities.OrderStatusCompleted)
	if err != nil {
		return InsightsOverview{}, err
	}

	return InsightsOverview{
		TodaySales:   sumPaid(today),
		TablesToday:  distinctTables(today),
		PopularItems: popularItems(completed),
		Monthly:      monthlyRevenue(allFacts),
		BusiestHours: busiestHours(allFacts),
	}, nil
}

func sumPaid(facts []entities.BillingFact) float64 {
	var total float64
	for _, f := range facts {
		total += f.TotalPaid
	}
	return total
}

func distinctTables(facts []entities.BillingFact) int {
	tables := make(map[string]struct{})
	for _, f := range facts {
		tables[f.Table] = struct{}{}
	}
	return len(tables)
}

// popularItems sums sold quantities per dish name over completed orders,
// sorted most-sold first. Name ties break alphabetically so output is stable.
func popularItems(orders []entities.Order) []ItemCount {
	counts := make(map[string]int)
	for _, o := range orders {
		for _, l := range o.Items {
			counts[l.Name] += l.Quantity
		}
	}
	out := make([]ItemCount, 0, len(counts))
	for name, qty := range counts {
		out = append(out, ItemCount{Name: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func monthlyRevenue(facts []entities.BillingFact) []MonthRevenue {
	byMonth := make(map[string]float64)
	for _, f := range facts {
		key := f.SettledAt.UTC().Format("2006-01")
		byMonth[key] += f.TotalPaid
	}
	out := make([]MonthRevenue, 0, len(byMonth))
	for month, total := range byMonth {
		out = append(out, MonthRevenue{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func busiestHours(facts []entities.BillingFact) []HourCount {
	var buckets [24]int
	for _, f := range facts {
		buckets[f.SettledAt.UTC().Hour()]++
	}
	out := make([]HourCount, 24)
	for hour, count := range buckets {
		out[hour] = HourCount{Hour: fmt.Sprintf("%02d:00", hour), Count: count}
	}
	return out
}
