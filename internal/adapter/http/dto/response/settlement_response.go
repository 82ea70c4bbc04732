package response

import (
	"time"

	"github.com/tino-ryan/restaurant-app/internal/usecase"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	Table      string    `json:"table"`
	Rating     int       `json:"rating"`
	ReviewNote string    `json:"reviewNote,omitempty"`
	Tip        float64   `json:"tip"`
	Timestamp  time.Time `json:"timestamp"`
}

type BillingFactResponse struct {
	ID        string    `json:"id"`
	Table     string    `json:"table"`
	TotalPaid float64   `json:"totalPaid"`
	SettledAt time.Time `json:"settledAt"`
}

type SettlementResponse struct {
	Review            ReviewResponse      `json:"review"`
	Billing           BillingFactResponse `json:"billing"`
	CompletedOrderIDs []string            `json:"completedOrderIds"`
	FailedOrderIDs    []string            `json:"failedOrderIds,omitempty"`
}

func FromSettlementResult(r usecase.SettlementResult) SettlementResponse {
	resp := SettlementResponse{
		Review: ReviewResponse{
			ID:         r.Review.ID,
			Table:      r.Review.Table,
			Rating:     r.Review.Rating,
			ReviewNote: r.Review.ReviewNote,
			Tip:        round2(r.Review.Tip),
			Timestamp:  r.Review.Timestamp,
		},
		Billing: BillingFactResponse{
			ID:        r.BillingFact.ID,
			Table:     r.BillingFact.Table,
			TotalPaid: round2(r.BillingFact.TotalPaid),
			SettledAt: r.BillingFact.SettledAt,
		},
		CompletedOrderIDs: []string{},
	}
	for _, out := range r.Outcomes {
		if out.Err == nil {
			resp.CompletedOrderIDs = append(resp.CompletedOrderIDs, out.OrderID)
		} else {
			resp.FailedOrderIDs = append(resp.FailedOrderIDs, out.OrderID)
		}
	}
	return resp
}
