package response

import (
	"time"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
)

type WaiterCallResponse struct {
	ID        string    `json:"id"`
	Table     string    `json:"table"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

func FromWaiterCall(c entities.WaiterCall) WaiterCallResponse {
	return WaiterCallResponse{
		ID:        c.ID,
		Table:     c.Table,
		Timestamp: c.Timestamp,
		Status:    string(c.Status),
	}
}

func FromWaiterCalls(calls []entities.WaiterCall) []WaiterCallResponse {
	out := make([]WaiterCallResponse, 0, len(calls))
	for _, c := range calls {
		out = append(out, FromWaiterCall(c))
	}
	return out
}
