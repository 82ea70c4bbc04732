package response

import "github.com/tino-ryan/restaurant-app/internal/usecase"

type ItemCountResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type MonthRevenueResponse struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type HourCountResponse struct {
	Hour   string `json:"hour"`
	Orders int    `json:"orders"`
}

type InsightsResponse struct {
	TodaySales   float64                `json:"todaySales"`
	TablesToday  int                    `json:"tablesToday"`
	PopularItems []ItemCountResponse    `json:"popularItems"`
	Monthly      []MonthRevenueResponse `json:"monthly"`
	BusiestHours []HourCountResponse    `json:"busiestHours"`
}

func FromInsights(o usecase.InsightsOverview) InsightsResponse {
	resp := InsightsResponse{
		TodaySales:   round2(o.TodaySales),
		TablesToday:  o.TablesToday,
		PopularItems: make([]ItemCountResponse, 0, len(o.PopularItems)),
		Monthly:      make([]MonthRevenueResponse, 0, len(o.Monthly)),
		BusiestHours: make([]HourCountResponse, 0, len(o.BusiestHours)),
	}
	for _, it := range o.PopularItems {
		resp.PopularItems = append(resp.PopularItems, ItemCountResponse{Name: it.Name, Quantity: it.Quantity})
	}
	for _, m := range o.Monthly {
		resp.Monthly = append(resp.Monthly, MonthRevenueResponse{Month: m.Month, Revenue: round2(m.Total)})
	}
	for _, h := range o.BusiestHours {
		resp.BusiestHours = append(resp.BusiestHours, HourCountResponse{Hour: h.Hour, Orders: h.Count})
	}
	return resp
}
