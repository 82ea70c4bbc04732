package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/tino-ryan/restaurant-app/internal/adapter/http/handlers/mocks"
	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase"
)

func TestSettlementHandler_SettleTable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SettlementHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/tables/:table/settlement", h.SettleTable)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/5/settlement", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("tip accepted as string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		now := time.Now().UTC()
		uc.EXPECT().Settle(gomock.Any(), "5", usecase.SettleInput{Rating: 4, Tip: 20}).
			Return(usecase.SettlementResult{
				Review:      entities.Review{ID: "rev-1", Table: "5", Rating: 4, Tip: 20, Timestamp: now},
				BillingFact: entities.BillingFact{ID: "bil-1", Table: "5", TotalPaid: 135, SettledAt: now},
				Outcomes: []usecase.TransitionOutcome{
					{OrderID: "ord-1"},
					{OrderID: "ord-2"},
				},
			}, nil)

		body := `{"rating":4,"tip":"20"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/tables/5/settlement", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var resp struct {
			Billing struct {
				TotalPaid float64 `json:"totalPaid"`
			} `json:"billing"`
			CompletedOrderIDs []string `json:"completedOrderIds"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Billing.TotalPaid != 135 {
			t.Fatalf("expected totalPaid 135, got %v", resp.Billing.TotalPaid)
		}
		if len(resp.CompletedOrderIDs) != 2 {
			t.Fatalf("expected 2 completed orders, got %v", resp.CompletedOrderIDs)
		}
	})

	t.Run("invalid rating maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().Settle(gomock.Any(), "5", gomock.Any()).
			Return(usecase.SettlementResult{}, usecase.ErrInvalidRating)

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/5/settlement", bytes.NewBufferString(`{"rating":9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("settlement failure maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		uc.EXPECT().Settle(gomock.Any(), "5", gomock.Any()).
			Return(usecase.SettlementResult{}, usecase.ErrSettlementFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/5/settlement", bytes.NewBufferString(`{"rating":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("partial failure returns 502 with both halves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSettlementHandler(uc)

		now := time.Now().UTC()
		result := usecase.SettlementResult{
			Review:      entities.Review{ID: "rev-1", Table: "5", Rating: 4, Timestamp: now},
			BillingFact: entities.BillingFact{ID: "bil-1", Table: "5", TotalPaid: 115, SettledAt: now},
			Outcomes: []usecase.TransitionOutcome{
				{OrderID: "ord-1"},
				{OrderID: "ord-2", Err: usecase.ErrInvalidTransition},
			},
		}
		uc.EXPECT().Settle(gomock.Any(), "5", gomock.Any()).
			Return(result, &usecase.SettlementPartialError{FailedOrderIDs: []string{"ord-2"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/5/settlement", bytes.NewBufferString(`{"rating":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var resp struct {
			CompletedOrderIDs []string `json:"completedOrderIds"`
			FailedOrderIDs    []string `json:"failedOrderIds"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.CompletedOrderIDs) != 1 || resp.CompletedOrderIDs[0] != "ord-1" {
			t.Fatalf("unexpected completed ids: %v", resp.CompletedOrderIDs)
		}
		if len(resp.FailedOrderIDs) != 1 || resp.FailedOrderIDs[0] != "ord-2" {
			t.Fatalf("unexpected failed ids: %v", resp.FailedOrderIDs)
		}
	})
}
