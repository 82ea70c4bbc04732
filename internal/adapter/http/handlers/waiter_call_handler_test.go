package handlers

import (
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

func newWaiterCallRouter(h *WaiterCallHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/tables/:table/waiter-calls", h.CallWaiter)
	r.GET("/v1/staff/waiter-calls", h.ListPendingCalls)
	r.PATCH("/v1/staff/waiter-calls/:id/handled", h.MarkCallHandled)
	return r
}

func TestWaiterCallHandler_CallWaiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success responds 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWaiterCallUseCase(ctrl)
		h := NewWaiterCallHandler(uc)

		uc.EXPECT().CallWaiter(gomock.Any(), "5").
			Return(entities.WaiterCall{
				ID:        "call-1",
				Table:     "5",
				Timestamp: time.Now().UTC(),
				Status:    entities.WaiterCallStatusPending,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/5/waiter-calls", nil)
		w := httptest.NewRecorder()
		newWaiterCallRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "call-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("invalid table responds 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWaiterCallUseCase(ctrl)
		h := NewWaiterCallHandler(uc)

		uc.EXPECT().CallWaiter(gomock.Any(), " ").
			Return(entities.WaiterCall{}, usecase.ErrInvalidTable)

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/%20/waiter-calls", nil)
		w := httptest.NewRecorder()
		newWaiterCallRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWaiterCallHandler_ListPendingCalls(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWaiterCallUseCase(ctrl)
	h := NewWaiterCallHandler(uc)

	uc.EXPECT().ListPending(gomock.Any()).
		Return([]entities.WaiterCall{
			{ID: "call-1", Table: "5", Status: entities.WaiterCallStatusPending},
			{ID: "call-2", Table: "7", Status: entities.WaiterCallStatusPending},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/staff/waiter-calls", nil)
	w := httptest.NewRecorder()
	newWaiterCallRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 || resp[1]["table"] != "7" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestWaiterCallHandler_MarkCallHandled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found responds 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWaiterCallUseCase(ctrl)
		h := NewWaiterCallHandler(uc)

		uc.EXPECT().MarkHandled(gomock.Any(), "nope").
			Return(entities.WaiterCall{}, usecase.ErrWaiterCallNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/waiter-calls/nope/handled", nil)
		w := httptest.NewRecorder()
		newWaiterCallRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("already handled responds 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWaiterCallUseCase(ctrl)
		h := NewWaiterCallHandler(uc)

		uc.EXPECT().MarkHandled(gomock.Any(), "call-1").
			Return(entities.WaiterCall{}, usecase.ErrWaiterCallAlreadyHandled)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/waiter-calls/call-1/handled", nil)
		w := httptest.NewRecorder()
		newWaiterCallRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success responds 200 with handled status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWaiterCallUseCase(ctrl)
		h := NewWaiterCallHandler(uc)

		uc.EXPECT().MarkHandled(gomock.Any(), "call-1").
			Return(entities.WaiterCall{ID: "call-1", Table: "5", Status: entities.WaiterCallStatusHandled}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/waiter-calls/call-1/handled", nil)
		w := httptest.NewRecorder()
		newWaiterCallRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "handled" {
			t.Fatalf("expected handled status, got %v", resp["status"])
		}
	})
}
