package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/tino-ryan/restaurant-app/internal/adapter/http/handlers/mocks"
	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().PlaceOrder(gomock.Any(), "5", gomock.Any()).
			Return(entities.Order{}, usecase.ErrEmptyOrder)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"table":"5","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, interfaces.ErrStoreUnavailable)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		body := `{"table":"5","items":[{"name":"Burger","quantity":1,"price":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().PlaceOrder(gomock.Any(), "5", gomock.Any()).
			Return(entities.Order{
				ID:     "ord-1",
				Table:  "5",
				Status: entities.OrderStatusPending,
				Items:  []entities.OrderLine{{Name: "Burger", Quantity: 1, Price: 50, Person: "Ana"}},
			}, nil)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		body := `{"table":"5","items":[{"name":"Burger","quantity":1,"price":50,"person":"Ana"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "ord-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestOrderHandler_AdvanceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Advance(gomock.Any(), "missing", entities.OrderStatusInProgress).
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.PATCH("/v1/staff/orders/:id/status", h.AdvanceOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/orders/missing/status", bytes.NewBufferString(`{"status":"in-progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Advance(gomock.Any(), "ord-1", entities.OrderStatusCompleted).
			Return(entities.Order{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/staff/orders/:id/status", h.AdvanceOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/orders/ord-1/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("advance success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Advance(gomock.Any(), "ord-1", entities.OrderStatusInProgress).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusInProgress}, nil)

		r := gin.New()
		r.PATCH("/v1/staff/orders/:id/status", h.AdvanceOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/staff/orders/ord-1/status", bytes.NewBufferString(`{"status":"in-progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes status query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ListOrders(gomock.Any(), "pending").
			Return([]entities.Order{{ID: "ord-1", Status: entities.OrderStatusPending}}, nil)

		r := gin.New()
		r.GET("/v1/staff/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/staff/orders?status=pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 || resp[0]["id"] != "ord-1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ListOrders(gomock.Any(), "shipped").Return(nil, usecase.ErrInvalidStatus)

		r := gin.New()
		r.GET("/v1/staff/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/staff/orders?status=shipped", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_PlaceStaffOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	uc.EXPECT().PlaceOrder(gomock.Any(), "5", gomock.Any()).DoAndReturn(
		func(_ any, table string, lines []entities.OrderLine) (entities.Order, error) {
			if len(lines) != 2 || lines[0].Name != "Burger" || lines[0].Quantity != 2 {
				t.Fatalf("unexpected parsed lines: %+v", lines)
			}
			return entities.Order{ID: "ord-1", Table: table, Items: lines, Status: entities.OrderStatusPending}, nil
		},
	)

	r := gin.New()
	r.POST("/v1/staff/orders", h.PlaceStaffOrder)

	body := `{"table":"5","itemsText":"Burger x2 | no onions\nCoke"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/staff/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidTable, http.StatusBadRequest},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrInvalidTransition, http.StatusConflict},
		{interfaces.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapOrderError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
