package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tino-ryan/restaurant-app/internal/adapter/http/dto/request"
	"github.com/tino-ryan/restaurant-app/internal/adapter/http/dto/response"
	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
	"github.com/tino-ryan/restaurant-app/pkg"
)

// OrderHandler handles HTTP requests for placing and advancing orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// PlaceOrder creates a new pending order for a table.
//
//	@Summary		Place an order
//	@Description	Creates a pending order from the submitted line items
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		request.PlaceOrderRequest	true	"Order payload"
//	@Success		201		{object}	response.OrderResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		503		{object}	pkg.HTTPError
//	@Router			/v1/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] place invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] place start table=%s items=%d", req.Table, len(req.Items))

	created, err := h.usecase.PlaceOrder(c.Request.Context(), req.Table, req.ToLines())
	if err != nil {
		log.Printf("[order][handler] place failed table=%s err=%v", req.Table, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] place success table=%s order_id=%s", created.Table, created.ID)

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// PlaceStaffOrder creates an order from a free-text item list typed by staff.
//
//	@Summary		Place a staff order
//	@Description	Creates a pending order from a free-text item list
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		request.StaffOrderRequest	true	"Staff order payload"
//	@Success		201		{object}	response.OrderResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		503		{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/orders [post]
func (h *OrderHandler) PlaceStaffOrder(c *gin.Context) {
	var req request.StaffOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] staff-place invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] staff-place start table=%s", req.Table)

	created, err := h.usecase.PlaceOrder(c.Request.Context(), req.Table, req.ParseLines())
	if err != nil {
		log.Printf("[order][handler] staff-place failed table=%s err=%v", req.Table, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] staff-place success table=%s order_id=%s", created.Table, created.ID)

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// AdvanceOrder moves an order one step forward in its lifecycle.
//
//	@Summary		Advance an order
//	@Description	Moves an order to the next status (pending to in-progress, in-progress to completed)
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order id"
//	@Param			status	body		request.AdvanceOrderRequest	true	"Target status"
//	@Success		200		{object}	response.OrderResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Failure		409		{object}	pkg.HTTPError
//	@Failure		503		{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/orders/{id}/status [patch]
func (h *OrderHandler) AdvanceOrder(c *gin.Context) {
	orderID := c.Param("id")
	var req request.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] advance invalid body order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] advance start order_id=%s target=%s", orderID, req.Status)

	updated, err := h.usecase.Advance(c.Request.Context(), orderID, entities.OrderStatus(req.Status))
	if err != nil {
		log.Printf("[order][handler] advance failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] advance success order_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// ListOrders returns orders, optionally filtered by status.
//
//	@Summary		List orders
//	@Description	Lists all orders or those matching the status query
//	@Tags			orders
//	@Produce		json
//	@Param			status	query		string	false	"Status filter (pending, in-progress, completed, all)"
//	@Success		200		{array}		response.OrderResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		503		{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	statusFilter := c.Query("status")
	log.Printf("[order][handler] list start status=%q", statusFilter)

	orders, err := h.usecase.ListOrders(c.Request.Context(), statusFilter)
	if err != nil {
		log.Printf("[order][handler] list failed status=%q err=%v", statusFilter, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] list success status=%q count=%d", statusFilter, len(orders))

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTable),
		errors.Is(err, usecase.ErrEmptyOrder),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidLineName),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Order status cannot move that way", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Document store unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
