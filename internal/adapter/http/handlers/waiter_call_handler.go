package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tino-ryan/restaurant-app/internal/adapter/http/dto/response"
	"github.com/tino-ryan/restaurant-app/internal/usecase"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
	"github.com/tino-ryan/restaurant-app/pkg"
)

// WaiterCallHandler handles table service requests.

type WaiterCallHandler struct {
	usecase usecase.IWaiterCallUseCase
}

func NewWaiterCallHandler(uc usecase.IWaiterCallUseCase) *WaiterCallHandler {
	return &WaiterCallHandler{usecase: uc}
}

// CallWaiter records a pending service request for a table.
//
//	@Summary		Call a waiter
//	@Description	Records a pending waiter call for the table
//	@Tags			waiter-calls
//	@Produce		json
//	@Param			table	path		string	true	"Table number"
//	@Success		201		{object}	response.WaiterCallResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		503		{object}	pkg.HTTPError
//	@Router			/v1/tables/{table}/waiter-calls [post]
func (h *WaiterCallHandler) CallWaiter(c *gin.Context) {
	table := c.Param("table")
	log.Printf("[waiter][handler] call start table=%s", table)

	call, err := h.usecase.CallWaiter(c.Request.Context(), table)
	if err != nil {
		log.Printf("[waiter][handler] call failed table=%s err=%v", table, err)
		appErr := mapWaiterCallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[waiter][handler] call success table=%s call_id=%s", table, call.ID)

	c.JSON(http.StatusCreated, response.FromWaiterCall(call))
}

// ListPendingCalls returns the unhandled waiter calls.
//
//	@Summary		List pending waiter calls
//	@Tags			waiter-calls
//	@Produce		json
//	@Success		200	{array}		response.WaiterCallResponse
//	@Failure		503	{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/waiter-calls [get]
func (h *WaiterCallHandler) ListPendingCalls(c *gin.Context) {
	log.Printf("[waiter][handler] list-pending start")

	calls, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		log.Printf("[waiter][handler] list-pending failed err=%v", err)
		appErr := mapWaiterCallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[waiter][handler] list-pending success count=%d", len(calls))

	c.JSON(http.StatusOK, response.FromWaiterCalls(calls))
}

// MarkCallHandled marks a waiter call as handled.
//
//	@Summary		Mark a waiter call handled
//	@Tags			waiter-calls
//	@Produce		json
//	@Param			id	path		string	true	"Call id"
//	@Success		200	{object}	response.WaiterCallResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Failure		409	{object}	pkg.HTTPError
//	@Failure		503	{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/waiter-calls/{id}/handled [patch]
func (h *WaiterCallHandler) MarkCallHandled(c *gin.Context) {
	callID := c.Param("id")
	log.Printf("[waiter][handler] mark-handled start call_id=%s", callID)

	call, err := h.usecase.MarkHandled(c.Request.Context(), callID)
	if err != nil {
		log.Printf("[waiter][handler] mark-handled failed call_id=%s err=%v", callID, err)
		appErr := mapWaiterCallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[waiter][handler] mark-handled success call_id=%s", call.ID)

	c.JSON(http.StatusOK, response.FromWaiterCall(call))
}

func mapWaiterCallError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTable):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWaiterCallNotFound):
		return pkg.NewDomainErrorSimple("WAITER_CALL_NOT_FOUND", "Waiter call not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWaiterCallAlreadyHandled):
		return pkg.NewDomainErrorSimple("WAITER_CALL_ALREADY_HANDLED", "Waiter call already handled", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Document store unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
