package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tino-ryan/restaurant-app/internal/adapter/http/dto/request"
	"github.com/tino-ryan/restaurant-app/internal/adapter/http/dto/response"
	"github.com/tino-ryan/restaurant-app/internal/usecase"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
	"github.com/tino-ryan/restaurant-app/pkg"
)

// SettlementHandler handles the end-of-visit settlement request.
type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// SettleTable records the review and billing facts and completes the table's open orders.
//
//	@Summary		Settle a table
//	@Description	Persists the review and billing facts, then completes every open order on the table
//	@Tags			settlement
//	@Accept			json
//	@Produce		json
//	@Param			table		path		string						true	"Table number"
//	@Param			settlement	body		request.SettlementRequest	true	"Review and tip"
//	@Success		200			{object}	response.SettlementResponse
//	@Failure		400			{object}	pkg.HTTPError
//	@Failure		502			{object}	pkg.HTTPError
//	@Failure		503			{object}	pkg.HTTPError
//	@Router			/v1/tables/{table}/settlement [post]
func (h *SettlementHandler) SettleTable(c *gin.Context) {
	table := c.Param("table")
	var req request.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[settlement][handler] invalid body table=%s err=%v", table, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settlement][handler] settle start table=%s rating=%d tip=%.2f", table, req.Rating, float64(req.Tip))

	result, err := h.usecase.Settle(c.Request.Context(), table, usecase.SettleInput{
		Rating:     req.Rating,
		ReviewNote: req.ReviewNote,
		Tip:        float64(req.Tip),
	})
	if err != nil {
		var partial *usecase.SettlementPartialError
		if errors.As(err, &partial) {
			// Facts are already committed; report what completed and what did not.
			log.Printf("[settlement][handler] settle partial table=%s failed_orders=%v err=%v", table, partial.FailedOrderIDs, err)
			c.JSON(http.StatusBadGateway, response.FromSettlementResult(result))
			return
		}
		log.Printf("[settlement][handler] settle failed table=%s err=%v", table, err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settlement][handler] settle success table=%s billing_id=%s total_paid=%.2f", table, result.BillingFact.ID, result.BillingFact.TotalPaid)

	c.JSON(http.StatusOK, response.FromSettlementResult(result))
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTable),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrInvalidTip):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettlementFailed),
		errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Document store unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
