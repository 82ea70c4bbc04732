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

// BillHandler handles HTTP requests for the live table bill.
type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

// GetTableBill returns the running bill for a table, optionally for one person.
//
//	@Summary		Get a table bill
//	@Description	Returns the pending orders, participants and totals for a table
//	@Tags			bill
//	@Produce		json
//	@Param			table	path		string	true	"Table number"
//	@Param			person	query		string	false	"Person filter; defaults to All"
//	@Success		200		{object}	response.BillResponse
//	@Failure		404		{object}	pkg.HTTPError
//	@Failure		503		{object}	pkg.HTTPError
//	@Router			/v1/tables/{table}/bill [get]
func (h *BillHandler) GetTableBill(c *gin.Context) {
	table := c.Param("table")
	person := c.DefaultQuery("person", usecase.AllPersons)
	log.Printf("[bill][handler] get start table=%s person=%s", table, person)

	view, err := h.usecase.TableBill(c.Request.Context(), table, person)
	if err != nil {
		log.Printf("[bill][handler] get failed table=%s person=%s err=%v", table, person, err)
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bill][handler] get success table=%s person=%s orders=%d total=%.2f", table, person, len(view.Orders), view.Total)

	c.JSON(http.StatusOK, response.FromBillView(view))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTable):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPerson):
		return pkg.NewDomainErrorSimple("PERSON_NOT_FOUND", "Person has no items on this table", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Document store unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
