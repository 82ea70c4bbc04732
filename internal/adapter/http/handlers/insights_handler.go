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

// InsightsHandler serves the staff performance overview.

type InsightsHandler struct {
	usecase usecase.IInsightsUseCase
}

func NewInsightsHandler(uc usecase.IInsightsUseCase) *InsightsHandler {
	return &InsightsHandler{usecase: uc}
}

// GetInsights returns sales and order aggregates for the staff dashboard.
//
//	@Summary		Get performance insights
//	@Description	Aggregates billing and order history into dashboard figures
//	@Tags			insights
//	@Produce		json
//	@Success		200	{object}	response.InsightsResponse
//	@Failure		503	{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	log.Printf("[insights][handler] overview start")

	overview, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		log.Printf("[insights][handler] overview failed err=%v", err)
		appErr := mapInsightsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[insights][handler] overview success today_sales=%.2f tables_today=%d", overview.TodaySales, overview.TablesToday)

	c.JSON(http.StatusOK, response.FromInsights(overview))
}

func mapInsightsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Document store unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
