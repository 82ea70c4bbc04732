package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tino-ryan/restaurant-app/internal/adapter/http/handlers"
	"github.com/tino-ryan/restaurant-app/internal/adapter/http/middleware"
)

const (
	PathMenu   = "/menu"
	PathOrders = "/orders"
	PathTables = "/tables"
	PathStaff  = "/staff"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addRestaurantRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	billHandler *handlers.BillHandler,
	settlementHandler *handlers.SettlementHandler,
	waiterCallHandler *handlers.WaiterCallHandler,
	menuHandler *handlers.MenuHandler,
	insightsHandler *handlers.InsightsHandler,
) {
	// Customer-facing routes: no credentials, scoped by table number.
	rg.GET(PathMenu, menuHandler.GetMenu)
	rg.POST(PathOrders, orderHandler.PlaceOrder)

	tables := rg.Group(PathTables)
	{
		tables.GET("/:table/bill", billHandler.GetTableBill)
		tables.POST("/:table/settlement", settlementHandler.SettleTable)
		tables.POST("/:table/waiter-calls", waiterCallHandler.CallWaiter)
	}

	// Staff routes sit behind the JWT gate.
	staff := rg.Group(PathStaff, middleware.StaffAuth())
	{
		staff.GET("/orders", orderHandler.ListOrders)
		staff.POST("/orders", orderHandler.PlaceStaffOrder)
		staff.PATCH("/orders/:id/status", orderHandler.AdvanceOrder)

		staff.GET("/waiter-calls", waiterCallHandler.ListPendingCalls)
		staff.PATCH("/waiter-calls/:id/handled", waiterCallHandler.MarkCallHandled)

		staff.GET("/menu", menuHandler.GetFullMenu)
		staff.POST("/menu", menuHandler.AddMenuItem)
		staff.PATCH("/menu/:id", menuHandler.EditMenuItem)
		staff.PATCH("/menu/:id/archive", menuHandler.ArchiveMenuItem)
		staff.PATCH("/menu/:id/restore", menuHandler.RestoreMenuItem)

		staff.GET("/insights", insightsHandler.GetInsights)
	}
}
