package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tino-ryan/restaurant-app/docs" // This will be auto-generated
	"github.com/tino-ryan/restaurant-app/internal/adapter/http/handlers"
	repository2 "github.com/tino-ryan/restaurant-app/internal/adapter/persistence/repository"
	"github.com/tino-ryan/restaurant-app/internal/infrastructure/database"
	"github.com/tino-ryan/restaurant-app/internal/infrastructure/images"
	"github.com/tino-ryan/restaurant-app/internal/infrastructure/notify"
	"github.com/tino-ryan/restaurant-app/internal/usecase"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		if err := database.EnsureLocalTables(context.Background(), ddb); err != nil {
			log.Printf("[routes] local table bootstrap failed: %v", err)
		}
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)
	billingRepo := repository2.NewBillingDynamoRepository(ddb)
	waiterCallRepo := repository2.NewWaiterCallDynamoRepository(ddb)
	menuRepo := repository2.NewMenuDynamoRepository(ddb)

	var notifier interfaces.IChangeNotifier
	if kn := notify.NewKafkaNotifierFromEnv(); kn != nil {
		notifier = kn
	} else {
		log.Printf("Kafka notifier not configured: change events will not be published")
	}

	var uploader interfaces.IImageUploader
	if cu := images.NewCloudinaryUploaderFromEnv(); cu != nil {
		uploader = cu
	} else {
		log.Printf("Cloudinary uploader not configured: menu items will be created without images")
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, notifier)
	billUseCase := usecase.NewBillUseCase(orderRepo)
	settlementUseCase := usecase.NewSettlementUseCase(orderRepo, reviewRepo, billingRepo, notifier)
	waiterCallUseCase := usecase.NewWaiterCallUseCase(waiterCallRepo, notifier)
	menuUseCase := usecase.NewMenuUseCase(menuRepo, uploader)
	insightsUseCase := usecase.NewInsightsUseCase(billingRepo, orderRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	billHandler := handlers.NewBillHandler(billUseCase)
	settlementHandler := handlers.NewSettlementHandler(settlementUseCase)
	waiterCallHandler := handlers.NewWaiterCallHandler(waiterCallUseCase)
	menuHandler := handlers.NewMenuHandler(menuUseCase)
	insightsHandler := handlers.NewInsightsHandler(insightsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRestaurantRoutes(v1, orderHandler, billHandler, settlementHandler, waiterCallHandler, menuHandler, insightsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
