package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/tino-ryan/restaurant-app/docs"
	"github.com/tino-ryan/restaurant-app/internal/adapter/http/routes"
)

// @title           Restaurant Service API
// @version         1.0
// @description     Table ordering, bill and settlement service backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
