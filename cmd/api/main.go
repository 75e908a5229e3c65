package main

import (
	_ "invoicedash/docs"
	"invoicedash/internal/adapter/http/routes"
	"invoicedash/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Invoice Dashboard API
// @version         1.0
// @description     PDF invoice upload, AI field extraction and invoice persistence, backed by DynamoDB and S3.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	logger.Setup(logger.FromEnv())
	routes.Run()
}
