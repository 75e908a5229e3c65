package routes

import (
	_ "invoicedash/docs" // This will be auto-generated
	"invoicedash/internal/adapter/http/handlers"
	repository2 "invoicedash/internal/adapter/persistence/repository"
	"invoicedash/internal/infrastructure/database"
	"invoicedash/internal/infrastructure/extraction"
	"invoicedash/internal/infrastructure/storage"
	"invoicedash/internal/usecase"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	fileStore := storage.ConnectS3()
	gateway := extraction.NewLLMExtractionGateway()

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo)
	fileUseCase := usecase.NewFileUseCase(fileStore)
	extractionUseCase := usecase.NewExtractionUseCase(fileStore, gateway)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	uploadHandler := handlers.NewUploadHandler(fileUseCase)
	extractHandler := handlers.NewExtractHandler(extractionUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addInvoiceRoutes(api, invoiceHandler)
	addUploadRoutes(api, uploadHandler)
	addExtractRoutes(api, extractHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
