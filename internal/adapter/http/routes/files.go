package routes

import (
	"invoicedash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUpload  = "/upload"
	PathExtract = "/extract"
)

func addUploadRoutes(rg *gin.RouterGroup, uploadHandler *handlers.UploadHandler) {
	upload := rg.Group(PathUpload)
	{
		upload.POST("", uploadHandler.Upload)
		upload.GET("/:fileId", uploadHandler.Download)
	}
}

func addExtractRoutes(rg *gin.RouterGroup, extractHandler *handlers.ExtractHandler) {
	rg.POST(PathExtract, extractHandler.Extract)
}
