package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/controllers"
)

func SetupUploadRoutes(r *gin.Engine, uploadController *controllers.UploadController) {
	uploads := r.Group("/uploads")
	{
		uploads.POST("/images", uploadController.GetImageUploadURL)
	}
}
