package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/controllers"
)

func SetupMediaRoutes(r *gin.Engine, mediaController *controllers.MediaController) {
	medias := r.Group("/medias")
	{
		medias.POST("", mediaController.CreateMedia)
		medias.GET("", mediaController.GetMedias)
		medias.GET("/:id", mediaController.GetMedia)
		medias.PUT("/:id", mediaController.UpdateMedia)
		medias.DELETE("/:id", mediaController.DeleteMedia)
	}
}
