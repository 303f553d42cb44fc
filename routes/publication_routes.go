package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/controllers"
)

func SetupPublicationRoutes(r *gin.Engine, publicationController *controllers.PublicationController) {
	publications := r.Group("/publications")
	{
		publications.POST("", publicationController.CreatePublication)
		publications.GET("", publicationController.GetPublications)
		publications.GET("/:id", publicationController.GetPublication)
		publications.PUT("/:id", publicationController.UpdatePublication)
		publications.DELETE("/:id", publicationController.DeletePublication)
	}
}
