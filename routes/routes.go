package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/controllers"
	"github.com/pubsched/api-go/repositories"
	"github.com/pubsched/api-go/services"
)

func SetupRoutes(r *gin.Engine, repos *repositories.Registry) {
	// Initialize services
	mediaService := services.NewMediaService(repos.Media, repos.Publications)
	postService := services.NewPostService(repos.Posts, repos.Publications)
	publicationService := services.NewPublicationService(repos.Publications, repos.Media, repos.Posts)

	// Initialize controllers
	mediaController := controllers.NewMediaController(mediaService)
	postController := controllers.NewPostController(postService)
	publicationController := controllers.NewPublicationController(publicationService)
	uploadController := controllers.NewUploadController()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm okay!")
	})

	SetupMediaRoutes(r, mediaController)
	SetupPostRoutes(r, postController)
	SetupPublicationRoutes(r, publicationController)
	SetupUploadRoutes(r, uploadController)
}
