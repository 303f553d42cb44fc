package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/controllers"
)

func SetupPostRoutes(r *gin.Engine, postController *controllers.PostController) {
	posts := r.Group("/posts")
	{
		posts.POST("", postController.CreatePost)
		posts.GET("", postController.GetPosts)
		posts.GET("/:id", postController.GetPost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}
}
