package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/services"
	"github.com/pubsched/api-go/utils"
)

type PostController struct {
	Service *services.PostService
}

type PostRequest struct {
	Title string  `json:"title" binding:"required"`
	Text  string  `json:"text" binding:"required"`
	Image *string `json:"image"`
}

func NewPostController(service *services.PostService) *PostController {
	return &PostController{Service: service}
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a content item; image is optional
// @Tags posts
// @Accept json
// @Produce json
// @Param post body PostRequest true "Post creation request"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Service.Create(c.Request.Context(), req.Title, req.Text, req.Image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.Service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := pc.Service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Service.Update(c.Request.Context(), id, req.Title, req.Text, req.Image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := pc.Service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
