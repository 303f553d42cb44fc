package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/services"
	"github.com/pubsched/api-go/utils"
)

type MediaController struct {
	Service *services.MediaService
}

type MediaRequest struct {
	Title    string `json:"title" binding:"required"`
	Username string `json:"username" binding:"required"`
}

func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{Service: service}
}

// CreateMedia godoc
// @Summary Register a media outlet
// @Description Creates a media; the title+username pair must be unused
// @Tags medias
// @Accept json
// @Produce json
// @Param media body MediaRequest true "Media creation request"
// @Success 201 {object} models.Media
// @Router /medias [post]
func (mc *MediaController) CreateMedia(c *gin.Context) {
	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := mc.Service.Create(c.Request.Context(), req.Title, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, media)
}

func (mc *MediaController) GetMedias(c *gin.Context) {
	medias, err := mc.Service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, medias)
}

func (mc *MediaController) GetMedia(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	media, err := mc.Service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, media)
}

func (mc *MediaController) UpdateMedia(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := mc.Service.Update(c.Request.Context(), id, req.Title, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, media)
}

// DeleteMedia godoc
// @Summary Delete a media outlet
// @Description Fails while any publication still references the media
// @Tags medias
// @Success 200 {object} models.Media
// @Router /medias/{id} [delete]
func (mc *MediaController) DeleteMedia(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	media, err := mc.Service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, media)
}
