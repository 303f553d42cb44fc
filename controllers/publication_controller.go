package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pubsched/api-go/services"
	"github.com/pubsched/api-go/utils"
)

type PublicationController struct {
	Service *services.PublicationService
}

type PublicationRequest struct {
	MediaID uint   `json:"mediaId" binding:"required"`
	PostID  uint   `json:"postId" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

func NewPublicationController(service *services.PublicationService) *PublicationController {
	return &PublicationController{Service: service}
}

// CreatePublication godoc
// @Summary Schedule a publication
// @Description Pairs a post with a media at a date; both must exist
// @Tags publications
// @Accept json
// @Produce json
// @Param publication body PublicationRequest true "Publication creation request"
// @Success 201 {object} models.Publication
// @Router /publications [post]
func (pc *PublicationController) CreatePublication(c *gin.Context) {
	var req PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseTime(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid date"})
		return
	}

	publication, err := pc.Service.Create(c.Request.Context(), req.MediaID, req.PostID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publication)
}

// GetPublications godoc
// @Summary List publications
// @Description Optionally filtered by published=true|false and after=<date>
// @Tags publications
// @Produce json
// @Success 200 {array} models.Publication
// @Router /publications [get]
func (pc *PublicationController) GetPublications(c *gin.Context) {
	publications, err := pc.Service.FindAll(c.Request.Context(), c.Query("published"), c.Query("after"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, publications)
}

func (pc *PublicationController) GetPublication(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	publication, err := pc.Service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, publication)
}

func (pc *PublicationController) UpdatePublication(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	var req PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseTime(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid date"})
		return
	}

	publication, err := pc.Service.Update(c.Request.Context(), id, req.MediaID, req.PostID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, publication)
}

func (pc *PublicationController) DeletePublication(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	publication, err := pc.Service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, publication)
}
