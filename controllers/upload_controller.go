package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pubsched/api-go/config"
)

type UploadController struct {
	Client        *s3.Client
	StorageConfig *config.StorageConfig
}

type ImageUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

// Maximum image size in bytes (10 MB)
const maxImageSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func NewUploadController() *UploadController {
	storageConfig := config.GetStorageConfig()

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(storageConfig.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			storageConfig.AccessKeyID,
			storageConfig.SecretAccessKey,
			"",
		),
		Region: storageConfig.Region,
	})

	return &UploadController{
		Client:        client,
		StorageConfig: storageConfig,
	}
}

// GetImageUploadURL godoc
// @Summary Get a presigned upload URL for a post image
// @Description Returns a one-hour presigned PUT URL; the fileUrl can be set as a post's image
// @Tags uploads
// @Accept json
// @Produce json
// @Param upload body ImageUploadRequest true "Image upload request"
// @Success 200 {object} StandardResponse
// @Router /uploads/images [post]
func (uc *UploadController) GetImageUploadURL(c *gin.Context) {
	var req ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !allowedImageTypes[req.ContentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are allowed"})
		return
	}

	if req.FileSize <= 0 || req.FileSize > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := uc.generateImageKey(req.FileName)

	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.StorageConfig.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		},
		Message: "Presigned URL generated successfully",
	})
}

func (uc *UploadController) generateImageKey(fileName string) string {
	ext := filepath.Ext(fileName)
	timestamp := time.Now().Unix()

	return fmt.Sprintf("uploads/images/%d_%s%s", timestamp, uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.StorageConfig.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
