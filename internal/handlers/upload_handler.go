package handlers

import (
	"context"
	"strings"

	"film-catalog/internal/models"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PosterUploader issues presigned upload URLs for poster images.
type PosterUploader interface {
	GeneratePresignedURL(ctx context.Context, filename string) (string, string, error)
}

type UploadHandler struct {
	uploader PosterUploader
	logger   *logrus.Logger
}

// NewUploadHandler accepts a nil uploader; requests are then answered with
// 503 until object storage is configured.
func NewUploadHandler(uploader PosterUploader, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Generate a presigned PUT URL for uploading a poster image. Use the returned public_url as the film's imageUrl.
// @Tags Upload
// @Produce json
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(image/jpeg)
// @Success 200 {object} models.PresignResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.uploader == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Poster uploads are not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "image/jpeg")
	if !strings.HasPrefix(contentType, "image/") {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "contentType must be an image type")
	}

	presignedURL, publicURL, err := h.uploader.GeneratePresignedURL(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.JSONResponse(c, fiber.StatusOK, models.PresignResponse{
		PresignedURL: presignedURL,
		PublicURL:    publicURL,
	})
}
