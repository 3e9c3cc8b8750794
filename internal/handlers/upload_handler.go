package handlers

import (
	"movieclub-backend/internal/services"
	"movieclub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	posters services.PosterStore
	logger  *logrus.Logger
}

// NewUploadHandler serves poster uploads; posters is nil when storage is
// not configured.
func NewUploadHandler(posters services.PosterStore, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		posters: posters,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Generate a presigned PUT URL for a poster image and the URL it will be served from
// @Tags upload
// @Produce json
// @Security BearerAuth
// @Param filename query string true "Filename (jpg, jpeg, png or webp)"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.posters == nil {
		return respondError(c, h.logger, services.ErrStorageDisabled, "generate presigned URL")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.posters.GeneratePresignedURL(c.Context(), filename)
	if err != nil {
		return respondError(c, h.logger, err, "generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
