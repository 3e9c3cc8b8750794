package handlers

import (
	"movieclub-backend/internal/middleware"
	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"
	"movieclub-backend/internal/services"
	"movieclub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TvReviewHandler struct {
	service services.TvReviewService
	logger  *logrus.Logger
}

func NewTvReviewHandler(service services.TvReviewService, logger *logrus.Logger) *TvReviewHandler {
	return &TvReviewHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllTvReviews godoc
// @Summary List TV reviews
// @Description Filter by target (target_type with target_id), reviewer or couple
// @Tags tv_reviews
// @Produce json
// @Param target_type query string false "show, season or episode"
// @Param target_id query int false "Target ID, requires target_type"
// @Param reviewer query int false "Reviewer user ID"
// @Param couple_slug query string false "Couple slug"
// @Success 200 {object} utils.StandardResponse{data=[]models.TvShowReview}
// @Failure 400 {object} utils.StandardResponse
// @Router /tv_reviews [get]
func (h *TvReviewHandler) GetAllTvReviews(c *fiber.Ctx) error {
	kind := models.TargetType(c.Query("target_type"))
	if kind != "" && !kind.Valid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid target_type")
	}
	targetID, ok := queryID(c, "target_id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid target_id")
	}
	reviewerID, ok := queryID(c, "reviewer")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid reviewer")
	}

	filter := repository.TvReviewFilter{
		TargetType: kind,
		ReviewerID: reviewerID,
		CoupleSlug: c.Query("couple_slug"),
	}
	if targetID != 0 {
		target, err := models.NewReviewTarget(kind, targetID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "target_id requires a valid target_type")
		}
		filter.Target = target
	}

	reviews, err := h.service.ListReviews(c.Context(), filter)
	if err != nil {
		return respondError(c, h.logger, err, "retrieve TV reviews")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "TV reviews retrieved successfully", reviews)
}

// GetTvReview godoc
// @Summary Get a TV review
// @Tags tv_reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse{data=models.TvShowReview}
// @Failure 404 {object} utils.StandardResponse
// @Router /tv_reviews/{id} [get]
func (h *TvReviewHandler) GetTvReview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	review, err := h.service.GetReview(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "retrieve TV review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "TV review retrieved successfully", review)
}

// CreateTvReview godoc
// @Summary Review a show, season or episode
// @Description Exactly one target must be given and it must match target_type. The reviewer and couple come from the caller.
// @Tags tv_reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body TvReviewRequest true "Review"
// @Success 201 {object} utils.StandardResponse{data=models.TvShowReview}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 401 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /tv_reviews [post]
func (h *TvReviewHandler) CreateTvReview(c *fiber.Ctx) error {
	var req TvReviewRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	review, err := h.service.CreateReview(c.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		return respondError(c, h.logger, err, "create TV review")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "TV review created successfully", review)
}

// UpdateTvReview godoc
// @Summary Update a TV review
// @Description Only rating and justification change; target fields are ignored
// @Tags tv_reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param review body TvReviewUpdateRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.TvShowReview}
// @Failure 403 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /tv_reviews/{id} [put]
// @Router /tv_reviews/{id} [patch]
func (h *TvReviewHandler) UpdateTvReview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}
	var req TvReviewUpdateRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	review, err := h.service.UpdateReview(c.Context(), middleware.CurrentUser(c), id, req.Rating, req.Justification)
	if err != nil {
		return respondError(c, h.logger, err, "update TV review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "TV review updated successfully", review)
}

// DeleteTvReview godoc
// @Summary Delete a TV review
// @Tags tv_reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 403 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /tv_reviews/{id} [delete]
func (h *TvReviewHandler) DeleteTvReview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}
	if err := h.service.DeleteReview(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.logger, err, "delete TV review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "TV review deleted successfully", nil)
}

// GetCoupleShowReviews godoc
// @Summary Shows with one couple's reviews
// @Description Every show, with the couple's show-level reviews keyed by reviewer name
// @Tags stats
// @Produce json
// @Param couple_slug path string true "Couple slug" example(tt)
// @Success 200 {object} utils.StandardResponse{data=[]models.CoupleShowReviews}
// @Failure 400 {object} utils.StandardResponse
// @Router /couple_reviews/{couple_slug}/shows [get]
func (h *TvReviewHandler) GetCoupleShowReviews(c *fiber.Ctx) error {
	rows, err := h.service.CoupleShowReviews(c.Context(), c.Params("couple_slug"))
	if err != nil {
		return respondError(c, h.logger, err, "retrieve couple show reviews")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Couple show reviews retrieved successfully", rows)
}
