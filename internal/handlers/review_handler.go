package handlers

import (
	"movieclub-backend/internal/middleware"
	"movieclub-backend/internal/services"
	"movieclub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllReviews godoc
// @Summary List movie reviews
// @Tags reviews
// @Produce json
// @Param movie query string false "Movie slug"
// @Success 200 {object} utils.StandardResponse{data=[]models.Review}
// @Router /reviews [get]
func (h *ReviewHandler) GetAllReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListReviews(c.Context(), c.Query("movie"))
	if err != nil {
		return respondError(c, h.logger, err, "retrieve reviews")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}

// GetReview godoc
// @Summary Get a movie review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse{data=models.Review}
// @Failure 404 {object} utils.StandardResponse
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	review, err := h.service.GetReview(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "retrieve review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review retrieved successfully", review)
}

// CreateReview godoc
// @Summary Review a movie
// @Description The reviewer and couple are taken from the caller
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body ReviewRequest true "Review"
// @Success 201 {object} utils.StandardResponse{data=models.Review}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 401 {object} utils.StandardResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	review, err := h.service.CreateReview(c.Context(), middleware.CurrentUser(c), services.ReviewInput{
		MovieID:       req.Movie,
		MovieSlug:     req.MovieSlug,
		Rating:        req.Rating,
		Justification: req.RatingJustification,
	})
	if err != nil {
		return respondError(c, h.logger, err, "create review")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", review)
}

// UpdateReview godoc
// @Summary Update a movie review
// @Description Only the author may update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param review body ReviewUpdateRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.Review}
// @Failure 403 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}
	var req ReviewUpdateRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	review, err := h.service.UpdateReview(c.Context(), middleware.CurrentUser(c), id, req.Rating, req.RatingJustification)
	if err != nil {
		return respondError(c, h.logger, err, "update review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", review)
}

// DeleteReview godoc
// @Summary Delete a movie review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 403 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.DeleteReview(c.Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, h.logger, err, "delete review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted successfully", nil)
}

// GetCoupleReviews godoc
// @Summary Movies with one couple's reviews
// @Description Every movie, with the reviews of the couple keyed by reviewer name
// @Tags stats
// @Produce json
// @Param couple_slug path string true "Couple slug" example(tt)
// @Success 200 {object} utils.StandardResponse{data=[]models.CoupleMovieReviews}
// @Failure 400 {object} utils.StandardResponse
// @Router /couple_reviews/{couple_slug} [get]
func (h *ReviewHandler) GetCoupleReviews(c *fiber.Ctx) error {
	rows, err := h.service.CoupleReviews(c.Context(), c.Params("couple_slug"))
	if err != nil {
		return respondError(c, h.logger, err, "retrieve couple reviews")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Couple reviews retrieved successfully", rows)
}

// GetClubAverages godoc
// @Summary Club average ratings
// @Description Mean rating and review count for every reviewed movie
// @Tags stats
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.ClubAverage}
// @Router /club_average_ratings [get]
func (h *ReviewHandler) GetClubAverages(c *fiber.Ctx) error {
	rows, err := h.service.ClubAverages(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "retrieve club averages")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Club averages retrieved successfully", rows)
}
