package handlers

import (
	"strings"

	"movieclub-backend/internal/models"
	"movieclub-backend/internal/services"
	"movieclub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description List movies ordered by title, with pagination and a title search
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Search by title"
// @Success 200 {object} utils.StandardResponse{data=[]models.Movie}
// @Failure 500 {object} utils.StandardResponse
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	page, limit := pagination(c)

	movies, total, err := h.service.GetAllMovies(c.Context(), page, limit, c.Query("search"))
	if err != nil {
		return respondError(c, h.logger, err, "retrieve movies")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovie godoc
// @Summary Get movie by slug
// @Description Get a single movie with its reviews
// @Tags movies
// @Produce json
// @Param slug path string true "Movie slug"
// @Success 200 {object} utils.StandardResponse{data=models.Movie}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{slug} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	movie, err := h.service.GetMovieBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.logger, err, "retrieve movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Create a movie directly. The slug is derived from the title when omitted.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movie body MovieRequest true "Movie"
// @Success 201 {object} utils.StandardResponse{data=models.Movie}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 401 {object} utils.StandardResponse
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	movie := &models.Movie{
		Title:       req.Title,
		Slug:        req.Slug,
		Director:    req.Director,
		Actors:      req.Actors,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		Runtime:     req.Runtime,
		PosterURL:   strings.TrimSpace(req.PosterURL),
		TMDBID:      req.TMDBID,
	}
	if err := h.service.CreateMovie(c.Context(), movie); err != nil {
		return respondError(c, h.logger, err, "create movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Partially update a movie. An empty slug is derived again from the title.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Movie slug"
// @Param movie body MovieUpdateRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.Movie}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{slug} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	var req MovieUpdateRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	movie, err := h.service.UpdateMovie(c.Context(), c.Params("slug"), req.patch())
	if err != nil {
		return respondError(c, h.logger, err, "update movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie together with its reviews
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Movie slug"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{slug} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	if err := h.service.DeleteMovie(c.Context(), c.Params("slug")); err != nil {
		return respondError(c, h.logger, err, "delete movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// ImportFromTMDB godoc
// @Summary Import a movie from TMDB
// @Description Create the movie for a TMDB id, or return the existing one unchanged
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ImportMovieRequest true "TMDB id"
// @Success 200 {object} utils.StandardResponse{data=models.Movie} "Already imported"
// @Success 201 {object} utils.StandardResponse{data=models.Movie} "Imported"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 502 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /movies/import_from_tmdb [post]
func (h *MovieHandler) ImportFromTMDB(c *fiber.Ctx) error {
	var req ImportMovieRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	movie, created, err := h.service.ImportFromTMDB(c.Context(), req.TMDBID)
	if err != nil {
		return respondError(c, h.logger, err, "import movie")
	}

	if created {
		return utils.SuccessResponse(c, fiber.StatusCreated, "Movie imported successfully", movie)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie already imported", movie)
}

// GetLastRefreshLog godoc
// @Summary Last TMDB refresh
// @Description Get the log entry of the most recent bulk refresh
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.RefreshLog}
// @Failure 404 {object} utils.StandardResponse
// @Router /refresh/last-log [get]
func (h *MovieHandler) GetLastRefreshLog(c *fiber.Ctx) error {
	entry, err := h.service.GetLastRefreshLog(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "retrieve refresh log")
	}
	if entry == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No refresh has run yet")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Refresh log retrieved successfully", entry)
}
