package handlers

import (
	"strings"

	"movieclub-backend/internal/models"
	"movieclub-backend/internal/services"
	"movieclub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TvShowHandler struct {
	service services.TvShowService
	logger  *logrus.Logger
}

func NewTvShowHandler(service services.TvShowService, logger *logrus.Logger) *TvShowHandler {
	return &TvShowHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllShows godoc
// @Summary List TV shows
// @Tags shows
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Search by title"
// @Success 200 {object} utils.StandardResponse{data=[]models.TvShow}
// @Router /shows [get]
func (h *TvShowHandler) GetAllShows(c *fiber.Ctx) error {
	page, limit := pagination(c)

	shows, total, err := h.service.GetAllShows(c.Context(), page, limit, c.Query("search"))
	if err != nil {
		return respondError(c, h.logger, err, "retrieve shows")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows, meta)
}

// GetShow godoc
// @Summary Get TV show by slug
// @Description Get a show with its seasons and episodes
// @Tags shows
// @Produce json
// @Param slug path string true "Show slug"
// @Success 200 {object} utils.StandardResponse{data=models.TvShow}
// @Failure 404 {object} utils.StandardResponse
// @Router /shows/{slug} [get]
func (h *TvShowHandler) GetShow(c *fiber.Ctx) error {
	show, err := h.service.GetShowBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.logger, err, "retrieve show")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Show retrieved successfully", show)
}

// CreateShow godoc
// @Summary Create a TV show
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param show body ShowRequest true "Show"
// @Success 201 {object} utils.StandardResponse{data=models.TvShow}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Router /shows [post]
func (h *TvShowHandler) CreateShow(c *fiber.Ctx) error {
	var req ShowRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	show := &models.TvShow{
		TVMazeID:  req.TVMazeID,
		Title:     req.Title,
		Slug:      req.Slug,
		Summary:   req.Summary,
		Genres:    req.Genres,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		Premiered: parseDate(req.Premiered),
		Creators:  req.Creators,
		Status:    strings.TrimSpace(req.Status),
	}
	if err := h.service.CreateShow(c.Context(), show); err != nil {
		return respondError(c, h.logger, err, "create show")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Show created successfully", show)
}

// UpdateShow godoc
// @Summary Update a TV show
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Show slug"
// @Param show body ShowUpdateRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.TvShow}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 404 {object} utils.StandardResponse
// @Router /shows/{slug} [put]
func (h *TvShowHandler) UpdateShow(c *fiber.Ctx) error {
	var req ShowUpdateRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	show, err := h.service.UpdateShow(c.Context(), c.Params("slug"), req.patch())
	if err != nil {
		return respondError(c, h.logger, err, "update show")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Show updated successfully", show)
}

// DeleteShow godoc
// @Summary Delete a TV show
// @Description Delete a show with its seasons, episodes and reviews
// @Tags shows
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Show slug"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /shows/{slug} [delete]
func (h *TvShowHandler) DeleteShow(c *fiber.Ctx) error {
	if err := h.service.DeleteShow(c.Context(), c.Params("slug")); err != nil {
		return respondError(c, h.logger, err, "delete show")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Show deleted successfully", nil)
}

// ImportFromTVMaze godoc
// @Summary Import a show from TVMaze
// @Description Create the show with its seasons and episodes, or return the existing one
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ImportShowRequest true "TVMaze id"
// @Success 200 {object} utils.StandardResponse{data=models.TvShow} "Already imported"
// @Success 201 {object} utils.StandardResponse{data=models.TvShow} "Imported"
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 409 {object} utils.StandardResponse
// @Failure 502 {object} utils.StandardResponse
// @Router /shows/import_from_tvmaze [post]
func (h *TvShowHandler) ImportFromTVMaze(c *fiber.Ctx) error {
	var req ImportShowRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	show, created, err := h.service.ImportFromTVMaze(c.Context(), req.TVMazeID)
	if err != nil {
		return respondError(c, h.logger, err, "import show")
	}
	if created {
		return utils.SuccessResponse(c, fiber.StatusCreated, "Show imported successfully", show)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Show already imported", show)
}

// GetAllSeasons godoc
// @Summary List seasons
// @Tags seasons
// @Produce json
// @Param show query int false "Show ID"
// @Success 200 {object} utils.StandardResponse{data=[]models.Season}
// @Router /seasons [get]
func (h *TvShowHandler) GetAllSeasons(c *fiber.Ctx) error {
	showID, ok := queryID(c, "show")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid show ID")
	}

	seasons, err := h.service.ListSeasons(c.Context(), showID)
	if err != nil {
		return respondError(c, h.logger, err, "retrieve seasons")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Seasons retrieved successfully", seasons)
}

// GetSeason godoc
// @Summary Get a season
// @Tags seasons
// @Produce json
// @Param id path int true "Season ID"
// @Success 200 {object} utils.StandardResponse{data=models.Season}
// @Failure 404 {object} utils.StandardResponse
// @Router /seasons/{id} [get]
func (h *TvShowHandler) GetSeason(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid season ID")
	}

	season, err := h.service.GetSeason(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "retrieve season")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Season retrieved successfully", season)
}

// CreateSeason godoc
// @Summary Create a season
// @Tags seasons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param season body SeasonRequest true "Season"
// @Success 201 {object} utils.StandardResponse{data=models.Season}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Router /seasons [post]
func (h *TvShowHandler) CreateSeason(c *fiber.Ctx) error {
	var req SeasonRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	season := &models.Season{
		ShowID:         req.Show,
		SeasonNumber:   req.SeasonNumber,
		TVMazeSeasonID: req.TVMazeSeasonID,
		Summary:        req.Summary,
		ReleaseYear:    req.ReleaseYear,
		EpisodeCount:   req.EpisodeCount,
	}
	if err := h.service.CreateSeason(c.Context(), season); err != nil {
		return respondError(c, h.logger, err, "create season")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Season created successfully", season)
}

// UpdateSeason godoc
// @Summary Update a season
// @Tags seasons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Season ID"
// @Param season body SeasonUpdateRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.Season}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 404 {object} utils.StandardResponse
// @Router /seasons/{id} [put]
func (h *TvShowHandler) UpdateSeason(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid season ID")
	}
	var req SeasonUpdateRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	season, err := h.service.UpdateSeason(c.Context(), id, services.SeasonPatch{
		SeasonNumber: req.SeasonNumber,
		Summary:      req.Summary,
		ReleaseYear:  req.ReleaseYear,
		EpisodeCount: req.EpisodeCount,
	})
	if err != nil {
		return respondError(c, h.logger, err, "update season")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Season updated successfully", season)
}

// DeleteSeason godoc
// @Summary Delete a season
// @Tags seasons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Season ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /seasons/{id} [delete]
func (h *TvShowHandler) DeleteSeason(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid season ID")
	}
	if err := h.service.DeleteSeason(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "delete season")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Season deleted successfully", nil)
}

// GetAllEpisodes godoc
// @Summary List episodes
// @Tags episodes
// @Produce json
// @Param season query int false "Season ID"
// @Success 200 {object} utils.StandardResponse{data=[]models.Episode}
// @Router /episodes [get]
func (h *TvShowHandler) GetAllEpisodes(c *fiber.Ctx) error {
	seasonID, ok := queryID(c, "season")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid season ID")
	}

	episodes, err := h.service.ListEpisodes(c.Context(), seasonID)
	if err != nil {
		return respondError(c, h.logger, err, "retrieve episodes")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Episodes retrieved successfully", episodes)
}

// GetEpisode godoc
// @Summary Get an episode
// @Tags episodes
// @Produce json
// @Param id path int true "Episode ID"
// @Success 200 {object} utils.StandardResponse{data=models.Episode}
// @Failure 404 {object} utils.StandardResponse
// @Router /episodes/{id} [get]
func (h *TvShowHandler) GetEpisode(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid episode ID")
	}

	episode, err := h.service.GetEpisode(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "retrieve episode")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Episode retrieved successfully", episode)
}

// CreateEpisode godoc
// @Summary Create an episode
// @Tags episodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param episode body EpisodeRequest true "Episode"
// @Success 201 {object} utils.StandardResponse{data=models.Episode}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Router /episodes [post]
func (h *TvShowHandler) CreateEpisode(c *fiber.Ctx) error {
	var req EpisodeRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	episode := &models.Episode{
		SeasonID:        req.Season,
		EpisodeNumber:   req.EpisodeNumber,
		TVMazeEpisodeID: req.TVMazeEpisodeID,
		Title:           req.Title,
		AirDate:         parseDate(req.AirDate),
		Runtime:         req.Runtime,
		Summary:         req.Summary,
	}
	if err := h.service.CreateEpisode(c.Context(), episode); err != nil {
		return respondError(c, h.logger, err, "create episode")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Episode created successfully", episode)
}

// UpdateEpisode godoc
// @Summary Update an episode
// @Tags episodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Episode ID"
// @Param episode body EpisodeUpdateRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.Episode}
// @Failure 400 {object} utils.StandardResponse{data=utils.ValidationErrors}
// @Failure 404 {object} utils.StandardResponse
// @Router /episodes/{id} [put]
func (h *TvShowHandler) UpdateEpisode(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid episode ID")
	}
	var req EpisodeUpdateRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	episode, err := h.service.UpdateEpisode(c.Context(), id, services.EpisodePatch{
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		AirDate:       parseDate(req.AirDate),
		Runtime:       req.Runtime,
		Summary:       req.Summary,
	})
	if err != nil {
		return respondError(c, h.logger, err, "update episode")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Episode updated successfully", episode)
}

// DeleteEpisode godoc
// @Summary Delete an episode
// @Tags episodes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Episode ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /episodes/{id} [delete]
func (h *TvShowHandler) DeleteEpisode(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid episode ID")
	}
	if err := h.service.DeleteEpisode(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "delete episode")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Episode deleted successfully", nil)
}
