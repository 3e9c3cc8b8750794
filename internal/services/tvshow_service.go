package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"
	"movieclub-backend/internal/slug"

	"github.com/sirupsen/logrus"
)

// ShowCatalog fetches TV metadata from an external provider.
type ShowCatalog interface {
	FetchShow(ctx context.Context, tvmazeID int) (*catalog.ShowMetadata, error)
	FetchSeasons(ctx context.Context, tvmazeShowID int) ([]catalog.SeasonMetadata, error)
	FetchEpisodes(ctx context.Context, tvmazeSeasonID int) ([]catalog.EpisodeMetadata, error)
}

type ShowPatch struct {
	Title     *string
	Slug      *string
	Summary   *string
	Genres    *[]string
	ImageURL  *string
	Premiered *time.Time
	Creators  *[]string
	Status    *string
}

type SeasonPatch struct {
	SeasonNumber *int
	Summary      *string
	ReleaseYear  *int
	EpisodeCount *int
}

type EpisodePatch struct {
	EpisodeNumber *int
	Title         *string
	AirDate       *time.Time
	Runtime       *int
	Summary       *string
}

type TvShowService interface {
	CreateShow(ctx context.Context, show *models.TvShow) error
	UpdateShow(ctx context.Context, slug string, patch ShowPatch) (*models.TvShow, error)
	DeleteShow(ctx context.Context, slug string) error
	GetShowBySlug(ctx context.Context, slug string) (*models.TvShow, error)
	GetAllShows(ctx context.Context, page, limit int, search string) ([]models.TvShow, int64, error)
	// ImportFromTVMaze returns the local show for tvmazeID, importing it
	// with its seasons and episodes when missing.
	ImportFromTVMaze(ctx context.Context, tvmazeID int) (show *models.TvShow, created bool, err error)

	CreateSeason(ctx context.Context, season *models.Season) error
	UpdateSeason(ctx context.Context, id uint, patch SeasonPatch) (*models.Season, error)
	DeleteSeason(ctx context.Context, id uint) error
	GetSeason(ctx context.Context, id uint) (*models.Season, error)
	ListSeasons(ctx context.Context, showID uint) ([]models.Season, error)

	CreateEpisode(ctx context.Context, episode *models.Episode) error
	UpdateEpisode(ctx context.Context, id uint, patch EpisodePatch) (*models.Episode, error)
	DeleteEpisode(ctx context.Context, id uint) error
	GetEpisode(ctx context.Context, id uint) (*models.Episode, error)
	ListEpisodes(ctx context.Context, seasonID uint) ([]models.Episode, error)
}

type tvShowService struct {
	shows    repository.TvShowRepository
	seasons  repository.SeasonRepository
	episodes repository.EpisodeRepository
	catalog  ShowCatalog
	logger   *logrus.Logger
}

func NewTvShowService(
	shows repository.TvShowRepository,
	seasons repository.SeasonRepository,
	episodes repository.EpisodeRepository,
	showCatalog ShowCatalog,
	logger *logrus.Logger,
) TvShowService {
	return &tvShowService{
		shows:    shows,
		seasons:  seasons,
		episodes: episodes,
		catalog:  showCatalog,
		logger:   logger,
	}
}

func (s *tvShowService) CreateShow(ctx context.Context, show *models.TvShow) error {
	show.Title = strings.TrimSpace(show.Title)
	if show.Title == "" {
		return invalid("title", "this field is required")
	}
	if show.TVMazeID <= 0 {
		return invalid("tvmaze_id", "this field is required")
	}
	show.Slug = strings.TrimSpace(show.Slug)
	if show.Slug == "" {
		show.Slug = slug.ForShow(show.Title, show.TVMazeID)
	}
	normalizeShowLists(show)

	if err := s.shows.Create(ctx, show); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			if existing, ferr := s.shows.FindByTVMazeID(ctx, show.TVMazeID); ferr == nil && existing != nil {
				return invalid("tvmaze_id", "show with tvmaze_id %d already exists", show.TVMazeID)
			}
			return invalid("slug", "show with slug %q already exists", show.Slug)
		}
		return err
	}
	return nil
}

func (s *tvShowService) UpdateShow(ctx context.Context, showSlug string, patch ShowPatch) (*models.TvShow, error) {
	show, err := s.shows.FindBySlug(ctx, showSlug, false)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, notFound("show", showSlug)
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, invalid("title", "this field may not be blank")
		}
		show.Title = title
	}
	if patch.Summary != nil {
		show.Summary = *patch.Summary
	}
	if patch.Genres != nil {
		show.Genres = *patch.Genres
	}
	if patch.ImageURL != nil {
		show.ImageURL = strings.TrimSpace(*patch.ImageURL)
	}
	if patch.Premiered != nil {
		show.Premiered = patch.Premiered
	}
	if patch.Creators != nil {
		show.Creators = *patch.Creators
	}
	if patch.Status != nil {
		show.Status = strings.TrimSpace(*patch.Status)
	}
	if patch.Slug != nil {
		show.Slug = strings.TrimSpace(*patch.Slug)
	}
	if show.Slug == "" {
		show.Slug = slug.ForShow(show.Title, show.TVMazeID)
	}
	normalizeShowLists(show)

	if err := s.shows.Update(ctx, show); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalid("slug", "show with slug %q already exists", show.Slug)
		}
		return nil, err
	}
	return show, nil
}

func (s *tvShowService) DeleteShow(ctx context.Context, showSlug string) error {
	show, err := s.shows.FindBySlug(ctx, showSlug, false)
	if err != nil {
		return err
	}
	if show == nil {
		return notFound("show", showSlug)
	}
	return s.shows.Delete(ctx, show.ID)
}

func (s *tvShowService) GetShowBySlug(ctx context.Context, showSlug string) (*models.TvShow, error) {
	show, err := s.shows.FindBySlug(ctx, showSlug, true)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, notFound("show", showSlug)
	}
	return show, nil
}

func (s *tvShowService) GetAllShows(ctx context.Context, page, limit int, search string) ([]models.TvShow, int64, error) {
	return s.shows.FindAll(ctx, page, limit, search)
}

func (s *tvShowService) ImportFromTVMaze(ctx context.Context, tvmazeID int) (*models.TvShow, bool, error) {
	if tvmazeID <= 0 {
		return nil, false, invalid("tvmaze_id", "must be a positive integer")
	}

	existing, err := s.shows.FindByTVMazeID(ctx, tvmazeID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	log := s.logger.WithField("tvmaze_id", tvmazeID)

	meta, err := s.catalog.FetchShow(ctx, tvmazeID)
	if err != nil {
		log.WithError(err).Error("TVMaze show fetch failed")
		return nil, false, &UpstreamError{Err: err}
	}
	if meta.CreatorsErr != nil {
		log.WithError(meta.CreatorsErr).Warn("TVMaze crew unavailable, importing without creators")
	}

	title := meta.Title
	if title == "" {
		title = fmt.Sprintf("Show %d", tvmazeID)
	}
	show := &models.TvShow{
		TVMazeID:  tvmazeID,
		Title:     title,
		Slug:      slug.ForShow(title, tvmazeID),
		Summary:   meta.Summary,
		Genres:    meta.Genres,
		ImageURL:  meta.ImageURL,
		Premiered: meta.Premiered,
		Creators:  meta.Creators,
		Status:    meta.Status,
	}
	normalizeShowLists(show)

	if err := s.shows.Create(ctx, show); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, false, err
		}
		// A concurrent import of the same id got there first.
		if winner, ferr := s.shows.FindByTVMazeID(ctx, tvmazeID); ferr == nil && winner != nil {
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("show slug %q is already taken: %w", show.Slug, ErrConflict)
	}
	log.WithField("show", show.ID).Info("Imported show from TVMaze")

	seasons, err := s.catalog.FetchSeasons(ctx, tvmazeID)
	if err != nil {
		log.WithError(err).Warn("TVMaze seasons fetch failed, show imported without seasons")
		return s.reload(ctx, show), true, nil
	}

	for _, sm := range seasons {
		season, err := s.importSeason(ctx, show.ID, sm)
		if err != nil {
			log.WithError(err).WithField("tvmaze_season_id", sm.TVMazeSeasonID).Warn("Failed to create season, skipping")
			continue
		}
		if err := s.importEpisodes(ctx, season, sm.TVMazeSeasonID); err != nil {
			log.WithError(err).WithField("tvmaze_season_id", sm.TVMazeSeasonID).Warn("Failed to import episodes for season")
		}
	}

	return s.reload(ctx, show), true, nil
}

func (s *tvShowService) importSeason(ctx context.Context, showID uint, sm catalog.SeasonMetadata) (*models.Season, error) {
	tvmazeSeasonID := sm.TVMazeSeasonID
	season := &models.Season{
		ShowID:         showID,
		SeasonNumber:   sm.Number,
		TVMazeSeasonID: &tvmazeSeasonID,
		Summary:        sm.Summary,
		ReleaseYear:    sm.ReleaseYear,
		EpisodeCount:   sm.EpisodeCount,
	}
	if err := s.seasons.Create(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

// importEpisodes bulk-creates the season's episodes. Episodes whose TVMaze
// id already exists locally are left out, as are repeated episode numbers
// after their first occurrence.
func (s *tvShowService) importEpisodes(ctx context.Context, season *models.Season, tvmazeSeasonID int) error {
	fetched, err := s.catalog.FetchEpisodes(ctx, tvmazeSeasonID)
	if err != nil {
		return err
	}

	ids := make([]int, 0, len(fetched))
	for _, em := range fetched {
		ids = append(ids, em.TVMazeEpisodeID)
	}
	existing, err := s.episodes.ExistingTVMazeIDs(ctx, ids)
	if err != nil {
		return err
	}

	seenNumber := make(map[int]bool)
	seenID := make(map[int]bool)
	batch := make([]models.Episode, 0, len(fetched))
	for _, em := range fetched {
		if existing[em.TVMazeEpisodeID] || seenID[em.TVMazeEpisodeID] || seenNumber[em.Number] {
			continue
		}
		seenID[em.TVMazeEpisodeID] = true
		seenNumber[em.Number] = true

		tvmazeEpisodeID := em.TVMazeEpisodeID
		batch = append(batch, models.Episode{
			SeasonID:        season.ID,
			EpisodeNumber:   em.Number,
			TVMazeEpisodeID: &tvmazeEpisodeID,
			Title:           em.Title,
			AirDate:         em.AirDate,
			Runtime:         em.Runtime,
			Summary:         em.Summary,
		})
	}

	if skipped := len(fetched) - len(batch); skipped > 0 {
		s.logger.WithFields(logrus.Fields{
			"season":  season.ID,
			"skipped": skipped,
		}).Debug("Skipped existing or repeated episodes")
	}
	return s.episodes.CreateBatch(ctx, batch)
}

// reload returns the show with its seasons and episodes, falling back to
// the bare row if the read fails.
func (s *tvShowService) reload(ctx context.Context, show *models.TvShow) *models.TvShow {
	full, err := s.shows.FindBySlug(ctx, show.Slug, true)
	if err != nil || full == nil {
		return show
	}
	return full
}

func (s *tvShowService) CreateSeason(ctx context.Context, season *models.Season) error {
	if season.ShowID == 0 {
		return invalid("show", "this field is required")
	}
	show, err := s.shows.FindByID(ctx, season.ShowID)
	if err != nil {
		return err
	}
	if show == nil {
		return invalid("show", "invalid pk %d - object does not exist", season.ShowID)
	}

	if err := s.seasons.Create(ctx, season); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return invalid("season_number", "season %d already exists for this show", season.SeasonNumber)
		}
		return err
	}
	return nil
}

func (s *tvShowService) UpdateSeason(ctx context.Context, id uint, patch SeasonPatch) (*models.Season, error) {
	season, err := s.seasons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, notFound("season", id)
	}

	if patch.SeasonNumber != nil {
		season.SeasonNumber = *patch.SeasonNumber
	}
	if patch.Summary != nil {
		season.Summary = *patch.Summary
	}
	if patch.ReleaseYear != nil {
		season.ReleaseYear = patch.ReleaseYear
	}
	if patch.EpisodeCount != nil {
		season.EpisodeCount = *patch.EpisodeCount
	}

	if err := s.seasons.Update(ctx, season); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalid("season_number", "season %d already exists for this show", season.SeasonNumber)
		}
		return nil, err
	}
	return season, nil
}

func (s *tvShowService) DeleteSeason(ctx context.Context, id uint) error {
	if _, err := s.GetSeason(ctx, id); err != nil {
		return err
	}
	return s.seasons.Delete(ctx, id)
}

func (s *tvShowService) GetSeason(ctx context.Context, id uint) (*models.Season, error) {
	season, err := s.seasons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, notFound("season", id)
	}
	return season, nil
}

func (s *tvShowService) ListSeasons(ctx context.Context, showID uint) ([]models.Season, error) {
	return s.seasons.FindAll(ctx, showID)
}

func (s *tvShowService) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if episode.SeasonID == 0 {
		return invalid("season", "this field is required")
	}
	season, err := s.seasons.FindByID(ctx, episode.SeasonID)
	if err != nil {
		return err
	}
	if season == nil {
		return invalid("season", "invalid pk %d - object does not exist", episode.SeasonID)
	}
	episode.Title = strings.TrimSpace(episode.Title)

	if err := s.episodes.Create(ctx, episode); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return invalid("episode_number", "episode %d already exists for this season", episode.EpisodeNumber)
		}
		return err
	}
	return nil
}

func (s *tvShowService) UpdateEpisode(ctx context.Context, id uint, patch EpisodePatch) (*models.Episode, error) {
	episode, err := s.GetEpisode(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.EpisodeNumber != nil {
		episode.EpisodeNumber = *patch.EpisodeNumber
	}
	if patch.Title != nil {
		episode.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.AirDate != nil {
		episode.AirDate = patch.AirDate
	}
	if patch.Runtime != nil {
		episode.Runtime = patch.Runtime
	}
	if patch.Summary != nil {
		episode.Summary = *patch.Summary
	}

	if err := s.episodes.Update(ctx, episode); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalid("episode_number", "episode %d already exists for this season", episode.EpisodeNumber)
		}
		return nil, err
	}
	return episode, nil
}

func (s *tvShowService) DeleteEpisode(ctx context.Context, id uint) error {
	if _, err := s.GetEpisode(ctx, id); err != nil {
		return err
	}
	return s.episodes.Delete(ctx, id)
}

func (s *tvShowService) GetEpisode(ctx context.Context, id uint) (*models.Episode, error) {
	episode, err := s.episodes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, notFound("episode", id)
	}
	return episode, nil
}

func (s *tvShowService) ListEpisodes(ctx context.Context, seasonID uint) ([]models.Episode, error) {
	return s.episodes.FindAll(ctx, seasonID)
}

func normalizeShowLists(show *models.TvShow) {
	if show.Genres == nil {
		show.Genres = []string{}
	}
	if show.Creators == nil {
		show.Creators = []string{}
	}
}
