package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"
	"movieclub-backend/internal/slug"

	"github.com/sirupsen/logrus"
)

// MovieCatalog fetches movie metadata from an external provider.
type MovieCatalog interface {
	FetchMovie(ctx context.Context, tmdbID int, requireCredits bool) (*catalog.MovieMetadata, error)
}

// MoviePatch carries a partial movie update; nil fields are left alone.
// An empty Slug asks for the slug to be derived again from the title.
type MoviePatch struct {
	Title       *string
	Slug        *string
	Director    *[]string
	Actors      *[]string
	Genres      *[]string
	ReleaseYear *int
	Runtime     *int
	PosterURL   *string
}

type MovieService interface {
	CreateMovie(ctx context.Context, movie *models.Movie) error
	UpdateMovie(ctx context.Context, slug string, patch MoviePatch) (*models.Movie, error)
	DeleteMovie(ctx context.Context, slug string) error
	GetMovieBySlug(ctx context.Context, slug string) (*models.Movie, error)
	GetAllMovies(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error)

	// ImportFromTMDB returns the local movie for tmdbID, creating it from
	// TMDB when missing. created is false when the movie already existed.
	ImportFromTMDB(ctx context.Context, tmdbID int) (movie *models.Movie, created bool, err error)
	RefreshFromTMDB(ctx context.Context, opts RefreshOptions) (*RefreshReport, error)
	GetLastRefreshLog(ctx context.Context) (*models.RefreshLog, error)
}

const maxSlugAttempts = 3

type movieService struct {
	repo    repository.MovieRepository
	catalog MovieCatalog
	posters PosterStore
	logger  *logrus.Logger
}

// NewMovieService wires the movie use cases. posters may be nil when poster
// storage is not configured.
func NewMovieService(repo repository.MovieRepository, movieCatalog MovieCatalog, posters PosterStore, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:    repo,
		catalog: movieCatalog,
		posters: posters,
		logger:  logger,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	movie.Title = strings.TrimSpace(movie.Title)
	if movie.Title == "" {
		return invalid("title", "this field is required")
	}
	movie.Slug = strings.TrimSpace(movie.Slug)
	normalizeLists(movie)

	if movie.TMDBID != nil {
		existing, err := s.repo.FindByTMDBID(ctx, *movie.TMDBID)
		if err != nil {
			return fmt.Errorf("failed to check existing movie: %w", err)
		}
		if existing != nil {
			return invalid("tmdb_id", "movie with tmdb_id %d already exists", *movie.TMDBID)
		}
	}

	if err := s.insertWithUniqueSlug(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return s.duplicateMovieError(ctx, movie)
		}
		return err
	}
	return nil
}

// insertWithUniqueSlug creates movie, deriving a free slug from its title
// when none was supplied. A slug taken between probe and insert is probed
// again.
func (s *movieService) insertWithUniqueSlug(ctx context.Context, movie *models.Movie) error {
	derive := movie.Slug == ""
	for attempt := 1; ; attempt++ {
		if derive {
			candidate, err := slug.Unique(ctx, slug.Derive(movie.Title), s.slugTaken(movie.ID))
			if err != nil {
				return fmt.Errorf("failed to derive slug: %w", err)
			}
			movie.Slug = candidate
		}

		err := s.repo.Create(ctx, movie)
		if err == nil || !derive || attempt == maxSlugAttempts || !errors.Is(err, repository.ErrDuplicate) {
			return err
		}

		taken, terr := s.repo.SlugExists(ctx, movie.Slug, 0)
		if terr != nil || !taken {
			return err
		}
		s.logger.WithField("slug", movie.Slug).Debug("Slug taken concurrently, probing again")
	}
}

func (s *movieService) slugTaken(selfID uint) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, selfID)
	}
}

func (s *movieService) duplicateMovieError(ctx context.Context, movie *models.Movie) error {
	if movie.TMDBID != nil {
		if existing, err := s.repo.FindByTMDBID(ctx, *movie.TMDBID); err == nil && existing != nil {
			return invalid("tmdb_id", "movie with tmdb_id %d already exists", *movie.TMDBID)
		}
	}
	return invalid("slug", "movie with slug %q already exists", movie.Slug)
}

func (s *movieService) UpdateMovie(ctx context.Context, movieSlug string, patch MoviePatch) (*models.Movie, error) {
	existing, err := s.repo.FindBySlug(ctx, movieSlug, false)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound("movie", movieSlug)
	}
	oldPoster := existing.PosterURL

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, invalid("title", "this field may not be blank")
		}
		existing.Title = title
	}
	if patch.Director != nil {
		existing.Director = *patch.Director
	}
	if patch.Actors != nil {
		existing.Actors = *patch.Actors
	}
	if patch.Genres != nil {
		existing.Genres = *patch.Genres
	}
	if patch.ReleaseYear != nil {
		existing.ReleaseYear = patch.ReleaseYear
	}
	if patch.Runtime != nil {
		existing.Runtime = patch.Runtime
	}
	if patch.PosterURL != nil {
		existing.PosterURL = strings.TrimSpace(*patch.PosterURL)
	}
	normalizeLists(existing)

	if patch.Slug != nil {
		existing.Slug = strings.TrimSpace(*patch.Slug)
	}
	if existing.Slug == "" {
		candidate, err := slug.Unique(ctx, slug.Derive(existing.Title), s.slugTaken(existing.ID))
		if err != nil {
			return nil, fmt.Errorf("failed to derive slug: %w", err)
		}
		existing.Slug = candidate
	} else if taken, err := s.repo.SlugExists(ctx, existing.Slug, existing.ID); err != nil {
		return nil, err
	} else if taken {
		return nil, invalid("slug", "movie with slug %q already exists", existing.Slug)
	}

	err = s.repo.Update(ctx, existing, "title", "slug", "director", "actors", "genres", "release_yr", "runtime", "poster_url")
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalid("slug", "movie with slug %q already exists", existing.Slug)
		}
		return nil, err
	}

	if oldPoster != existing.PosterURL {
		s.removePoster(ctx, oldPoster)
	}
	return existing, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieSlug string) error {
	existing, err := s.repo.FindBySlug(ctx, movieSlug, false)
	if err != nil {
		return err
	}
	if existing == nil {
		return notFound("movie", movieSlug)
	}

	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.removePoster(ctx, existing.PosterURL)
	return nil
}

// removePoster deletes an uploaded poster that is no longer referenced.
// Failures are logged only.
func (s *movieService) removePoster(ctx context.Context, posterURL string) {
	if s.posters == nil || !s.posters.Owns(posterURL) {
		return
	}
	if err := s.posters.Delete(ctx, posterURL); err != nil {
		s.logger.WithError(err).WithField("poster_url", posterURL).Warn("Failed to delete old poster")
	}
}

func (s *movieService) GetMovieBySlug(ctx context.Context, movieSlug string) (*models.Movie, error) {
	movie, err := s.repo.FindBySlug(ctx, movieSlug, true)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, notFound("movie", movieSlug)
	}
	return movie, nil
}

func (s *movieService) GetAllMovies(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error) {
	return s.repo.FindAll(ctx, page, limit, search)
}

func (s *movieService) ImportFromTMDB(ctx context.Context, tmdbID int) (*models.Movie, bool, error) {
	if tmdbID <= 0 {
		return nil, false, invalid("tmdb_id", "must be a positive integer")
	}

	existing, err := s.repo.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	meta, err := s.catalog.FetchMovie(ctx, tmdbID, false)
	if err != nil {
		if errors.Is(err, catalog.ErrNotConfigured) {
			return nil, false, err
		}
		s.logger.WithError(err).WithField("tmdb_id", tmdbID).Error("TMDB fetch failed")
		return nil, false, &UpstreamError{Err: err}
	}
	if meta.CreditsErr != nil {
		s.logger.WithError(meta.CreditsErr).WithField("tmdb_id", tmdbID).Warn("TMDB credits unavailable, importing without cast and crew")
	}

	movie := movieFromMetadata(meta, "")
	if err := s.insertWithUniqueSlug(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// A concurrent import won the race on tmdb_id.
			if winner, ferr := s.repo.FindByTMDBID(ctx, tmdbID); ferr == nil && winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, err
	}

	s.logger.WithFields(logrus.Fields{
		"tmdb_id": tmdbID,
		"movie":   movie.ID,
		"slug":    movie.Slug,
	}).Info("Imported movie from TMDB")

	return movie, true, nil
}

func (s *movieService) GetLastRefreshLog(ctx context.Context) (*models.RefreshLog, error) {
	return s.repo.GetLastRefreshLog(ctx)
}

func movieFromMetadata(meta *catalog.MovieMetadata, knownTitle string) *models.Movie {
	tmdbID := meta.TMDBID
	movie := &models.Movie{
		Title:       meta.TitleOr(knownTitle),
		Director:    meta.Director,
		Actors:      meta.Actors,
		Genres:      meta.Genres,
		ReleaseYear: meta.ReleaseYear,
		Runtime:     meta.Runtime,
		PosterURL:   meta.PosterURL,
		TMDBID:      &tmdbID,
	}
	normalizeLists(movie)
	return movie
}

func normalizeLists(movie *models.Movie) {
	if movie.Director == nil {
		movie.Director = []string{}
	}
	if movie.Actors == nil {
		movie.Actors = []string{}
	}
	if movie.Genres == nil {
		movie.Genres = []string{}
	}
}
