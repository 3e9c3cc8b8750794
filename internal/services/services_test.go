package services

import (
	"context"
	"io"
	"sync"
	"testing"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/config"
	"movieclub-backend/internal/database/databasetest"
	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type stubMovieCatalog struct {
	mu      sync.Mutex
	movies  map[int]*catalog.MovieMetadata
	errs    map[int]error
	calls   int
	onFetch func(tmdbID int)
}

func (c *stubMovieCatalog) FetchMovie(_ context.Context, tmdbID int, _ bool) (*catalog.MovieMetadata, error) {
	c.mu.Lock()
	c.calls++
	meta, err, hook := c.movies[tmdbID], c.errs[tmdbID], c.onFetch
	c.mu.Unlock()

	if hook != nil {
		hook(tmdbID)
	}
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, &catalog.Error{Provider: catalog.ProviderTMDB, Stage: "details", ID: tmdbID, Err: &catalog.HTTPStatusError{StatusCode: 404}}
	}
	cp := *meta
	return &cp, nil
}

type stubShowCatalog struct {
	show        *catalog.ShowMetadata
	showErr     error
	seasons     []catalog.SeasonMetadata
	seasonsErr  error
	episodes    map[int][]catalog.EpisodeMetadata
	episodeErrs map[int]error
	showCalls   int
}

func (c *stubShowCatalog) FetchShow(_ context.Context, _ int) (*catalog.ShowMetadata, error) {
	c.showCalls++
	if c.showErr != nil {
		return nil, c.showErr
	}
	cp := *c.show
	return &cp, nil
}

func (c *stubShowCatalog) FetchSeasons(_ context.Context, _ int) ([]catalog.SeasonMetadata, error) {
	return c.seasons, c.seasonsErr
}

func (c *stubShowCatalog) FetchEpisodes(_ context.Context, seasonID int) ([]catalog.EpisodeMetadata, error) {
	if err := c.episodeErrs[seasonID]; err != nil {
		return nil, err
	}
	return c.episodes[seasonID], nil
}

type testEnv struct {
	movieRepo    repository.MovieRepository
	showRepo     repository.TvShowRepository
	seasonRepo   repository.SeasonRepository
	episodeRepo  repository.EpisodeRepository
	movieCatalog *stubMovieCatalog
	showCatalog  *stubShowCatalog

	movies    MovieService
	reviews   ReviewService
	shows     TvShowService
	tvReviews TvReviewService
	users     UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := databasetest.New(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	couples := NewCoupleDirectory(config.ClubConfig{
		Couples: []config.CoupleGroup{
			{Slug: "tt", Name: "TrevorTaylor", Members: []string{"trevor", "taylor"}},
			{Slug: "ml", Name: "MiaLogan", Members: []string{"mia", "logan"}},
		},
		FallbackGroup: "uncategorized",
	})

	env := &testEnv{
		movieRepo:    repository.NewMovieRepository(db),
		showRepo:     repository.NewTvShowRepository(db),
		seasonRepo:   repository.NewSeasonRepository(db),
		episodeRepo:  repository.NewEpisodeRepository(db),
		movieCatalog: &stubMovieCatalog{movies: map[int]*catalog.MovieMetadata{}, errs: map[int]error{}},
		showCatalog:  &stubShowCatalog{episodes: map[int][]catalog.EpisodeMetadata{}, episodeErrs: map[int]error{}},
	}
	reviewRepo := repository.NewReviewRepository(db)
	tvReviewRepo := repository.NewTvReviewRepository(db)

	env.movies = NewMovieService(env.movieRepo, env.movieCatalog, nil, log)
	env.reviews = NewReviewService(reviewRepo, env.movieRepo, couples, log)
	env.shows = NewTvShowService(env.showRepo, env.seasonRepo, env.episodeRepo, env.showCatalog, log)
	env.tvReviews = NewTvReviewService(tvReviewRepo, env.showRepo, RepositoryTargetLookup{
		Shows:    env.showRepo,
		Seasons:  env.seasonRepo,
		Episodes: env.episodeRepo,
	}, couples, log)
	env.users = NewUserService(repository.NewUserRepository(db), log)
	return env
}

func (e *testEnv) user(t *testing.T, name string) *models.User {
	t.Helper()
	u, _, err := e.users.CreateUser(context.Background(), name)
	if err != nil {
		t.Fatalf("CreateUser(%q): %v", name, err)
	}
	return u
}

func intPtr(v int) *int           { return &v }
func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
