package routes

import (
	"movieclub-backend/internal/handlers"
	"movieclub-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Movie    *handlers.MovieHandler
	Review   *handlers.ReviewHandler
	TvShow   *handlers.TvShowHandler
	TvReview *handlers.TvReviewHandler
	Upload   *handlers.UploadHandler
}

// Setup registers the API. Reads are public; every write needs a token.
func Setup(app *fiber.App, h Handlers, auth middleware.Authenticator, logger *logrus.Logger) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1", middleware.OptionalUser(auth, logger))
	requireUser := middleware.RequireUser()

	movies := v1.Group("/movies")
	{
		movies.Post("/import_from_tmdb", requireUser, h.Movie.ImportFromTMDB)
		movies.Get("/", h.Movie.GetAllMovies)
		movies.Get("/:slug", h.Movie.GetMovie)
		movies.Post("/", requireUser, h.Movie.CreateMovie)
		movies.Put("/:slug", requireUser, h.Movie.UpdateMovie)
		movies.Patch("/:slug", requireUser, h.Movie.UpdateMovie)
		movies.Delete("/:slug", requireUser, h.Movie.DeleteMovie)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.Get("/", h.Review.GetAllReviews)
		reviews.Get("/:id", h.Review.GetReview)
		reviews.Post("/", requireUser, h.Review.CreateReview)
		reviews.Put("/:id", requireUser, h.Review.UpdateReview)
		reviews.Patch("/:id", requireUser, h.Review.UpdateReview)
		reviews.Delete("/:id", requireUser, h.Review.DeleteReview)
	}

	// Stats
	v1.Get("/couple_reviews/:couple_slug/shows", h.TvReview.GetCoupleShowReviews)
	v1.Get("/couple_reviews/:couple_slug", h.Review.GetCoupleReviews)
	v1.Get("/club_average_ratings", h.Review.GetClubAverages)

	shows := v1.Group("/shows")
	{
		shows.Post("/import_from_tvmaze", requireUser, h.TvShow.ImportFromTVMaze)
		shows.Get("/", h.TvShow.GetAllShows)
		shows.Get("/:slug", h.TvShow.GetShow)
		shows.Post("/", requireUser, h.TvShow.CreateShow)
		shows.Put("/:slug", requireUser, h.TvShow.UpdateShow)
		shows.Patch("/:slug", requireUser, h.TvShow.UpdateShow)
		shows.Delete("/:slug", requireUser, h.TvShow.DeleteShow)
	}

	seasons := v1.Group("/seasons")
	{
		seasons.Get("/", h.TvShow.GetAllSeasons)
		seasons.Get("/:id", h.TvShow.GetSeason)
		seasons.Post("/", requireUser, h.TvShow.CreateSeason)
		seasons.Put("/:id", requireUser, h.TvShow.UpdateSeason)
		seasons.Patch("/:id", requireUser, h.TvShow.UpdateSeason)
		seasons.Delete("/:id", requireUser, h.TvShow.DeleteSeason)
	}

	episodes := v1.Group("/episodes")
	{
		episodes.Get("/", h.TvShow.GetAllEpisodes)
		episodes.Get("/:id", h.TvShow.GetEpisode)
		episodes.Post("/", requireUser, h.TvShow.CreateEpisode)
		episodes.Put("/:id", requireUser, h.TvShow.UpdateEpisode)
		episodes.Patch("/:id", requireUser, h.TvShow.UpdateEpisode)
		episodes.Delete("/:id", requireUser, h.TvShow.DeleteEpisode)
	}

	tvReviews := v1.Group("/tv_reviews")
	{
		tvReviews.Get("/", h.TvReview.GetAllTvReviews)
		tvReviews.Get("/:id", h.TvReview.GetTvReview)
		tvReviews.Post("/", requireUser, h.TvReview.CreateTvReview)
		tvReviews.Put("/:id", requireUser, h.TvReview.UpdateTvReview)
		tvReviews.Patch("/:id", requireUser, h.TvReview.UpdateTvReview)
		tvReviews.Delete("/:id", requireUser, h.TvReview.DeleteTvReview)
	}

	refresh := v1.Group("/refresh")
	{
		refresh.Get("/last-log", h.Movie.GetLastRefreshLog)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", requireUser, h.Upload.GetPresignedURL)
	}
}
