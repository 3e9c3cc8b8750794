package services

import (
	"context"
	"strings"

	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// ReviewInput is a movie review submission. The movie is named by id or,
// when MovieID is zero, by slug.
type ReviewInput struct {
	MovieID       uint
	MovieSlug     string
	Rating        *float64
	Justification string
}

type ReviewService interface {
	CreateReview(ctx context.Context, caller *models.User, input ReviewInput) (*models.Review, error)
	UpdateReview(ctx context.Context, caller *models.User, id uint, rating *float64, justification *string) (*models.Review, error)
	DeleteReview(ctx context.Context, caller *models.User, id uint) error
	GetReview(ctx context.Context, id uint) (*models.Review, error)
	ListReviews(ctx context.Context, movieSlug string) ([]models.Review, error)

	ClubAverages(ctx context.Context) ([]models.ClubAverage, error)
	// CoupleReviews lists every movie with the reviews left by members of
	// the couple behind coupleSlug.
	CoupleReviews(ctx context.Context, coupleSlug string) ([]models.CoupleMovieReviews, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	movies  repository.MovieRepository
	couples *CoupleDirectory
	logger  *logrus.Logger
}

func NewReviewService(reviews repository.ReviewRepository, movies repository.MovieRepository, couples *CoupleDirectory, logger *logrus.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		movies:  movies,
		couples: couples,
		logger:  logger,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, caller *models.User, input ReviewInput) (*models.Review, error) {
	if err := checkRating(input.Rating); err != nil {
		return nil, err
	}

	movie, err := s.resolveMovie(ctx, input)
	if err != nil {
		return nil, err
	}

	// Reviewer and couple always come from the caller, never the payload.
	review := &models.Review{
		MovieID:             movie.ID,
		Reviewer:            caller.Username,
		CoupleID:            s.couples.GroupForUser(caller.Username),
		Rating:              input.Rating,
		RatingJustification: strings.TrimSpace(input.Justification),
		UserID:              caller.ID,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"review":   review.ID,
		"movie":    movie.ID,
		"reviewer": review.Reviewer,
		"couple":   review.CoupleID,
	}).Info("Review created")

	return review, nil
}

func (s *reviewService) resolveMovie(ctx context.Context, input ReviewInput) (*models.Movie, error) {
	if input.MovieID != 0 {
		movie, err := s.movies.FindByID(ctx, input.MovieID)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return nil, invalid("movie", "invalid pk %d - object does not exist", input.MovieID)
		}
		return movie, nil
	}

	movieSlug := strings.TrimSpace(input.MovieSlug)
	if movieSlug == "" {
		return nil, invalid("movie", "this field is required")
	}
	movie, err := s.movies.FindBySlug(ctx, movieSlug, false)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, invalid("movie", "movie %q does not exist", movieSlug)
	}
	return movie, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, caller *models.User, id uint, rating *float64, justification *string) (*models.Review, error) {
	review, err := s.ownedReview(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if rating != nil {
		if err := checkRating(rating); err != nil {
			return nil, err
		}
		review.Rating = rating
	}
	if justification != nil {
		review.RatingJustification = strings.TrimSpace(*justification)
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, caller *models.User, id uint) error {
	if _, err := s.ownedReview(ctx, caller, id); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, id)
}

func (s *reviewService) ownedReview(ctx context.Context, caller *models.User, id uint) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, notFound("review", id)
	}
	if caller == nil || review.UserID != caller.ID {
		return nil, ErrForbidden
	}
	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, notFound("review", id)
	}
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, movieSlug string) ([]models.Review, error) {
	var movieID uint
	if movieSlug != "" {
		movie, err := s.movies.FindBySlug(ctx, movieSlug, false)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return []models.Review{}, nil
		}
		movieID = movie.ID
	}
	return s.reviews.FindAll(ctx, movieID)
}

func (s *reviewService) ClubAverages(ctx context.Context) ([]models.ClubAverage, error) {
	return s.reviews.ClubAverages(ctx)
}

func (s *reviewService) CoupleReviews(ctx context.Context, coupleSlug string) ([]models.CoupleMovieReviews, error) {
	group, ok := s.couples.GroupForSlug(coupleSlug)
	if !ok {
		return nil, invalid("couple_slug", "Invalid couple slug")
	}

	movies, err := s.movies.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindByCoupleGroup(ctx, group.Name)
	if err != nil {
		return nil, err
	}

	byMovie := make(map[uint][]models.Review)
	for _, r := range reviews {
		byMovie[r.MovieID] = append(byMovie[r.MovieID], r)
	}

	results := make([]models.CoupleMovieReviews, 0, len(movies))
	for _, m := range movies {
		entry := models.CoupleMovieReviews{
			MovieID:  m.ID,
			Title:    m.Title,
			Slug:     m.Slug,
			Director: m.Director,
			Actors:   m.Actors,
			Genres:   m.Genres,
			Reviews:  make(map[string]models.CoupleReviewEntry),
		}
		for _, r := range byMovie[m.ID] {
			entry.Reviews[displayName(r.Reviewer)] = models.CoupleReviewEntry{
				Rating: r.Rating,
				Review: r.RatingJustification,
			}
		}
		results = append(results, entry)
	}
	return results, nil
}

func checkRating(rating *float64) error {
	if rating == nil {
		return nil
	}
	if *rating < 0 || *rating > 10 {
		return invalid("rating", "ensure this value is between 0 and 10")
	}
	return nil
}
