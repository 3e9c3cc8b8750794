package repository

import (
	"context"
	"math"

	"movieclub-backend/internal/database"
	"movieclub-backend/internal/models"

	"gorm.io/datatypes"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	FindAll(ctx context.Context, movieID uint) ([]models.Review, error)
	FindByCoupleGroup(ctx context.Context, group string) ([]models.Review, error)
	ClubAverages(ctx context.Context) ([]models.ClubAverage, error)
}

type reviewRepository struct {
	base
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{base: newBase(db)}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("User").Create(review).Error)
}

// Update writes the reviewer-editable columns.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(review).
		Select("rating", "rating_justification", "updated_at").
		Updates(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &review, nil
}

// FindAll lists reviews, restricted to one movie when movieID is non-zero.
func (r *reviewRepository) FindAll(ctx context.Context, movieID uint) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("id ASC")
	if movieID != 0 {
		query = query.Where("movie_id = ?", movieID)
	}

	var reviews []models.Review
	err := query.Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByCoupleGroup(ctx context.Context, group string) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).Where("couple_id = ?", group).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

type clubAverageRow struct {
	MovieID    uint
	Title      string
	Slug       string
	Director   datatypes.JSONSlice[string]
	Actors     datatypes.JSONSlice[string]
	Genres     datatypes.JSONSlice[string]
	AvgRating  *float64
	NumReviews int64
}

// ClubAverages rolls up every reviewed movie. Null ratings are left out of
// both the mean and the count; movies without review rows are absent.
func (r *reviewRepository) ClubAverages(ctx context.Context) ([]models.ClubAverage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []clubAverageRow
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("movies.id AS movie_id, movies.title, movies.slug, movies.director, movies.actors, movies.genres, " +
			"AVG(reviews.rating) AS avg_rating, COUNT(reviews.rating) AS num_reviews").
		Joins("JOIN movies ON movies.id = reviews.movie_id").
		Group("movies.id").
		Order("movies.title ASC, movies.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]models.ClubAverage, 0, len(rows))
	for _, row := range rows {
		avg := row.AvgRating
		if avg != nil {
			rounded := math.Round(*avg*100) / 100
			avg = &rounded
		}
		results = append(results, models.ClubAverage{
			MovieID:    row.MovieID,
			Title:      row.Title,
			Slug:       row.Slug,
			Director:   row.Director,
			Actors:     row.Actors,
			Genres:     row.Genres,
			AvgRating:  avg,
			NumReviews: row.NumReviews,
		})
	}
	return results, nil
}
