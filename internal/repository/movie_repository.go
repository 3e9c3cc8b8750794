package repository

import (
	"context"
	"strings"

	"movieclub-backend/internal/database"
	"movieclub-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie, fields ...string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindBySlug(ctx context.Context, slug string, withReviews bool) (*models.Movie, error)
	FindByTMDBID(ctx context.Context, tmdbID int) (*models.Movie, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error)
	ListAll(ctx context.Context) ([]models.Movie, error)
	ListWithTMDBID(ctx context.Context, limit int) ([]models.Movie, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)

	CreateRefreshLog(ctx context.Context, log *models.RefreshLog) error
	GetLastRefreshLog(ctx context.Context) (*models.RefreshLog, error)
}

type movieRepository struct {
	base
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{base: newBase(db)}
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("Reviews").Create(movie).Error)
}

// Update writes the named columns only; with no names every mutable column
// is written.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie, fields ...string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if len(fields) == 0 {
		fields = []string{"title", "slug", "director", "actors", "genres", "release_yr", "runtime", "poster_url", "tmdb_id"}
	}
	fields = append(fields, "updated_at")

	return translate(r.db.WithContext(ctx).Model(movie).Select(fields).Updates(movie).Error)
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &movie, nil
}

func (r *movieRepository) FindBySlug(ctx context.Context, slug string, withReviews bool) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx)
	if withReviews {
		query = query.Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.id") })
	}

	var movie models.Movie
	if err := query.Where("slug = ?", slug).First(&movie).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &movie, nil
}

func (r *movieRepository) FindByTMDBID(ctx context.Context, tmdbID int) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	if err := r.db.WithContext(ctx).Where("tmdb_id = ?", tmdbID).First(&movie).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, page, limit int, search string) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, limit)
	if err := query.Order("title ASC, id ASC").Offset(offset).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

func (r *movieRepository) ListAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error
	return movies, err
}

// ListWithTMDBID returns movies linked to TMDB ordered by id; limit <= 0
// means all of them.
func (r *movieRepository) ListWithTMDBID(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Where("tmdb_id IS NOT NULL").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var movies []models.Movie
	err := query.Find(&movies).Error
	return movies, err
}

func (r *movieRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Movie{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *movieRepository) CreateRefreshLog(ctx context.Context, log *models.RefreshLog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(log).Error
}

func (r *movieRepository) GetLastRefreshLog(ctx context.Context) (*models.RefreshLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var log models.RefreshLog
	if err := r.db.WithContext(ctx).Order("finished_at DESC, id DESC").First(&log).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &log, nil
}
