package repository

import (
	"context"

	"movieclub-backend/internal/database"
	"movieclub-backend/internal/models"
)

// TvReviewFilter narrows a TV review listing; zero fields match anything.
type TvReviewFilter struct {
	Target     models.ReviewTarget
	TargetType models.TargetType
	ReviewerID uint
	CoupleSlug string
}

type TvReviewRepository interface {
	Create(ctx context.Context, review *models.TvShowReview) error
	Update(ctx context.Context, review *models.TvShowReview) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.TvShowReview, error)
	FindAll(ctx context.Context, filter TvReviewFilter) ([]models.TvShowReview, error)
}

type tvReviewRepository struct {
	base
}

func NewTvReviewRepository(db *database.Database) TvReviewRepository {
	return &tvReviewRepository{base: newBase(db)}
}

func (r *tvReviewRepository) Create(ctx context.Context, review *models.TvShowReview) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).
		Omit("TvShow", "TvSeason", "TvEpisode", "Owner").
		Create(review).Error)
}

// Update writes rating and justification only; the target columns are
// never part of an update.
func (r *tvReviewRepository) Update(ctx context.Context, review *models.TvShowReview) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(review).
		Select("rating", "justification", "updated_at").
		Updates(review).Error
}

func (r *tvReviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.TvShowReview{}, id).Error
}

func (r *tvReviewRepository) FindByID(ctx context.Context, id uint) (*models.TvShowReview, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.TvShowReview
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &review, nil
}

func (r *tvReviewRepository) FindAll(ctx context.Context, filter TvReviewFilter) ([]models.TvShowReview, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("id ASC")
	if !filter.Target.IsZero() {
		query = query.Where("target_type = ?", filter.Target.Kind())
		switch filter.Target.Kind() {
		case models.TargetShow:
			query = query.Where("tv_show_id = ?", filter.Target.ID())
		case models.TargetSeason:
			query = query.Where("tv_season_id = ?", filter.Target.ID())
		case models.TargetEpisode:
			query = query.Where("tv_episode_id = ?", filter.Target.ID())
		}
	} else if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}
	if filter.ReviewerID != 0 {
		query = query.Where("reviewer_id = ?", filter.ReviewerID)
	}
	if filter.CoupleSlug != "" {
		query = query.Where("couple_slug = ?", filter.CoupleSlug)
	}

	var reviews []models.TvShowReview
	err := query.Find(&reviews).Error
	return reviews, err
}
