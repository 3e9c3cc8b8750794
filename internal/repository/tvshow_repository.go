package repository

import (
	"context"
	"strings"

	"movieclub-backend/internal/database"
	"movieclub-backend/internal/models"

	"gorm.io/gorm"
)

type TvShowRepository interface {
	Create(ctx context.Context, show *models.TvShow) error
	Update(ctx context.Context, show *models.TvShow) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.TvShow, error)
	FindBySlug(ctx context.Context, slug string, withChildren bool) (*models.TvShow, error)
	FindByTVMazeID(ctx context.Context, tvmazeID int) (*models.TvShow, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]models.TvShow, int64, error)
	ListAll(ctx context.Context) ([]models.TvShow, error)
}

type tvShowRepository struct {
	base
}

func NewTvShowRepository(db *database.Database) TvShowRepository {
	return &tvShowRepository{base: newBase(db)}
}

func (r *tvShowRepository) Create(ctx context.Context, show *models.TvShow) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("Seasons").Create(show).Error)
}

func (r *tvShowRepository) Update(ctx context.Context, show *models.TvShow) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Model(show).
		Select("title", "slug", "summary", "genres", "image_url", "premiered", "creators", "status", "updated_at").
		Updates(show).Error)
}

func (r *tvShowRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.TvShow{}, id).Error
}

func (r *tvShowRepository) FindByID(ctx context.Context, id uint) (*models.TvShow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var show models.TvShow
	if err := r.db.WithContext(ctx).First(&show, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &show, nil
}

func (r *tvShowRepository) FindBySlug(ctx context.Context, slug string, withChildren bool) (*models.TvShow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx)
	if withChildren {
		query = query.
			Preload("Seasons", func(db *gorm.DB) *gorm.DB { return db.Order("seasons.season_number") }).
			Preload("Seasons.Episodes", func(db *gorm.DB) *gorm.DB { return db.Order("episodes.episode_number") })
	}

	var show models.TvShow
	if err := query.Where("slug = ?", slug).First(&show).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &show, nil
}

func (r *tvShowRepository) FindByTVMazeID(ctx context.Context, tvmazeID int) (*models.TvShow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var show models.TvShow
	if err := r.db.WithContext(ctx).Where("tvmaze_id = ?", tvmazeID).First(&show).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &show, nil
}

func (r *tvShowRepository) FindAll(ctx context.Context, page, limit int, search string) ([]models.TvShow, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.TvShow
	var total int64

	query := r.db.WithContext(ctx).Model(&models.TvShow{})
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, limit)
	if err := query.Order("title ASC, id ASC").Offset(offset).Limit(limit).Find(&shows).Error; err != nil {
		return nil, 0, err
	}
	return shows, total, nil
}

func (r *tvShowRepository) ListAll(ctx context.Context) ([]models.TvShow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.TvShow
	err := r.db.WithContext(ctx).Order("title ASC, id ASC").Find(&shows).Error
	return shows, err
}

type SeasonRepository interface {
	Create(ctx context.Context, season *models.Season) error
	Update(ctx context.Context, season *models.Season) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Season, error)
	FindAll(ctx context.Context, showID uint) ([]models.Season, error)
}

type seasonRepository struct {
	base
}

func NewSeasonRepository(db *database.Database) SeasonRepository {
	return &seasonRepository{base: newBase(db)}
}

func (r *seasonRepository) Create(ctx context.Context, season *models.Season) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("Episodes").Create(season).Error)
}

func (r *seasonRepository) Update(ctx context.Context, season *models.Season) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Model(season).
		Select("season_number", "summary", "season_release_year", "season_episode_cnt", "updated_at").
		Updates(season).Error)
}

func (r *seasonRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Season{}, id).Error
}

func (r *seasonRepository) FindByID(ctx context.Context, id uint) (*models.Season, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var season models.Season
	err := r.db.WithContext(ctx).
		Preload("Episodes", func(db *gorm.DB) *gorm.DB { return db.Order("episodes.episode_number") }).
		First(&season, id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &season, nil
}

func (r *seasonRepository) FindAll(ctx context.Context, showID uint) ([]models.Season, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("show_id ASC, season_number ASC")
	if showID != 0 {
		query = query.Where("show_id = ?", showID)
	}

	var seasons []models.Season
	err := query.Find(&seasons).Error
	return seasons, err
}

type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.Episode) error
	CreateBatch(ctx context.Context, episodes []models.Episode) error
	Update(ctx context.Context, episode *models.Episode) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Episode, error)
	FindAll(ctx context.Context, seasonID uint) ([]models.Episode, error)
	ExistingTVMazeIDs(ctx context.Context, ids []int) (map[int]bool, error)
}

type episodeRepository struct {
	base
}

func NewEpisodeRepository(db *database.Database) EpisodeRepository {
	return &episodeRepository{base: newBase(db)}
}

func (r *episodeRepository) Create(ctx context.Context, episode *models.Episode) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(episode).Error)
}

// CreateBatch inserts all episodes in one transaction.
func (r *episodeRepository) CreateBatch(ctx context.Context, episodes []models.Episode) error {
	if len(episodes) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).CreateInBatches(episodes, 100).Error)
}

func (r *episodeRepository) Update(ctx context.Context, episode *models.Episode) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Model(episode).
		Select("episode_number", "episode_title", "air_date", "episode_runtime", "summary", "updated_at").
		Updates(episode).Error)
}

func (r *episodeRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Episode{}, id).Error
}

func (r *episodeRepository) FindByID(ctx context.Context, id uint) (*models.Episode, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &episode, nil
}

func (r *episodeRepository) FindAll(ctx context.Context, seasonID uint) ([]models.Episode, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("season_id ASC, episode_number ASC")
	if seasonID != 0 {
		query = query.Where("season_id = ?", seasonID)
	}

	var episodes []models.Episode
	err := query.Find(&episodes).Error
	return episodes, err
}

// ExistingTVMazeIDs reports which of ids already have a local episode row,
// in one query.
func (r *episodeRepository) ExistingTVMazeIDs(ctx context.Context, ids []int) (map[int]bool, error) {
	existing := make(map[int]bool)
	if len(ids) == 0 {
		return existing, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var found []int
	err := r.db.WithContext(ctx).Model(&models.Episode{}).
		Where("tvmaze_episode_id IN ?", ids).
		Pluck("tvmaze_episode_id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}
