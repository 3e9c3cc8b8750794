package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// TargetInput is the raw target of a TV review submission. Either a generic
// TargetID with TargetType, or one of the typed references, names the target.
type TargetInput struct {
	TargetType string
	TargetID   *uint
	TvShow     *uint
	TvSeason   *uint
	TvEpisode  *uint
}

type TvReviewInput struct {
	Target        TargetInput
	Rating        *float64
	Justification string
}

// TargetLookup reports whether the entity a target points at exists.
type TargetLookup interface {
	TargetExists(ctx context.Context, target models.ReviewTarget) (bool, error)
}

type TvReviewService interface {
	ResolveTarget(ctx context.Context, input TargetInput) (models.ReviewTarget, error)

	CreateReview(ctx context.Context, caller *models.User, input TvReviewInput) (*models.TvShowReview, error)
	// UpdateReview applies rating and justification only; the target of a
	// review never changes.
	UpdateReview(ctx context.Context, caller *models.User, id uint, rating *float64, justification *string) (*models.TvShowReview, error)
	DeleteReview(ctx context.Context, caller *models.User, id uint) error
	GetReview(ctx context.Context, id uint) (*models.TvShowReview, error)
	ListReviews(ctx context.Context, filter repository.TvReviewFilter) ([]models.TvShowReview, error)

	CoupleShowReviews(ctx context.Context, coupleSlug string) ([]models.CoupleShowReviews, error)
}

type tvReviewService struct {
	reviews repository.TvReviewRepository
	shows   repository.TvShowRepository
	lookup  TargetLookup
	couples *CoupleDirectory
	logger  *logrus.Logger
}

func NewTvReviewService(
	reviews repository.TvReviewRepository,
	shows repository.TvShowRepository,
	lookup TargetLookup,
	couples *CoupleDirectory,
	logger *logrus.Logger,
) TvReviewService {
	return &tvReviewService{
		reviews: reviews,
		shows:   shows,
		lookup:  lookup,
		couples: couples,
		logger:  logger,
	}
}

// ResolveTarget turns a submission into exactly one existing target. The
// discriminant must agree with the single reference that is set.
func (s *tvReviewService) ResolveTarget(ctx context.Context, input TargetInput) (models.ReviewTarget, error) {
	kind := models.TargetType(strings.TrimSpace(input.TargetType))
	if kind == "" {
		return models.ReviewTarget{}, invalid("target_type", "this field is required")
	}
	if !kind.Valid() {
		return models.ReviewTarget{}, invalid("target_type", "%q is not a valid choice", input.TargetType)
	}

	refs := map[models.TargetType]*uint{
		models.TargetShow:    input.TvShow,
		models.TargetSeason:  input.TvSeason,
		models.TargetEpisode: input.TvEpisode,
	}
	if input.TargetID != nil {
		if existing := refs[kind]; existing != nil && *existing != *input.TargetID {
			return models.ReviewTarget{}, invalid("target_id", "target_id does not match the %s reference", kind)
		}
		refs[kind] = input.TargetID
	}

	set := 0
	for _, ref := range refs {
		if ref != nil {
			set++
		}
	}
	if set != 1 {
		return models.ReviewTarget{}, invalid("target", "exactly one of tv_show_type, tv_season_type, tv_episode_type must be set")
	}

	ref := refs[kind]
	if ref == nil {
		return models.ReviewTarget{}, invalid("target_type", "target_type %q does not match the provided reference", kind)
	}

	target, err := models.NewReviewTarget(kind, *ref)
	if err != nil {
		return models.ReviewTarget{}, invalid("target_id", "%s", err.Error())
	}

	ok, err := s.lookup.TargetExists(ctx, target)
	if err != nil {
		return models.ReviewTarget{}, err
	}
	if !ok {
		return models.ReviewTarget{}, invalid("target_id", "%s %d does not exist", kind, *ref)
	}
	return target, nil
}

func (s *tvReviewService) CreateReview(ctx context.Context, caller *models.User, input TvReviewInput) (*models.TvShowReview, error) {
	if input.Rating == nil {
		return nil, invalid("rating", "this field is required")
	}
	if err := checkRating(input.Rating); err != nil {
		return nil, err
	}

	target, err := s.ResolveTarget(ctx, input.Target)
	if err != nil {
		return nil, err
	}

	review := &models.TvShowReview{
		ReviewerID:    caller.ID,
		ReviewerName:  caller.Username,
		CoupleSlug:    s.couples.SlugForUser(caller.Username),
		Rating:        *input.Rating,
		Justification: strings.TrimSpace(input.Justification),
	}
	target.ApplyTo(review)

	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("you have already reviewed this %s: %w", target.Kind(), ErrConflict)
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"review":   review.ID,
		"target":   target.String(),
		"reviewer": caller.Username,
	}).Info("TV review created")

	return review, nil
}

func (s *tvReviewService) UpdateReview(ctx context.Context, caller *models.User, id uint, rating *float64, justification *string) (*models.TvShowReview, error) {
	review, err := s.ownedReview(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if rating != nil {
		if err := checkRating(rating); err != nil {
			return nil, err
		}
		review.Rating = *rating
	}
	if justification != nil {
		review.Justification = strings.TrimSpace(*justification)
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *tvReviewService) DeleteReview(ctx context.Context, caller *models.User, id uint) error {
	if _, err := s.ownedReview(ctx, caller, id); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, id)
}

func (s *tvReviewService) ownedReview(ctx context.Context, caller *models.User, id uint) (*models.TvShowReview, error) {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller == nil || review.ReviewerID != caller.ID {
		return nil, ErrForbidden
	}
	return review, nil
}

func (s *tvReviewService) GetReview(ctx context.Context, id uint) (*models.TvShowReview, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, notFound("tv review", id)
	}
	return review, nil
}

func (s *tvReviewService) ListReviews(ctx context.Context, filter repository.TvReviewFilter) ([]models.TvShowReview, error) {
	return s.reviews.FindAll(ctx, filter)
}

func (s *tvReviewService) CoupleShowReviews(ctx context.Context, coupleSlug string) ([]models.CoupleShowReviews, error) {
	group, ok := s.couples.GroupForSlug(coupleSlug)
	if !ok {
		return nil, invalid("couple_slug", "Invalid couple slug")
	}

	shows, err := s.shows.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindAll(ctx, repository.TvReviewFilter{
		TargetType: models.TargetShow,
		CoupleSlug: group.Slug,
	})
	if err != nil {
		return nil, err
	}

	byShow := make(map[uint][]models.TvShowReview)
	for _, r := range reviews {
		if r.TvShowID != nil {
			byShow[*r.TvShowID] = append(byShow[*r.TvShowID], r)
		}
	}

	results := make([]models.CoupleShowReviews, 0, len(shows))
	for _, show := range shows {
		entry := models.CoupleShowReviews{
			ShowID:  show.ID,
			Title:   show.Title,
			Slug:    show.Slug,
			Genres:  show.Genres,
			Reviews: make(map[string]models.CoupleReviewEntry),
		}
		for _, r := range byShow[show.ID] {
			rating := r.Rating
			entry.Reviews[displayName(r.ReviewerName)] = models.CoupleReviewEntry{
				Rating: &rating,
				Review: r.Justification,
			}
		}
		results = append(results, entry)
	}
	return results, nil
}

// RepositoryTargetLookup checks targets against the catalog tables.
type RepositoryTargetLookup struct {
	Shows    repository.TvShowRepository
	Seasons  repository.SeasonRepository
	Episodes repository.EpisodeRepository
}

func (l RepositoryTargetLookup) TargetExists(ctx context.Context, target models.ReviewTarget) (bool, error) {
	switch target.Kind() {
	case models.TargetShow:
		show, err := l.Shows.FindByID(ctx, target.ID())
		return show != nil, err
	case models.TargetSeason:
		season, err := l.Seasons.FindByID(ctx, target.ID())
		return season != nil, err
	case models.TargetEpisode:
		episode, err := l.Episodes.FindByID(ctx, target.ID())
		return episode != nil, err
	}
	return false, nil
}
