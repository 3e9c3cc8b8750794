package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type fakeLookup map[models.ReviewTarget]bool

func (f fakeLookup) TargetExists(_ context.Context, target models.ReviewTarget) (bool, error) {
	return f[target], nil
}

func TestResolveTarget(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	lookup := fakeLookup{
		models.ShowTarget(1):    true,
		models.SeasonTarget(2):  true,
		models.EpisodeTarget(3): true,
	}
	svc := NewTvReviewService(nil, nil, lookup, nil, log)

	cases := []struct {
		name    string
		input   TargetInput
		want    models.ReviewTarget
		wantErr bool
	}{
		{"episode by reference", TargetInput{TargetType: "episode", TvEpisode: uintPtr(3)}, models.EpisodeTarget(3), false},
		{"season by generic id", TargetInput{TargetType: "season", TargetID: uintPtr(2)}, models.SeasonTarget(2), false},
		{"generic id agrees with reference", TargetInput{TargetType: "show", TargetID: uintPtr(1), TvShow: uintPtr(1)}, models.ShowTarget(1), false},
		{"discriminant disagrees", TargetInput{TargetType: "episode", TvShow: uintPtr(1)}, models.ReviewTarget{}, true},
		{"two references", TargetInput{TargetType: "show", TvShow: uintPtr(1), TvSeason: uintPtr(2)}, models.ReviewTarget{}, true},
		{"no reference", TargetInput{TargetType: "show"}, models.ReviewTarget{}, true},
		{"missing type", TargetInput{TvShow: uintPtr(1)}, models.ReviewTarget{}, true},
		{"unknown type", TargetInput{TargetType: "movie", TargetID: uintPtr(1)}, models.ReviewTarget{}, true},
		{"missing entity", TargetInput{TargetType: "episode", TargetID: uintPtr(99)}, models.ReviewTarget{}, true},
		{"generic id disagrees with reference", TargetInput{TargetType: "show", TargetID: uintPtr(4), TvShow: uintPtr(1)}, models.ReviewTarget{}, true},
	}

	for _, tc := range cases {
		got, err := svc.ResolveTarget(context.Background(), tc.input)
		if tc.wantErr {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("%s: err=%v, want validation error", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestTvReview_CreateUpdateDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	show := &models.TvShow{Title: "Severance", TVMazeID: 44933}
	if err := env.shows.CreateShow(ctx, show); err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	season := &models.Season{ShowID: show.ID, SeasonNumber: 1}
	if err := env.shows.CreateSeason(ctx, season); err != nil {
		t.Fatalf("CreateSeason: %v", err)
	}
	mia := env.user(t, "mia")
	other := env.user(t, "zed")

	review, err := env.tvReviews.CreateReview(ctx, mia, TvReviewInput{
		Target: TargetInput{TargetType: "show", TvShow: &show.ID},
		Rating: floatPtr(9),
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.ReviewerID != mia.ID || review.CoupleSlug != "ml" || review.TargetType != models.TargetShow {
		t.Fatalf("review=%+v", review)
	}
	if target, err := review.Target(); err != nil || target != models.ShowTarget(show.ID) {
		t.Fatalf("Target()=%v,%v", target, err)
	}

	// Same reviewer, same show: rejected. Same reviewer, the season: fine.
	_, err = env.tvReviews.CreateReview(ctx, mia, TvReviewInput{
		Target: TargetInput{TargetType: "show", TargetID: &show.ID},
		Rating: floatPtr(5),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate err=%v, want ErrConflict", err)
	}
	if _, err := env.tvReviews.CreateReview(ctx, mia, TvReviewInput{
		Target: TargetInput{TargetType: "season", TargetID: &season.ID},
		Rating: floatPtr(7),
	}); err != nil {
		t.Fatalf("season review: %v", err)
	}

	unknown, err := env.tvReviews.CreateReview(ctx, other, TvReviewInput{
		Target: TargetInput{TargetType: "show", TvShow: &show.ID},
		Rating: floatPtr(4),
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if unknown.CoupleSlug != "uncategorized" {
		t.Fatalf("couple slug=%q, want uncategorized", unknown.CoupleSlug)
	}

	if _, err := env.tvReviews.UpdateReview(ctx, other, review.ID, floatPtr(1), nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err=%v, want ErrForbidden", err)
	}
	if _, err := env.tvReviews.UpdateReview(ctx, mia, review.ID, floatPtr(11), nil); err == nil {
		t.Fatalf("rating 11 accepted")
	}
	updated, err := env.tvReviews.UpdateReview(ctx, mia, review.ID, floatPtr(8.5), strPtr("slow start"))
	if err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}
	stored, _ := env.tvReviews.GetReview(ctx, review.ID)
	if stored.Rating != 8.5 || stored.Justification != "slow start" || stored.TvShowID == nil || *stored.TvShowID != show.ID {
		t.Fatalf("stored=%+v updated=%+v", stored, updated)
	}

	list, err := env.tvReviews.ListReviews(ctx, repository.TvReviewFilter{Target: models.ShowTarget(show.ID)})
	if err != nil || len(list) != 2 {
		t.Fatalf("list=%d err=%v, want 2 show reviews", len(list), err)
	}

	if err := env.tvReviews.DeleteReview(ctx, mia, review.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if _, err := env.tvReviews.GetReview(ctx, review.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestCoupleShowReviews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	show := &models.TvShow{Title: "Severance", TVMazeID: 44933}
	if err := env.shows.CreateShow(ctx, show); err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	if err := env.shows.CreateShow(ctx, &models.TvShow{Title: "Andor", TVMazeID: 53274}); err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	logan := env.user(t, "logan")
	if _, err := env.tvReviews.CreateReview(ctx, logan, TvReviewInput{
		Target:        TargetInput{TargetType: "show", TvShow: &show.ID},
		Rating:        floatPtr(9),
		Justification: "weird",
	}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	rows, err := env.tvReviews.CoupleShowReviews(ctx, "ml")
	if err != nil {
		t.Fatalf("CoupleShowReviews: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(rows))
	}
	// Shows are listed by title: Andor, Severance.
	if len(rows[0].Reviews) != 0 || rows[1].Reviews["Logan"].Review != "weird" {
		t.Fatalf("rows=%+v", rows)
	}

	upper, err := env.tvReviews.CoupleShowReviews(ctx, "ML")
	if err != nil {
		t.Fatalf("CoupleShowReviews(upper case): %v", err)
	}
	if upper[1].Reviews["Logan"].Review != "weird" {
		t.Fatalf("upper-case slug rows=%+v", upper)
	}

	if _, err := env.tvReviews.CoupleShowReviews(ctx, "xx"); err == nil {
		t.Fatalf("unknown couple slug accepted")
	}
}
