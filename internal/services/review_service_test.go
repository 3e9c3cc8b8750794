package services

import (
	"context"
	"errors"
	"testing"

	"movieclub-backend/internal/config"
	"movieclub-backend/internal/models"
)

func TestCreateReview_ForcesReviewerAndCouple(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	movie := &models.Movie{Title: "Alien"}
	if err := env.movies.CreateMovie(ctx, movie); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	trevor := env.user(t, "Trevor")
	zed := env.user(t, "zed")

	review, err := env.reviews.CreateReview(ctx, trevor, ReviewInput{MovieSlug: "alien", Rating: floatPtr(8), Justification: " tense "})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.Reviewer != "trevor" || review.CoupleID != "TrevorTaylor" || review.UserID != trevor.ID {
		t.Fatalf("review=%+v", review)
	}
	if review.RatingJustification != "tense" {
		t.Fatalf("justification=%q", review.RatingJustification)
	}

	other, err := env.reviews.CreateReview(ctx, zed, ReviewInput{MovieID: movie.ID})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if other.CoupleID != "uncategorized" || other.Rating != nil {
		t.Fatalf("other=%+v, want uncategorized with null rating", other)
	}
}

func TestCreateReview_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	caller := env.user(t, "mia")

	if err := env.movies.CreateMovie(ctx, &models.Movie{Title: "Alien"}); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}

	cases := []struct {
		name  string
		input ReviewInput
		field string
	}{
		{"rating too high", ReviewInput{MovieSlug: "alien", Rating: floatPtr(10.5)}, "rating"},
		{"negative rating", ReviewInput{MovieSlug: "alien", Rating: floatPtr(-1)}, "rating"},
		{"no movie", ReviewInput{Rating: floatPtr(5)}, "movie"},
		{"unknown movie", ReviewInput{MovieID: 999}, "movie"},
	}
	for _, tc := range cases {
		_, err := env.reviews.CreateReview(ctx, caller, tc.input)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != tc.field {
			t.Fatalf("%s: err=%v, want %s validation error", tc.name, err, tc.field)
		}
	}
}

func TestReview_OwnerOnlyMutation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.movies.CreateMovie(ctx, &models.Movie{Title: "Alien"}); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	owner := env.user(t, "taylor")
	intruder := env.user(t, "logan")

	review, err := env.reviews.CreateReview(ctx, owner, ReviewInput{MovieSlug: "alien", Rating: floatPtr(6)})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	if _, err := env.reviews.UpdateReview(ctx, intruder, review.ID, floatPtr(1), nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("intruder update err=%v, want ErrForbidden", err)
	}
	if err := env.reviews.DeleteReview(ctx, intruder, review.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("intruder delete err=%v, want ErrForbidden", err)
	}

	updated, err := env.reviews.UpdateReview(ctx, owner, review.ID, floatPtr(9), strPtr("grew on me"))
	if err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}
	if *updated.Rating != 9 || updated.RatingJustification != "grew on me" {
		t.Fatalf("updated=%+v", updated)
	}

	if err := env.reviews.DeleteReview(ctx, owner, review.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if _, err := env.reviews.GetReview(ctx, review.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestCoupleReviews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, title := range []string{"Alien", "Brazil"} {
		if err := env.movies.CreateMovie(ctx, &models.Movie{Title: title}); err != nil {
			t.Fatalf("CreateMovie: %v", err)
		}
	}
	trevor := env.user(t, "trevor")
	mia := env.user(t, "mia")

	if _, err := env.reviews.CreateReview(ctx, trevor, ReviewInput{MovieSlug: "alien", Rating: floatPtr(8), Justification: "great"}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if _, err := env.reviews.CreateReview(ctx, mia, ReviewInput{MovieSlug: "alien", Rating: floatPtr(3)}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	rows, err := env.reviews.CoupleReviews(ctx, "tt")
	if err != nil {
		t.Fatalf("CoupleReviews: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want every movie", len(rows))
	}
	alien := rows[0].Reviews
	if len(alien) != 1 || alien["Trevor"].Review != "great" || *alien["Trevor"].Rating != 8 {
		t.Fatalf("alien reviews=%+v", alien)
	}
	if rows[1].Reviews == nil || len(rows[1].Reviews) != 0 {
		t.Fatalf("brazil reviews=%+v, want empty map", rows[1].Reviews)
	}

	upper, err := env.reviews.CoupleReviews(ctx, " TT ")
	if err != nil {
		t.Fatalf("CoupleReviews(upper case): %v", err)
	}
	if len(upper) != 2 || upper[0].Reviews["Trevor"].Review != "great" {
		t.Fatalf("upper-case slug rows=%+v", upper)
	}

	_, err = env.reviews.CoupleReviews(ctx, "nope")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != "Invalid couple slug" {
		t.Fatalf("err=%v, want invalid couple slug", err)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"  trevor ": "Trevor",
		"TAYLOR":    "Taylor",
		"":          "",
		"élodie":    "Élodie",
	}
	for in, want := range cases {
		if got := displayName(in); got != want {
			t.Fatalf("displayName(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestCoupleDirectory_Fallback(t *testing.T) {
	d := NewCoupleDirectory(config.ClubConfig{
		Couples: []config.CoupleGroup{{Slug: "ml", Name: "MiaLogan", Members: []string{"mia", "logan"}}},
	})
	if got := d.GroupForUser("stranger"); got != "uncategorized" {
		t.Fatalf("GroupForUser=%q, want uncategorized", got)
	}
	if got := d.SlugForUser(" Mia "); got != "ml" {
		t.Fatalf("SlugForUser=%q, want ml", got)
	}
	for _, slug := range []string{"ml", "ML", " Ml "} {
		g, ok := d.GroupForSlug(slug)
		if !ok || g.Name != "MiaLogan" || g.Slug != "ml" {
			t.Fatalf("GroupForSlug(%q)=%+v,%v", slug, g, ok)
		}
	}
}
