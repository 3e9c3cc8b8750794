package repository

import (
	"context"
	"errors"
	"testing"

	"movieclub-backend/internal/database"
	"movieclub-backend/internal/database/databasetest"
	"movieclub-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func seedUser(t *testing.T, db *database.Database, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, APIToken: "token-" + name}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func seedMovie(t *testing.T, repo MovieRepository, title, slug string) *models.Movie {
	t.Helper()
	m := &models.Movie{Title: title, Slug: slug, Director: []string{"D"}}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("create movie %q: %v", title, err)
	}
	return m
}

func TestClubAverages(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	reviews := NewReviewRepository(db)
	user := seedUser(t, db, "trevor")

	x := seedMovie(t, movies, "Movie X", "movie-x")
	seedMovie(t, movies, "Unreviewed", "unreviewed")
	y := seedMovie(t, movies, "Movie Y", "movie-y")

	for _, rating := range []*float64{floatPtr(8), floatPtr(6), nil} {
		r := &models.Review{MovieID: x.ID, CoupleID: "TrevorTaylor", Reviewer: "trevor", Rating: rating, UserID: user.ID}
		if err := reviews.Create(ctx, r); err != nil {
			t.Fatalf("create review: %v", err)
		}
	}
	for _, rating := range []float64{7, 8, 8} {
		r := &models.Review{MovieID: y.ID, CoupleID: "TrevorTaylor", Reviewer: "trevor", Rating: floatPtr(rating), UserID: user.ID}
		if err := reviews.Create(ctx, r); err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	got, err := reviews.ClubAverages(ctx)
	if err != nil {
		t.Fatalf("ClubAverages: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2 (unreviewed movie absent): %+v", len(got), got)
	}
	byID := map[uint]models.ClubAverage{}
	for _, avg := range got {
		byID[avg.MovieID] = avg
	}

	gx := byID[x.ID]
	if gx.AvgRating == nil || *gx.AvgRating != 7.0 || gx.NumReviews != 2 {
		t.Fatalf("movie X avg=%v count=%d, want 7.0 and 2", gx.AvgRating, gx.NumReviews)
	}
	if len(gx.Director) != 1 || gx.Director[0] != "D" {
		t.Fatalf("movie X director=%v", gx.Director)
	}
	gy := byID[y.ID]
	if gy.AvgRating == nil || *gy.AvgRating != 7.67 || gy.NumReviews != 3 {
		t.Fatalf("movie Y avg=%v count=%d, want 7.67 and 3", gy.AvgRating, gy.NumReviews)
	}
}

func TestMovieRepository_SlugExistsExcludesSelf(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	m := seedMovie(t, movies, "Heat", "heat")

	taken, err := movies.SlugExists(ctx, "heat", 0)
	if err != nil || !taken {
		t.Fatalf("SlugExists(heat,0)=%v,%v", taken, err)
	}
	taken, err = movies.SlugExists(ctx, "heat", m.ID)
	if err != nil || taken {
		t.Fatalf("SlugExists(heat,self)=%v,%v, want false", taken, err)
	}
}

func TestMovieRepository_UniqueTMDBID(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)

	if err := movies.Create(ctx, &models.Movie{Title: "A", Slug: "a", TMDBID: intPtr(550)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := movies.Create(ctx, &models.Movie{Title: "B", Slug: "b", TMDBID: intPtr(550)})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err=%v, want ErrDuplicate", err)
	}
	// Movies without an external id may coexist.
	if err := movies.Create(ctx, &models.Movie{Title: "C", Slug: "c"}); err != nil {
		t.Fatalf("create c: %v", err)
	}
	if err := movies.Create(ctx, &models.Movie{Title: "D", Slug: "d"}); err != nil {
		t.Fatalf("create d: %v", err)
	}

	linked, err := movies.ListWithTMDBID(ctx, 0)
	if err != nil || len(linked) != 1 {
		t.Fatalf("ListWithTMDBID=%d,%v, want 1", len(linked), err)
	}
}

func TestMovieRepository_UpdateSelectedFields(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	m := seedMovie(t, movies, "Old", "old")

	m.Title = "New"
	m.Slug = "should-not-change"
	m.Runtime = intPtr(99)
	if err := movies.Update(ctx, m, "title", "runtime"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := movies.FindByID(ctx, m.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID=%v,%v", got, err)
	}
	if got.Title != "New" || got.Slug != "old" || got.Runtime == nil || *got.Runtime != 99 {
		t.Fatalf("got=%+v", got)
	}
}

func TestTvReviewRepository_UniquePerTargetKind(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	user := seedUser(t, db, "mia")

	show := &models.TvShow{TVMazeID: 1, Title: "S", Slug: "s-1"}
	if err := NewTvShowRepository(db).Create(ctx, show); err != nil {
		t.Fatalf("create show: %v", err)
	}
	season := &models.Season{ShowID: show.ID, SeasonNumber: 1}
	if err := NewSeasonRepository(db).Create(ctx, season); err != nil {
		t.Fatalf("create season: %v", err)
	}
	episode := &models.Episode{SeasonID: season.ID, EpisodeNumber: 1}
	if err := NewEpisodeRepository(db).Create(ctx, episode); err != nil {
		t.Fatalf("create episode: %v", err)
	}

	repo := NewTvReviewRepository(db)
	newReview := func(target models.ReviewTarget) *models.TvShowReview {
		r := &models.TvShowReview{ReviewerID: user.ID, Rating: 7}
		target.ApplyTo(r)
		return r
	}

	if err := repo.Create(ctx, newReview(models.EpisodeTarget(episode.ID))); err != nil {
		t.Fatalf("first episode review: %v", err)
	}
	if err := repo.Create(ctx, newReview(models.EpisodeTarget(episode.ID))); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second episode review err=%v, want ErrDuplicate", err)
	}
	if err := repo.Create(ctx, newReview(models.SeasonTarget(season.ID))); err != nil {
		t.Fatalf("season review: %v", err)
	}
	if err := repo.Create(ctx, newReview(models.ShowTarget(show.ID))); err != nil {
		t.Fatalf("show review: %v", err)
	}

	got, err := repo.FindAll(ctx, TvReviewFilter{Target: models.SeasonTarget(season.ID)})
	if err != nil || len(got) != 1 || got[0].TvSeasonID == nil || *got[0].TvSeasonID != season.ID {
		t.Fatalf("FindAll(season)=%+v,%v", got, err)
	}

	// Deleting the show cascades through seasons, episodes and their reviews.
	if err := NewTvShowRepository(db).Delete(ctx, show.ID); err != nil {
		t.Fatalf("delete show: %v", err)
	}
	left, _ := repo.FindAll(ctx, TvReviewFilter{})
	if len(left) != 0 {
		t.Fatalf("reviews after show delete=%d, want 0", len(left))
	}
}

func TestEpisodeRepository_ExistingTVMazeIDs(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()

	show := &models.TvShow{TVMazeID: 2, Title: "T", Slug: "t-2"}
	_ = NewTvShowRepository(db).Create(ctx, show)
	season := &models.Season{ShowID: show.ID, SeasonNumber: 1}
	_ = NewSeasonRepository(db).Create(ctx, season)

	episodes := NewEpisodeRepository(db)
	batch := []models.Episode{
		{SeasonID: season.ID, EpisodeNumber: 1, TVMazeEpisodeID: intPtr(10)},
		{SeasonID: season.ID, EpisodeNumber: 2, TVMazeEpisodeID: intPtr(11)},
	}
	if err := episodes.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := episodes.ExistingTVMazeIDs(ctx, []int{10, 12})
	if err != nil {
		t.Fatalf("ExistingTVMazeIDs: %v", err)
	}
	if !got[10] || got[12] || len(got) != 1 {
		t.Fatalf("existing=%v, want {10}", got)
	}
}
