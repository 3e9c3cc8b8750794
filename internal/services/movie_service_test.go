package services

import (
	"context"
	"errors"
	"testing"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/models"
)

func fightClub() *catalog.MovieMetadata {
	return &catalog.MovieMetadata{
		TMDBID:      550,
		Title:       "Fight Club",
		Director:    []string{"David Fincher"},
		Actors:      []string{"Edward Norton", "Brad Pitt"},
		Genres:      []string{"Drama"},
		ReleaseYear: intPtr(1999),
		Runtime:     intPtr(139),
		PosterURL:   "https://image.tmdb.org/t/p/w500/pB8.jpg",
	}
}

func TestImportFromTMDB_CreateThenFetch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.movieCatalog.movies[550] = fightClub()

	movie, created, err := env.movies.ImportFromTMDB(ctx, 550)
	if err != nil {
		t.Fatalf("ImportFromTMDB: %v", err)
	}
	if !created {
		t.Fatalf("first import should create")
	}
	if movie.Slug != "fight-club" || movie.Title != "Fight Club" {
		t.Fatalf("movie=%+v", movie)
	}
	if len(movie.Director) != 1 || movie.Director[0] != "David Fincher" {
		t.Fatalf("director=%v", movie.Director)
	}

	// Upstream data changed; a second import must not refresh.
	env.movieCatalog.movies[550].Title = "Fight Club (Remastered)"

	again, created, err := env.movies.ImportFromTMDB(ctx, 550)
	if err != nil {
		t.Fatalf("second ImportFromTMDB: %v", err)
	}
	if created {
		t.Fatalf("second import should not create")
	}
	if again.ID != movie.ID || again.Title != "Fight Club" {
		t.Fatalf("again=%+v, want unchanged movie %d", again, movie.ID)
	}
	if env.movieCatalog.calls != 1 {
		t.Fatalf("catalog calls=%d, want 1", env.movieCatalog.calls)
	}
}

func TestImportFromTMDB_ProbesSlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.movieCatalog.movies[550] = fightClub()

	if err := env.movies.CreateMovie(ctx, &models.Movie{Title: "Fight Club"}); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}

	movie, _, err := env.movies.ImportFromTMDB(ctx, 550)
	if err != nil {
		t.Fatalf("ImportFromTMDB: %v", err)
	}
	if movie.Slug != "fight-club-2" {
		t.Fatalf("slug=%q, want fight-club-2", movie.Slug)
	}
}

func TestImportFromTMDB_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.movies.ImportFromTMDB(ctx, 404)
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err=%v, want UpstreamError", err)
	}
	if existing, _ := env.movieRepo.FindByTMDBID(ctx, 404); existing != nil {
		t.Fatalf("failed import left a row: %+v", existing)
	}

	_, _, err = env.movies.ImportFromTMDB(ctx, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "tmdb_id" {
		t.Fatalf("err=%v, want tmdb_id validation error", err)
	}
}

func TestImportFromTMDB_ConcurrentImportLoses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.movieCatalog.movies[550] = fightClub()

	var winner models.Movie
	env.movieCatalog.onFetch = func(tmdbID int) {
		// Another request imports the same id while this one is fetching.
		winner = models.Movie{Title: "Fight Club", Slug: "fight-club", TMDBID: intPtr(tmdbID)}
		if err := env.movieRepo.Create(ctx, &winner); err != nil {
			t.Errorf("winner insert: %v", err)
		}
	}

	movie, created, err := env.movies.ImportFromTMDB(ctx, 550)
	if err != nil {
		t.Fatalf("ImportFromTMDB: %v", err)
	}
	if created {
		t.Fatalf("losing import reported created")
	}
	if movie.ID != winner.ID {
		t.Fatalf("movie=%d, want winner %d", movie.ID, winner.ID)
	}
}

func TestCreateMovie_DuplicateTMDBID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.movies.CreateMovie(ctx, &models.Movie{Title: "Alien", TMDBID: intPtr(348)}); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	err := env.movies.CreateMovie(ctx, &models.Movie{Title: "Alien Again", TMDBID: intPtr(348)})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "tmdb_id" {
		t.Fatalf("err=%v, want tmdb_id validation error", err)
	}

	err = env.movies.CreateMovie(ctx, &models.Movie{Title: "Other", Slug: "alien"})
	if !errors.As(err, &verr) || verr.Field != "slug" {
		t.Fatalf("err=%v, want slug validation error", err)
	}
}

func TestUpdateMovie_Slug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alien := &models.Movie{Title: "Alien"}
	if err := env.movies.CreateMovie(ctx, alien); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	if err := env.movies.CreateMovie(ctx, &models.Movie{Title: "Aliens"}); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}

	// Re-deriving its own slug must not count the movie against itself.
	updated, err := env.movies.UpdateMovie(ctx, "alien", MoviePatch{Slug: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateMovie: %v", err)
	}
	if updated.Slug != "alien" {
		t.Fatalf("slug=%q, want alien", updated.Slug)
	}

	// A title change alone keeps the slug.
	updated, err = env.movies.UpdateMovie(ctx, "alien", MoviePatch{Title: strPtr("Aliens")})
	if err != nil {
		t.Fatalf("UpdateMovie: %v", err)
	}
	if updated.Slug != "alien" {
		t.Fatalf("slug=%q, want alien kept", updated.Slug)
	}

	updated, err = env.movies.UpdateMovie(ctx, "alien", MoviePatch{Slug: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateMovie: %v", err)
	}
	if updated.Slug != "aliens-2" {
		t.Fatalf("slug=%q, want aliens-2", updated.Slug)
	}

	_, err = env.movies.UpdateMovie(ctx, "aliens-2", MoviePatch{Slug: strPtr("aliens")})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "slug" {
		t.Fatalf("err=%v, want slug validation error", err)
	}

	if _, err := env.movies.UpdateMovie(ctx, "missing", MoviePatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if movie, err := env.movies.GetMovieBySlug(ctx, "aliens-2"); err != nil || movie.ID != alien.ID {
		t.Fatalf("GetMovieBySlug: movie=%v err=%v", movie, err)
	}
}

func TestRefreshFromTMDB_DryRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.movieCatalog.movies[550] = fightClub()

	movie, _, err := env.movies.ImportFromTMDB(ctx, 550)
	if err != nil {
		t.Fatalf("ImportFromTMDB: %v", err)
	}
	env.movieCatalog.movies[550].Title = "Fight Club (Remastered)"

	report, err := env.movies.RefreshFromTMDB(ctx, RefreshOptions{DryRun: true})
	if err != nil {
		t.Fatalf("RefreshFromTMDB: %v", err)
	}
	if report.Processed != 1 || report.Failed != 0 {
		t.Fatalf("report=%+v", report)
	}
	if len(report.Changes) != 1 || len(report.Changes[0].Changes) != 1 || report.Changes[0].Changes[0].Field != "title" {
		t.Fatalf("changes=%+v, want one title change", report.Changes)
	}

	stored, _ := env.movieRepo.FindByID(ctx, movie.ID)
	if stored.Title != "Fight Club" {
		t.Fatalf("dry run wrote title %q", stored.Title)
	}
	if last, err := env.movies.GetLastRefreshLog(ctx); err != nil || last != nil {
		t.Fatalf("dry run left a log: %+v err=%v", last, err)
	}
}

func TestRefreshFromTMDB_SkipsFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.movieCatalog.movies[550] = fightClub()
	env.movieCatalog.movies[680] = &catalog.MovieMetadata{TMDBID: 680, Title: "Pulp Fiction"}

	fc, _, err := env.movies.ImportFromTMDB(ctx, 550)
	if err != nil {
		t.Fatalf("ImportFromTMDB: %v", err)
	}
	if _, _, err := env.movies.ImportFromTMDB(ctx, 680); err != nil {
		t.Fatalf("ImportFromTMDB: %v", err)
	}

	env.movieCatalog.movies[550].Runtime = intPtr(140)
	env.movieCatalog.errs[680] = errors.New("boom")

	report, err := env.movies.RefreshFromTMDB(ctx, RefreshOptions{})
	if err != nil {
		t.Fatalf("RefreshFromTMDB: %v", err)
	}
	if report.Processed != 1 || report.Failed != 1 {
		t.Fatalf("processed=%d failed=%d, want 1/1", report.Processed, report.Failed)
	}

	stored, _ := env.movieRepo.FindByID(ctx, fc.ID)
	if stored.Runtime == nil || *stored.Runtime != 140 {
		t.Fatalf("runtime=%v, want 140", stored.Runtime)
	}
	if stored.Slug != fc.Slug || stored.TMDBID == nil || *stored.TMDBID != 550 {
		t.Fatalf("identity changed: %+v", stored)
	}

	last, err := env.movies.GetLastRefreshLog(ctx)
	if err != nil || last == nil {
		t.Fatalf("GetLastRefreshLog: %v %v", last, err)
	}
	if last.Status != RefreshPartial || last.Processed != 1 || last.Failed != 1 {
		t.Fatalf("log=%+v", last)
	}
}

func TestDeleteMovie(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.movies.CreateMovie(ctx, &models.Movie{Title: "Heat"}); err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	if err := env.movies.DeleteMovie(ctx, "heat"); err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}
	if err := env.movies.DeleteMovie(ctx, "heat"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestRefreshFromTMDB_StopsWhenCatalogNotConfigured(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.movieCatalog.movies[550] = fightClub()
	env.movieCatalog.movies[680] = &catalog.MovieMetadata{TMDBID: 680, Title: "Pulp Fiction"}
	for _, id := range []int{550, 680} {
		if _, _, err := env.movies.ImportFromTMDB(ctx, id); err != nil {
			t.Fatalf("ImportFromTMDB(%d): %v", id, err)
		}
	}

	env.movieCatalog.errs[550] = catalog.ErrNotConfigured
	env.movieCatalog.errs[680] = catalog.ErrNotConfigured
	calls := env.movieCatalog.calls

	report, err := env.movies.RefreshFromTMDB(ctx, RefreshOptions{})
	if !errors.Is(err, catalog.ErrNotConfigured) {
		t.Fatalf("err=%v, want ErrNotConfigured", err)
	}
	if report != nil {
		t.Fatalf("report=%+v, want nil", report)
	}
	if got := env.movieCatalog.calls - calls; got != 1 {
		t.Fatalf("catalog calls=%d, want the run to stop after 1", got)
	}
	if last, err := env.movies.GetLastRefreshLog(ctx); err != nil || last != nil {
		t.Fatalf("aborted run left a log: %+v err=%v", last, err)
	}
}
