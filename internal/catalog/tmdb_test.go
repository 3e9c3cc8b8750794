package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movieclub-backend/internal/config"
)

func newTMDBStub(t *testing.T, creditsStatus int) (*TMDBClient, *[]string) {
	t.Helper()
	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		if r.URL.Query().Get("api_key") != "k" || r.URL.Query().Get("language") != "en-US" {
			t.Errorf("missing api_key/language in %s", r.URL.RawQuery)
		}
		switch r.URL.Path {
		case "/movie/550":
			_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","release_date":"1999-10-15","runtime":139,
				"poster_path":"/pB8.jpg","genres":[{"id":18,"name":"Drama"},{"id":1,"name":""}]}`))
		case "/movie/550/credits":
			if creditsStatus != http.StatusOK {
				w.WriteHeader(creditsStatus)
				return
			}
			_, _ = w.Write([]byte(`{"cast":[{"name":"Edward Norton"},{"name":""},{"name":"Brad Pitt"}],
				"crew":[{"job":"Director","name":"A"},{"job":"Producer","name":"P"},{"job":"Director","name":"B"},{"job":"Director","name":"A"}]}`))
		case "/movie/9":
			_, _ = w.Write([]byte(`{"id":9,"original_title":"Le Samouraï","release_date":"19xx"}`))
		case "/movie/9/credits":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status_message":"not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	c := NewTMDBClient(config.TMDBConfig{
		APIKey:       "k",
		BaseURL:      srv.URL + "/",
		ImageBaseURL: "https://image.tmdb.org/t/p/w500",
		Language:     "en-US",
		HTTPTimeout:  2 * time.Second,
	})
	return c, &hits
}

func TestTMDBClient_FetchMovie(t *testing.T) {
	c, hits := newTMDBStub(t, http.StatusOK)

	meta, err := c.FetchMovie(context.Background(), 550, false)
	if err != nil {
		t.Fatalf("FetchMovie: %v", err)
	}
	if meta.Title != "Fight Club" {
		t.Fatalf("Title=%q", meta.Title)
	}
	if strings.Join(meta.Director, ",") != "A,B" {
		t.Fatalf("Director=%v, want [A B]", meta.Director)
	}
	if strings.Join(meta.Actors, ",") != "Edward Norton,Brad Pitt" {
		t.Fatalf("Actors=%v", meta.Actors)
	}
	if strings.Join(meta.Genres, ",") != "Drama" {
		t.Fatalf("Genres=%v", meta.Genres)
	}
	if meta.ReleaseYear == nil || *meta.ReleaseYear != 1999 {
		t.Fatalf("ReleaseYear=%v", meta.ReleaseYear)
	}
	if meta.Runtime == nil || *meta.Runtime != 139 {
		t.Fatalf("Runtime=%v", meta.Runtime)
	}
	if meta.PosterURL != "https://image.tmdb.org/t/p/w500/pB8.jpg" {
		t.Fatalf("PosterURL=%q", meta.PosterURL)
	}
	if len(*hits) != 2 {
		t.Fatalf("hits=%v, want details+credits", *hits)
	}
}

func TestTMDBClient_FetchMovie_Defaults(t *testing.T) {
	c, _ := newTMDBStub(t, http.StatusOK)

	meta, err := c.FetchMovie(context.Background(), 9, false)
	if err != nil {
		t.Fatalf("FetchMovie: %v", err)
	}
	if meta.Title != "Le Samouraï" {
		t.Fatalf("Title=%q, want original title fallback", meta.Title)
	}
	if meta.ReleaseYear != nil {
		t.Fatalf("ReleaseYear=%v, want nil for non-digit year", *meta.ReleaseYear)
	}
	if meta.Runtime != nil || meta.PosterURL != "" {
		t.Fatalf("Runtime=%v PosterURL=%q, want empty", meta.Runtime, meta.PosterURL)
	}
	if meta.Director == nil || meta.Actors == nil || len(meta.Director)+len(meta.Actors) != 0 {
		t.Fatalf("Director=%v Actors=%v, want empty non-nil", meta.Director, meta.Actors)
	}
}

func TestTMDBClient_CreditsFailureDegrades(t *testing.T) {
	c, _ := newTMDBStub(t, http.StatusInternalServerError)

	meta, err := c.FetchMovie(context.Background(), 550, false)
	if err != nil {
		t.Fatalf("FetchMovie: %v", err)
	}
	if meta.CreditsErr == nil {
		t.Fatalf("CreditsErr=nil, want credits failure recorded")
	}
	if len(meta.Director) != 0 || len(meta.Actors) != 0 {
		t.Fatalf("Director=%v Actors=%v, want empty", meta.Director, meta.Actors)
	}
	if meta.Title != "Fight Club" {
		t.Fatalf("Title=%q", meta.Title)
	}
}

func TestTMDBClient_CreditsFailureFatalWhenRequired(t *testing.T) {
	c, _ := newTMDBStub(t, http.StatusBadGateway)

	_, err := c.FetchMovie(context.Background(), 550, true)
	var ce *Error
	if !errors.As(err, &ce) || ce.Stage != "credits" {
		t.Fatalf("err=%v, want credits stage error", err)
	}
	if StatusCode(err) != http.StatusBadGateway {
		t.Fatalf("StatusCode=%d", StatusCode(err))
	}
}

func TestTMDBClient_DetailsFailure(t *testing.T) {
	c, _ := newTMDBStub(t, http.StatusOK)

	_, err := c.FetchMovie(context.Background(), 404, false)
	var ce *Error
	if !errors.As(err, &ce) || ce.Stage != "details" || ce.ID != 404 {
		t.Fatalf("err=%v, want details stage error", err)
	}
	var se *HTTPStatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Fatalf("err=%v, want HTTP 404", err)
	}
	if strings.Contains(se.URL, "api_key") {
		t.Fatalf("URL leaks api key: %s", se.URL)
	}
}

func TestTMDBClient_NotConfigured(t *testing.T) {
	c := NewTMDBClient(config.TMDBConfig{BaseURL: "http://unused"})
	if _, err := c.FetchMovie(context.Background(), 1, false); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err=%v, want ErrNotConfigured", err)
	}
}

func TestMovieMetadata_TitleOr(t *testing.T) {
	m := &MovieMetadata{TMDBID: 7}
	if got := m.TitleOr(" Known "); got != "Known" {
		t.Fatalf("TitleOr=%q, want Known", got)
	}
	if got := m.TitleOr(""); got != "Movie 7" {
		t.Fatalf("TitleOr=%q, want Movie 7", got)
	}
	m.Title = "Fetched"
	if got := m.TitleOr("Known"); got != "Fetched" {
		t.Fatalf("TitleOr=%q, want Fetched", got)
	}
}
