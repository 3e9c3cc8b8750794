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

func newTVMazeStub(t *testing.T, routes map[string]string) *TVMazeClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewTVMazeClient(config.TVMazeConfig{BaseURL: srv.URL, HTTPTimeout: 2 * time.Second})
}

func TestTVMazeClient_FetchShow(t *testing.T) {
	c := newTVMazeStub(t, map[string]string{
		"/shows/82": `{"id":82,"name":"Game of Thrones","summary":"<p>Noble <b>families</b>.</p>",
			"genres":["Drama","Fantasy"],"image":{"medium":"m.jpg","original":"o.jpg"},
			"premiered":"2011-04-17","status":"Ended"}`,
		"/shows/82/crew": `[{"type":"Creator","person":{"name":"David Benioff"}},
			{"type":"Executive Producer","person":{"name":"X"}},
			{"type":"Creator","person":{"name":"D.B. Weiss"}},
			{"type":"Creator","person":{"name":"David Benioff"}}]`,
	})

	show, err := c.FetchShow(context.Background(), 82)
	if err != nil {
		t.Fatalf("FetchShow: %v", err)
	}
	if show.Title != "Game of Thrones" || show.Status != "Ended" {
		t.Fatalf("show=%+v", show)
	}
	if show.Summary != "Noble families." {
		t.Fatalf("Summary=%q", show.Summary)
	}
	if show.ImageURL != "o.jpg" {
		t.Fatalf("ImageURL=%q, want original", show.ImageURL)
	}
	if show.Premiered == nil || show.Premiered.Year() != 2011 {
		t.Fatalf("Premiered=%v", show.Premiered)
	}
	if strings.Join(show.Creators, ",") != "David Benioff,D.B. Weiss" {
		t.Fatalf("Creators=%v", show.Creators)
	}
}

func TestTVMazeClient_FetchShow_CrewFailureDegrades(t *testing.T) {
	c := newTVMazeStub(t, map[string]string{
		"/shows/5": `{"id":5,"name":"Minimal","summary":null,"image":null,"premiered":null}`,
	})

	show, err := c.FetchShow(context.Background(), 5)
	if err != nil {
		t.Fatalf("FetchShow: %v", err)
	}
	if show.CreatorsErr == nil || len(show.Creators) != 0 {
		t.Fatalf("CreatorsErr=%v Creators=%v", show.CreatorsErr, show.Creators)
	}
	if show.Summary != "" || show.ImageURL != "" || show.Premiered != nil {
		t.Fatalf("show=%+v, want neutral defaults", show)
	}
}

func TestTVMazeClient_FetchShow_NotFound(t *testing.T) {
	c := newTVMazeStub(t, nil)
	_, err := c.FetchShow(context.Background(), 1)
	var ce *Error
	if !errors.As(err, &ce) || ce.Provider != ProviderTVMaze || ce.Stage != "show" {
		t.Fatalf("err=%v", err)
	}
	if StatusCode(err) != http.StatusNotFound {
		t.Fatalf("StatusCode=%d", StatusCode(err))
	}
}

func TestTVMazeClient_SeasonsAndEpisodes(t *testing.T) {
	c := newTVMazeStub(t, map[string]string{
		"/shows/82/seasons": `[{"id":307,"number":1,"episodeOrder":10,"premiereDate":"2011-04-17"},
			{"id":308,"number":null,"episodeOrder":null,"premiereDate":null}]`,
		"/seasons/307/episodes": `[{"id":4952,"name":"Winter Is Coming","number":1,"airdate":"2011-04-17","runtime":60,"summary":"<p>Start.</p>"},
			{"id":4953,"name":"Special","number":null,"airdate":"","runtime":null}]`,
	})

	seasons, err := c.FetchSeasons(context.Background(), 82)
	if err != nil {
		t.Fatalf("FetchSeasons: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("len(seasons)=%d", len(seasons))
	}
	if seasons[0].Number != 1 || seasons[0].EpisodeCount != 10 || seasons[0].ReleaseYear == nil || *seasons[0].ReleaseYear != 2011 {
		t.Fatalf("seasons[0]=%+v", seasons[0])
	}
	if seasons[1].Number != 0 || seasons[1].EpisodeCount != 0 || seasons[1].ReleaseYear != nil {
		t.Fatalf("seasons[1]=%+v, want zero sentinels", seasons[1])
	}

	episodes, err := c.FetchEpisodes(context.Background(), 307)
	if err != nil {
		t.Fatalf("FetchEpisodes: %v", err)
	}
	if episodes[0].Title != "Winter Is Coming" || episodes[0].Summary != "Start." || episodes[0].AirDate == nil {
		t.Fatalf("episodes[0]=%+v", episodes[0])
	}
	if episodes[1].Number != 0 || episodes[1].AirDate != nil || episodes[1].Runtime != nil {
		t.Fatalf("episodes[1]=%+v", episodes[1])
	}

	if _, err := c.FetchEpisodes(context.Background(), 999); err == nil {
		t.Fatalf("FetchEpisodes(999): expected error")
	}
}
