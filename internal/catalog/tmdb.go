package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"movieclub-backend/internal/config"
)

const (
	ProviderTMDB = "tmdb"
	maxActors    = 10
)

type tmdbGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type tmdbMovieDetails struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	OriginalTitle string      `json:"original_title"`
	ReleaseDate   string      `json:"release_date"`
	Runtime       *int        `json:"runtime"`
	PosterPath    string      `json:"poster_path"`
	Genres        []tmdbGenre `json:"genres"`
}

type tmdbCastMember struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type tmdbCrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type tmdbCredits struct {
	Cast []tmdbCastMember `json:"cast"`
	Crew []tmdbCrewMember `json:"crew"`
}

// MovieMetadata is a TMDB movie normalised to the club's movie fields.
type MovieMetadata struct {
	TMDBID      int
	Title       string
	Director    []string
	Actors      []string
	Genres      []string
	ReleaseYear *int
	Runtime     *int
	PosterURL   string
	// CreditsErr is set when the optional credits lookup failed and
	// Director/Actors are empty because of it.
	CreditsErr error
}

// TitleOr picks the fetched title, then known, then a generated name.
func (m *MovieMetadata) TitleOr(known string) string {
	if m.Title != "" {
		return m.Title
	}
	if known = strings.TrimSpace(known); known != "" {
		return known
	}
	return fmt.Sprintf("Movie %d", m.TMDBID)
}

type TMDBClient struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	httpClient   *http.Client
}

func NewTMDBClient(cfg config.TMDBConfig) *TMDBClient {
	return &TMDBClient{
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: cfg.ImageBaseURL,
		language:     cfg.Language,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// FetchMovie loads details (required) and credits. When requireCredits is
// false a credits failure leaves Director/Actors empty and is reported in
// CreditsErr instead of failing the call.
func (c *TMDBClient) FetchMovie(ctx context.Context, tmdbID int, requireCredits bool) (*MovieMetadata, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var details tmdbMovieDetails
	if err := getJSON(ctx, c.httpClient, c.endpoint(fmt.Sprintf("/movie/%d", tmdbID)), &details); err != nil {
		return nil, &Error{Provider: ProviderTMDB, Stage: "details", ID: tmdbID, Err: err}
	}

	meta := &MovieMetadata{
		TMDBID:      tmdbID,
		Title:       firstNonEmpty(details.Title, details.OriginalTitle),
		Director:    []string{},
		Actors:      []string{},
		Genres:      genreNames(details.Genres),
		ReleaseYear: ParseYear(details.ReleaseDate),
		Runtime:     details.Runtime,
		PosterURL:   imageURL(c.imageBaseURL, details.PosterPath),
	}

	var credits tmdbCredits
	if err := getJSON(ctx, c.httpClient, c.endpoint(fmt.Sprintf("/movie/%d/credits", tmdbID)), &credits); err != nil {
		cerr := &Error{Provider: ProviderTMDB, Stage: "credits", ID: tmdbID, Err: err}
		if requireCredits {
			return nil, cerr
		}
		meta.CreditsErr = cerr
		return meta, nil
	}

	meta.Director = directorsFrom(credits.Crew)
	meta.Actors = actorsFrom(credits.Cast, maxActors)
	return meta, nil
}

func (c *TMDBClient) endpoint(path string) string {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}
	return c.baseURL + path + "?" + q.Encode()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
