package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"movieclub-backend/internal/config"
)

const ProviderTVMaze = "tvmaze"

type tvmazeImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

type tvmazeShow struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Summary   *string      `json:"summary"`
	Genres    []string     `json:"genres"`
	Image     *tvmazeImage `json:"image"`
	Premiered *string      `json:"premiered"`
	Status    string       `json:"status"`
}

type tvmazeSeason struct {
	ID           int     `json:"id"`
	Number       *int    `json:"number"`
	EpisodeOrder *int    `json:"episodeOrder"`
	PremiereDate *string `json:"premiereDate"`
	Summary      *string `json:"summary"`
}

type tvmazeEpisode struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Number  *int    `json:"number"`
	Airdate string  `json:"airdate"`
	Runtime *int    `json:"runtime"`
	Summary *string `json:"summary"`
}

type tvmazeCrewCredit struct {
	Type   string `json:"type"`
	Person struct {
		Name string `json:"name"`
	} `json:"person"`
}

type ShowMetadata struct {
	TVMazeID  int
	Title     string
	Summary   string
	Genres    []string
	ImageURL  string
	Premiered *time.Time
	Status    string
	Creators  []string
	// CreatorsErr is set when the optional crew lookup failed.
	CreatorsErr error
}

// SeasonMetadata uses 0 for a missing season number or episode order.
type SeasonMetadata struct {
	TVMazeSeasonID int
	Number         int
	EpisodeCount   int
	ReleaseYear    *int
	Summary        string
}

// EpisodeMetadata uses 0 for a missing episode number.
type EpisodeMetadata struct {
	TVMazeEpisodeID int
	Number          int
	Title           string
	AirDate         *time.Time
	Runtime         *int
	Summary         string
}

type TVMazeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTVMazeClient(cfg config.TVMazeConfig) *TVMazeClient {
	return &TVMazeClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// FetchShow loads the show (required) and its creators (optional).
func (c *TVMazeClient) FetchShow(ctx context.Context, tvmazeID int) (*ShowMetadata, error) {
	var show tvmazeShow
	if err := getJSON(ctx, c.httpClient, fmt.Sprintf("%s/shows/%d", c.baseURL, tvmazeID), &show); err != nil {
		return nil, &Error{Provider: ProviderTVMaze, Stage: "show", ID: tvmazeID, Err: err}
	}

	meta := &ShowMetadata{
		TVMazeID:  tvmazeID,
		Title:     strings.TrimSpace(show.Name),
		Summary:   PlainText(orEmpty(show.Summary)),
		Genres:    nonEmpty(show.Genres),
		Premiered: ParseDate(orEmpty(show.Premiered)),
		Status:    show.Status,
		Creators:  []string{},
	}
	if show.Image != nil {
		meta.ImageURL = firstNonEmpty(show.Image.Original, show.Image.Medium)
	}

	var crew []tvmazeCrewCredit
	if err := getJSON(ctx, c.httpClient, fmt.Sprintf("%s/shows/%d/crew", c.baseURL, tvmazeID), &crew); err != nil {
		meta.CreatorsErr = &Error{Provider: ProviderTVMaze, Stage: "crew", ID: tvmazeID, Err: err}
		return meta, nil
	}
	seen := make(map[string]bool)
	for _, credit := range crew {
		name := strings.TrimSpace(credit.Person.Name)
		if credit.Type != "Creator" || name == "" || seen[name] {
			continue
		}
		seen[name] = true
		meta.Creators = append(meta.Creators, name)
	}
	return meta, nil
}

func (c *TVMazeClient) FetchSeasons(ctx context.Context, tvmazeShowID int) ([]SeasonMetadata, error) {
	var seasons []tvmazeSeason
	if err := getJSON(ctx, c.httpClient, fmt.Sprintf("%s/shows/%d/seasons", c.baseURL, tvmazeShowID), &seasons); err != nil {
		return nil, &Error{Provider: ProviderTVMaze, Stage: "seasons", ID: tvmazeShowID, Err: err}
	}

	out := make([]SeasonMetadata, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, SeasonMetadata{
			TVMazeSeasonID: s.ID,
			Number:         orZero(s.Number),
			EpisodeCount:   orZero(s.EpisodeOrder),
			ReleaseYear:    ParseYear(orEmpty(s.PremiereDate)),
			Summary:        PlainText(orEmpty(s.Summary)),
		})
	}
	return out, nil
}

func (c *TVMazeClient) FetchEpisodes(ctx context.Context, tvmazeSeasonID int) ([]EpisodeMetadata, error) {
	var episodes []tvmazeEpisode
	if err := getJSON(ctx, c.httpClient, fmt.Sprintf("%s/seasons/%d/episodes", c.baseURL, tvmazeSeasonID), &episodes); err != nil {
		return nil, &Error{Provider: ProviderTVMaze, Stage: "episodes", ID: tvmazeSeasonID, Err: err}
	}

	out := make([]EpisodeMetadata, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, EpisodeMetadata{
			TVMazeEpisodeID: e.ID,
			Number:          orZero(e.Number),
			Title:           strings.TrimSpace(e.Name),
			AirDate:         ParseDate(e.Airdate),
			Runtime:         e.Runtime,
			Summary:         PlainText(orEmpty(e.Summary)),
		})
	}
	return out, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
