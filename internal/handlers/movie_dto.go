package handlers

import "movieclub-backend/internal/services"

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,max=200" example:"Fight Club"`
	Slug        string   `json:"slug" validate:"omitempty,max=255"`
	Director    []string `json:"director"`
	Actors      []string `json:"actors"`
	Genres      []string `json:"genres"`
	ReleaseYear *int     `json:"release_yr" validate:"omitempty,min=1870,max=2100" example:"1999"`
	Runtime     *int     `json:"runtime" validate:"omitempty,min=0" example:"139"`
	PosterURL   string   `json:"poster_url" validate:"omitempty,url,max=500"`
	TMDBID      *int     `json:"tmdb_id" validate:"omitempty,gt=0" example:"550"`
}

// MovieUpdateRequest is a partial update; absent fields keep their value.
// tmdb_id cannot be changed.
type MovieUpdateRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200"`
	Slug        *string   `json:"slug" validate:"omitempty,max=255"`
	Director    *[]string `json:"director"`
	Actors      *[]string `json:"actors"`
	Genres      *[]string `json:"genres"`
	ReleaseYear *int      `json:"release_yr" validate:"omitempty,min=1870,max=2100"`
	Runtime     *int      `json:"runtime" validate:"omitempty,min=0"`
	PosterURL   *string   `json:"poster_url" validate:"omitempty,max=500"`
}

func (r MovieUpdateRequest) patch() services.MoviePatch {
	return services.MoviePatch{
		Title:       r.Title,
		Slug:        r.Slug,
		Director:    r.Director,
		Actors:      r.Actors,
		Genres:      r.Genres,
		ReleaseYear: r.ReleaseYear,
		Runtime:     r.Runtime,
		PosterURL:   r.PosterURL,
	}
}

type ImportMovieRequest struct {
	TMDBID int `json:"tmdb_id" validate:"required,gt=0" example:"550"`
}

// ReviewRequest names the movie by id ("movie") or slug ("movie_slug").
type ReviewRequest struct {
	Movie               uint     `json:"movie" example:"1"`
	MovieSlug           string   `json:"movie_slug" example:"fight-club"`
	Rating              *float64 `json:"rating" validate:"omitempty,min=0,max=10" example:"8.5"`
	RatingJustification string   `json:"rating_justification"`
}

type ReviewUpdateRequest struct {
	Rating              *float64 `json:"rating" validate:"omitempty,min=0,max=10" example:"9"`
	RatingJustification *string  `json:"rating_justification"`
}
