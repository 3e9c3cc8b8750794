package models

import "gorm.io/datatypes"

// ClubAverage is the club-wide rating rollup for one reviewed movie.
type ClubAverage struct {
	MovieID    uint                        `json:"movie_id" example:"1"`
	Title      string                      `json:"title" example:"Fight Club"`
	Slug       string                      `json:"slug" example:"fight-club"`
	Director   datatypes.JSONSlice[string] `json:"director" swaggertype:"array,string"`
	Actors     datatypes.JSONSlice[string] `json:"actors" swaggertype:"array,string"`
	Genres     datatypes.JSONSlice[string] `json:"genres" swaggertype:"array,string"`
	AvgRating  *float64                    `json:"avg_rating" example:"7.25"`
	NumReviews int64                       `json:"num_reviews" example:"4"`
}

type CoupleReviewEntry struct {
	Rating *float64 `json:"rating" example:"8"`
	Review string   `json:"review"`
}

// CoupleMovieReviews lists one movie with the reviews of a single couple,
// keyed by normalized reviewer name.
type CoupleMovieReviews struct {
	MovieID  uint                         `json:"movie_id" example:"1"`
	Title    string                       `json:"title"`
	Slug     string                       `json:"slug"`
	Director datatypes.JSONSlice[string]  `json:"director" swaggertype:"array,string"`
	Actors   datatypes.JSONSlice[string]  `json:"actors" swaggertype:"array,string"`
	Genres   datatypes.JSONSlice[string]  `json:"genres" swaggertype:"array,string"`
	Reviews  map[string]CoupleReviewEntry `json:"reviews"`
}

type CoupleShowReviews struct {
	ShowID  uint                         `json:"show_id" example:"1"`
	Title   string                       `json:"title"`
	Slug    string                       `json:"slug"`
	Genres  datatypes.JSONSlice[string]  `json:"genres" swaggertype:"array,string"`
	Reviews map[string]CoupleReviewEntry `json:"reviews"`
}
