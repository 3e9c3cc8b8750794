package models

import (
	"time"

	"gorm.io/datatypes"
)

type Movie struct {
	ID          uint                        `gorm:"primaryKey" json:"id" example:"1"`
	Title       string                      `gorm:"size:200;not null;index" json:"title" example:"Fight Club"`
	Slug        string                      `gorm:"size:255;not null;uniqueIndex" json:"slug" example:"fight-club"`
	Director    datatypes.JSONSlice[string] `json:"director" swaggertype:"array,string"`
	Actors      datatypes.JSONSlice[string] `json:"actors" swaggertype:"array,string"`
	Genres      datatypes.JSONSlice[string] `json:"genres" swaggertype:"array,string"`
	ReleaseYear *int                        `gorm:"column:release_yr" json:"release_yr" example:"1999"`
	Runtime     *int                        `json:"runtime" example:"139"`
	PosterURL   string                      `gorm:"size:500" json:"poster_url"`
	TMDBID      *int                        `gorm:"column:tmdb_id;uniqueIndex" json:"tmdb_id" example:"550"`
	Reviews     []Review                    `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// Review is a single club member's rating of a movie.
type Review struct {
	ID                  uint      `gorm:"primaryKey" json:"id" example:"1"`
	MovieID             uint      `gorm:"not null;index" json:"movie" example:"1"`
	CoupleID            string    `gorm:"size:50;not null;index" json:"couple_id" example:"TrevorTaylor"`
	Reviewer            string    `gorm:"size:100;not null" json:"reviewer" example:"trevor"`
	Rating              *float64  `json:"rating" example:"8.5"`
	RatingJustification string    `gorm:"type:text" json:"rating_justification"`
	UserID              uint      `gorm:"not null;index" json:"user_id"`
	User                *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// RefreshLog records one bulk refresh run against TMDB.
type RefreshLog struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	Status       string    `gorm:"size:20;index" json:"status" example:"success"`
	DryRun       bool      `json:"dry_run" example:"false"`
	Processed    int       `json:"processed" example:"42"`
	Failed       int       `json:"failed" example:"1"`
	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `gorm:"index" json:"finished_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (RefreshLog) TableName() string {
	return "refresh_logs"
}
