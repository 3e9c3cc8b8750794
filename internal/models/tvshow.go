package models

import (
	"time"

	"gorm.io/datatypes"
)

type TvShow struct {
	ID        uint                        `gorm:"primaryKey" json:"id" example:"1"`
	TVMazeID  int                         `gorm:"column:tvmaze_id;not null;uniqueIndex" json:"tvmaze_id" example:"82"`
	Title     string                      `gorm:"size:255;not null;index" json:"title" example:"Game of Thrones"`
	Slug      string                      `gorm:"size:255;not null;uniqueIndex" json:"slug" example:"game-of-thrones-82"`
	Summary   string                      `gorm:"type:text" json:"summary"`
	Genres    datatypes.JSONSlice[string] `json:"genres" swaggertype:"array,string"`
	ImageURL  string                      `gorm:"size:500" json:"image_url"`
	Premiered *time.Time                  `gorm:"type:date" json:"premiered"`
	Creators  datatypes.JSONSlice[string] `json:"creators" swaggertype:"array,string"`
	Status    string                      `gorm:"size:50" json:"status" example:"Ended"`
	Seasons   []Season                    `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE" json:"seasons,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (TvShow) TableName() string {
	return "tv_shows"
}

type Season struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	ShowID         uint      `gorm:"not null;uniqueIndex:uq_season_show_number" json:"show" example:"1"`
	SeasonNumber   int       `gorm:"not null;uniqueIndex:uq_season_show_number" json:"season_number" example:"1"`
	TVMazeSeasonID *int      `gorm:"column:tvmaze_season_id;uniqueIndex" json:"tvmaze_season_id" example:"307"`
	Summary        string    `gorm:"type:text" json:"summary"`
	ReleaseYear    *int      `gorm:"column:season_release_year" json:"season_release_year" example:"2011"`
	EpisodeCount   int       `gorm:"column:season_episode_cnt;not null;default:0" json:"season_episode_cnt" example:"10"`
	Episodes       []Episode `gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE" json:"episodes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Season) TableName() string {
	return "seasons"
}

type Episode struct {
	ID              uint       `gorm:"primaryKey" json:"id" example:"1"`
	SeasonID        uint       `gorm:"not null;uniqueIndex:uq_episode_season_number" json:"season" example:"1"`
	EpisodeNumber   int        `gorm:"not null;uniqueIndex:uq_episode_season_number" json:"episode_number" example:"1"`
	TVMazeEpisodeID *int       `gorm:"column:tvmaze_episode_id;uniqueIndex" json:"tvmaze_episode_id" example:"4952"`
	Title           string     `gorm:"column:episode_title;size:255" json:"episode_title" example:"Winter Is Coming"`
	AirDate         *time.Time `gorm:"type:date" json:"air_date"`
	Runtime         *int       `gorm:"column:episode_runtime" json:"episode_runtime" example:"60"`
	Summary         string     `gorm:"type:text" json:"summary"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Episode) TableName() string {
	return "episodes"
}

// TvShowReview rates exactly one of a show, a season or an episode. A
// reviewer may hold one review per target of each kind.
type TvShowReview struct {
	ID            uint       `gorm:"primaryKey" json:"id" example:"1"`
	TargetType    TargetType `gorm:"size:10;not null;index" json:"target_type" example:"episode"`
	TvShowID      *uint      `gorm:"uniqueIndex:uq_tvreview_reviewer_show" json:"tv_show_type"`
	TvSeasonID    *uint      `gorm:"uniqueIndex:uq_tvreview_reviewer_season" json:"tv_season_type"`
	TvEpisodeID   *uint      `gorm:"uniqueIndex:uq_tvreview_reviewer_episode" json:"tv_episode_type"`
	ReviewerID    uint       `gorm:"not null;uniqueIndex:uq_tvreview_reviewer_show;uniqueIndex:uq_tvreview_reviewer_season;uniqueIndex:uq_tvreview_reviewer_episode" json:"reviewer"`
	ReviewerName  string     `gorm:"size:150" json:"reviewer_name"`
	CoupleSlug    string     `gorm:"size:50;index" json:"couple_slug" example:"tt"`
	Rating        float64    `gorm:"not null" json:"rating" example:"7.5"`
	Justification string     `gorm:"type:text" json:"justification"`
	TvShow        *TvShow    `gorm:"foreignKey:TvShowID;constraint:OnDelete:CASCADE" json:"-"`
	TvSeason      *Season    `gorm:"foreignKey:TvSeasonID;constraint:OnDelete:CASCADE" json:"-"`
	TvEpisode     *Episode   `gorm:"foreignKey:TvEpisodeID;constraint:OnDelete:CASCADE" json:"-"`
	Owner         *User      `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (TvShowReview) TableName() string {
	return "tv_show_reviews"
}
