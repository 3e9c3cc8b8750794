package handlers

import "movieclub-backend/internal/services"

type ShowRequest struct {
	TVMazeID  int      `json:"tvmaze_id" validate:"required,gt=0" example:"82"`
	Title     string   `json:"title" validate:"required,max=255" example:"Game of Thrones"`
	Slug      string   `json:"slug" validate:"omitempty,max=255"`
	Summary   string   `json:"summary"`
	Genres    []string `json:"genres"`
	ImageURL  string   `json:"image_url" validate:"omitempty,max=500"`
	Premiered *string  `json:"premiered" validate:"omitempty,datetime=2006-01-02" example:"2011-04-17"`
	Creators  []string `json:"creators"`
	Status    string   `json:"status" validate:"omitempty,max=50" example:"Ended"`
}

type ShowUpdateRequest struct {
	Title     *string   `json:"title" validate:"omitempty,max=255"`
	Slug      *string   `json:"slug" validate:"omitempty,max=255"`
	Summary   *string   `json:"summary"`
	Genres    *[]string `json:"genres"`
	ImageURL  *string   `json:"image_url" validate:"omitempty,max=500"`
	Premiered *string   `json:"premiered" validate:"omitempty,datetime=2006-01-02"`
	Creators  *[]string `json:"creators"`
	Status    *string   `json:"status" validate:"omitempty,max=50"`
}

func (r ShowUpdateRequest) patch() services.ShowPatch {
	return services.ShowPatch{
		Title:     r.Title,
		Slug:      r.Slug,
		Summary:   r.Summary,
		Genres:    r.Genres,
		ImageURL:  r.ImageURL,
		Premiered: parseDate(r.Premiered),
		Creators:  r.Creators,
		Status:    r.Status,
	}
}

type ImportShowRequest struct {
	TVMazeID int `json:"tvmaze_id" validate:"required,gt=0" example:"82"`
}

type SeasonRequest struct {
	Show           uint   `json:"show" validate:"required" example:"1"`
	SeasonNumber   int    `json:"season_number" validate:"min=0" example:"1"`
	TVMazeSeasonID *int   `json:"tvmaze_season_id" validate:"omitempty,gt=0"`
	Summary        string `json:"summary"`
	ReleaseYear    *int   `json:"season_release_year" validate:"omitempty,min=1900,max=2100"`
	EpisodeCount   int    `json:"season_episode_cnt" validate:"min=0"`
}

// SeasonUpdateRequest cannot move a season to another show.
type SeasonUpdateRequest struct {
	SeasonNumber *int    `json:"season_number" validate:"omitempty,min=0"`
	Summary      *string `json:"summary"`
	ReleaseYear  *int    `json:"season_release_year" validate:"omitempty,min=1900,max=2100"`
	EpisodeCount *int    `json:"season_episode_cnt" validate:"omitempty,min=0"`
}

type EpisodeRequest struct {
	Season          uint    `json:"season" validate:"required" example:"1"`
	EpisodeNumber   int     `json:"episode_number" validate:"min=0" example:"1"`
	TVMazeEpisodeID *int    `json:"tvmaze_episode_id" validate:"omitempty,gt=0"`
	Title           string  `json:"episode_title" validate:"max=255" example:"Winter Is Coming"`
	AirDate         *string `json:"air_date" validate:"omitempty,datetime=2006-01-02" example:"2011-04-17"`
	Runtime         *int    `json:"episode_runtime" validate:"omitempty,min=0"`
	Summary         string  `json:"summary"`
}

type EpisodeUpdateRequest struct {
	EpisodeNumber *int    `json:"episode_number" validate:"omitempty,min=0"`
	Title         *string `json:"episode_title" validate:"omitempty,max=255"`
	AirDate       *string `json:"air_date" validate:"omitempty,datetime=2006-01-02"`
	Runtime       *int    `json:"episode_runtime" validate:"omitempty,min=0"`
	Summary       *string `json:"summary"`
}

// TvReviewRequest targets one show, season or episode, either through
// target_id or the matching typed reference.
type TvReviewRequest struct {
	TargetType    string   `json:"target_type" validate:"required,oneof=show season episode" example:"episode"`
	TargetID      *uint    `json:"target_id" example:"12"`
	TvShow        *uint    `json:"tv_show_type"`
	TvSeason      *uint    `json:"tv_season_type"`
	TvEpisode     *uint    `json:"tv_episode_type"`
	Rating        *float64 `json:"rating" validate:"required,min=0,max=10" example:"7.5"`
	Justification string   `json:"justification"`
}

func (r TvReviewRequest) input() services.TvReviewInput {
	return services.TvReviewInput{
		Target: services.TargetInput{
			TargetType: r.TargetType,
			TargetID:   r.TargetID,
			TvShow:     r.TvShow,
			TvSeason:   r.TvSeason,
			TvEpisode:  r.TvEpisode,
		},
		Rating:        r.Rating,
		Justification: r.Justification,
	}
}

// TvReviewUpdateRequest carries the editable fields only; target fields in
// the body are ignored.
type TvReviewUpdateRequest struct {
	Rating        *float64 `json:"rating" validate:"omitempty,min=0,max=10" example:"8"`
	Justification *string  `json:"justification"`
}
