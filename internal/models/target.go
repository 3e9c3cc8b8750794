package models

import "fmt"

type TargetType string

const (
	TargetShow    TargetType = "show"
	TargetSeason  TargetType = "season"
	TargetEpisode TargetType = "episode"
)

func (t TargetType) Valid() bool {
	switch t {
	case TargetShow, TargetSeason, TargetEpisode:
		return true
	}
	return false
}

// ReviewTarget is the resolved subject of a TV review: one kind, one id.
// The zero value targets nothing.
type ReviewTarget struct {
	kind TargetType
	id   uint
}

func ShowTarget(id uint) ReviewTarget    { return ReviewTarget{kind: TargetShow, id: id} }
func SeasonTarget(id uint) ReviewTarget  { return ReviewTarget{kind: TargetSeason, id: id} }
func EpisodeTarget(id uint) ReviewTarget { return ReviewTarget{kind: TargetEpisode, id: id} }

// NewReviewTarget builds a target from a discriminant and an id.
func NewReviewTarget(kind TargetType, id uint) (ReviewTarget, error) {
	if !kind.Valid() {
		return ReviewTarget{}, fmt.Errorf("unknown target type %q", kind)
	}
	if id == 0 {
		return ReviewTarget{}, fmt.Errorf("%s target requires an id", kind)
	}
	return ReviewTarget{kind: kind, id: id}, nil
}

func (t ReviewTarget) Kind() TargetType { return t.kind }
func (t ReviewTarget) ID() uint         { return t.id }
func (t ReviewTarget) IsZero() bool     { return t.kind == "" }

func (t ReviewTarget) String() string {
	if t.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%s:%d", t.kind, t.id)
}

// ApplyTo stores the target on r: the discriminant plus exactly one
// reference column, clearing the other two.
func (t ReviewTarget) ApplyTo(r *TvShowReview) {
	r.TargetType = t.kind
	r.TvShowID, r.TvSeasonID, r.TvEpisodeID = nil, nil, nil

	id := t.id
	switch t.kind {
	case TargetShow:
		r.TvShowID = &id
	case TargetSeason:
		r.TvSeasonID = &id
	case TargetEpisode:
		r.TvEpisodeID = &id
	}
}

// Target reads the stored target back from a persisted review.
func (r *TvShowReview) Target() (ReviewTarget, error) {
	set := 0
	var target ReviewTarget
	if r.TvShowID != nil {
		set++
		target = ShowTarget(*r.TvShowID)
	}
	if r.TvSeasonID != nil {
		set++
		target = SeasonTarget(*r.TvSeasonID)
	}
	if r.TvEpisodeID != nil {
		set++
		target = EpisodeTarget(*r.TvEpisodeID)
	}
	if set != 1 {
		return ReviewTarget{}, fmt.Errorf("review %d has %d target references", r.ID, set)
	}
	if target.kind != r.TargetType {
		return ReviewTarget{}, fmt.Errorf("review %d target type %q does not match %s", r.ID, r.TargetType, target)
	}
	return target, nil
}
