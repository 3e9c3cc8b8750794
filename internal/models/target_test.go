package models

import "testing"

func TestReviewTarget_ApplyToSetsExactlyOneReference(t *testing.T) {
	show := uint(3)
	r := &TvShowReview{TvShowID: &show, TargetType: TargetShow}

	EpisodeTarget(9).ApplyTo(r)

	if r.TargetType != TargetEpisode {
		t.Fatalf("TargetType=%q, want episode", r.TargetType)
	}
	if r.TvShowID != nil || r.TvSeasonID != nil {
		t.Fatalf("stale references left: show=%v season=%v", r.TvShowID, r.TvSeasonID)
	}
	if r.TvEpisodeID == nil || *r.TvEpisodeID != 9 {
		t.Fatalf("TvEpisodeID=%v, want 9", r.TvEpisodeID)
	}

	got, err := r.Target()
	if err != nil {
		t.Fatalf("Target: %v", err)
	}
	if got != EpisodeTarget(9) {
		t.Fatalf("Target=%s, want episode:9", got)
	}
}

func TestTvShowReview_TargetRejectsInconsistentRows(t *testing.T) {
	one, two := uint(1), uint(2)
	cases := map[string]*TvShowReview{
		"none":     {TargetType: TargetShow},
		"two refs": {TargetType: TargetShow, TvShowID: &one, TvSeasonID: &two},
		"mismatch": {TargetType: TargetEpisode, TvShowID: &one},
	}
	for name, r := range cases {
		if _, err := r.Target(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestNewReviewTarget(t *testing.T) {
	if _, err := NewReviewTarget("movie", 1); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if _, err := NewReviewTarget(TargetSeason, 0); err == nil {
		t.Fatalf("expected error for zero id")
	}
	got, err := NewReviewTarget(TargetSeason, 4)
	if err != nil || got != SeasonTarget(4) {
		t.Fatalf("NewReviewTarget=%v,%v", got, err)
	}
}
