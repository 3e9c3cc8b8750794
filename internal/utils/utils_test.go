package utils

import "testing"

type sampleRequest struct {
	TMDBID int      `json:"tmdb_id" validate:"required,gt=0"`
	Rating *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
	Kind   string   `json:"target_type" validate:"omitempty,oneof=show season episode"`
}

func TestValidateStruct(t *testing.T) {
	rating := 11.0
	errs := ValidateStruct(sampleRequest{Rating: &rating, Kind: "movie"})
	if len(errs) != 3 {
		t.Fatalf("errs=%v, want 3 fields", errs)
	}
	if errs["tmdb_id"] != "This field is required" {
		t.Fatalf("tmdb_id=%q", errs["tmdb_id"])
	}
	if errs["target_type"] != "Must be one of: show, season, episode" {
		t.Fatalf("target_type=%q", errs["target_type"])
	}

	rating = 7.5
	if errs := ValidateStruct(sampleRequest{TMDBID: 550, Rating: &rating}); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(2, 20, 41)
	if meta.TotalPages != 3 || !meta.HasNext || !meta.HasPrevious {
		t.Fatalf("meta=%+v", meta)
	}
	meta = CreatePaginationMeta(1, 20, 0)
	if meta.TotalPages != 1 || meta.HasNext || meta.HasPrevious {
		t.Fatalf("meta=%+v", meta)
	}
}
