package slug

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestDerive(t *testing.T) {
	cases := map[string]string{
		"Fight Club":                "fight-club",
		"  Spider-Man: No Way Home ": "spider-man-no-way-home",
		"WALL·E":                    "wall-e",
		"Amélie":                    "amelie",
		"2001: A Space Odyssey":     "2001-a-space-odyssey",
		"---":                       Placeholder,
		"":                          Placeholder,
		"東京物語":                      Placeholder,
	}
	for in, want := range cases {
		if got := Derive(in); got != want {
			t.Fatalf("Derive(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestDerive_OnlyLowercaseAlnumAndSingleSeparators(t *testing.T) {
	titles := []string{
		"The Lord of the Rings: The Return of the King",
		"M*A*S*H",
		"Se7en!!",
		"__init__",
		"a  --  b",
		"Ünïcödé Tïtlé",
	}
	for _, title := range titles {
		got := Derive(title)
		if !slugPattern.MatchString(got) {
			t.Fatalf("Derive(%q)=%q does not match %s", title, got, slugPattern)
		}
	}
}

func TestForShow(t *testing.T) {
	if got := ForShow("Game of Thrones", 82); got != "game-of-thrones-82" {
		t.Fatalf("ForShow=%q", got)
	}
	if got := ForShow("", 7); got != "7" {
		t.Fatalf("ForShow(empty)=%q, want 7", got)
	}
}

func TestUnique_ProbesInOrder(t *testing.T) {
	taken := map[string]bool{"heat": true, "heat-2": true}
	var probed []string
	exists := func(_ context.Context, c string) (bool, error) {
		probed = append(probed, c)
		return taken[c], nil
	}

	got, err := Unique(context.Background(), "heat", exists)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if got != "heat-3" {
		t.Fatalf("Unique=%q, want heat-3", got)
	}
	want := []string{"heat", "heat-2", "heat-3"}
	if len(probed) != len(want) {
		t.Fatalf("probed=%v, want %v", probed, want)
	}
	for i := range want {
		if probed[i] != want[i] {
			t.Fatalf("probed=%v, want %v", probed, want)
		}
	}
}

func TestUnique_SequentialCollisionsGetDistinctSuffixes(t *testing.T) {
	taken := map[string]bool{}
	exists := func(_ context.Context, c string) (bool, error) { return taken[c], nil }

	var got []string
	for _, title := range []string{"Heat", "HEAT", "heat!"} {
		s, err := Unique(context.Background(), Derive(title), exists)
		if err != nil {
			t.Fatalf("Unique: %v", err)
		}
		taken[s] = true
		got = append(got, s)
	}
	want := []string{"heat", "heat-2", "heat-3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slugs=%v, want %v", got, want)
		}
	}
}

func TestUnique_PropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Unique(context.Background(), "x", func(context.Context, string) (bool, error) { return false, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}
}

func TestUnique_Exhausted(t *testing.T) {
	_, err := Unique(context.Background(), "x", func(context.Context, string) (bool, error) { return true, nil })
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err=%v, want ErrExhausted", err)
	}
}
