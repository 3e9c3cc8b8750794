package catalog

import (
	"strconv"
	"strings"
	"time"
)

// ParseYear returns the year in the first four characters of date when they
// are all digits.
func ParseYear(date string) *int {
	if len(date) < 4 {
		return nil
	}
	head := date[:4]
	for _, r := range head {
		if r < '0' || r > '9' {
			return nil
		}
	}
	year, err := strconv.Atoi(head)
	if err != nil {
		return nil
	}
	return &year
}

// ParseDate reads a YYYY-MM-DD date; anything else yields nil.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func directorsFrom(crew []tmdbCrewMember) []string {
	seen := make(map[string]bool)
	directors := make([]string, 0)
	for _, member := range crew {
		if member.Job != "Director" || member.Name == "" || seen[member.Name] {
			continue
		}
		seen[member.Name] = true
		directors = append(directors, member.Name)
	}
	return directors
}

// actorsFrom takes the first limit billed cast entries and drops the
// unnamed ones, so it may return fewer than limit names.
func actorsFrom(cast []tmdbCastMember, limit int) []string {
	if len(cast) > limit {
		cast = cast[:limit]
	}
	actors := make([]string, 0, len(cast))
	for _, member := range cast {
		if member.Name != "" {
			actors = append(actors, member.Name)
		}
	}
	return actors
}

func genreNames(genres []tmdbGenre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return names
}

func imageURL(base, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
