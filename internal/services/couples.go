package services

import (
	"sort"
	"strings"
	"unicode"

	"movieclub-backend/internal/config"
)

// CoupleDirectory maps reviewers and couple slugs onto couple groups.
type CoupleDirectory struct {
	byMember map[string]config.CoupleGroup
	bySlug   map[string]config.CoupleGroup
	fallback string
}

func NewCoupleDirectory(cfg config.ClubConfig) *CoupleDirectory {
	d := &CoupleDirectory{
		byMember: make(map[string]config.CoupleGroup),
		bySlug:   make(map[string]config.CoupleGroup),
		fallback: cfg.FallbackGroup,
	}
	if d.fallback == "" {
		d.fallback = "uncategorized"
	}
	for _, g := range cfg.Couples {
		d.bySlug[normalizeCoupleKey(g.Slug)] = g
		for _, m := range g.Members {
			d.byMember[normalizeCoupleKey(m)] = g
		}
	}
	return d
}

// GroupForUser returns the couple group of username, or the fallback group.
func (d *CoupleDirectory) GroupForUser(username string) string {
	if g, ok := d.byMember[normalizeCoupleKey(username)]; ok {
		return g.Name
	}
	return d.fallback
}

// SlugForUser returns the couple slug of username, or the fallback group.
func (d *CoupleDirectory) SlugForUser(username string) string {
	if g, ok := d.byMember[normalizeCoupleKey(username)]; ok {
		return g.Slug
	}
	return d.fallback
}

// GroupForSlug looks a couple up by slug, ignoring case and surrounding
// space. The returned group carries the canonical slug.
func (d *CoupleDirectory) GroupForSlug(slug string) (config.CoupleGroup, bool) {
	g, ok := d.bySlug[normalizeCoupleKey(slug)]
	return g, ok
}

func (d *CoupleDirectory) Slugs() []string {
	slugs := make([]string, 0, len(d.bySlug))
	for _, g := range d.bySlug {
		slugs = append(slugs, g.Slug)
	}
	sort.Strings(slugs)
	return slugs
}

func normalizeCoupleKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// displayName trims a reviewer name and capitalizes it: first letter upper,
// the rest lower.
func displayName(name string) string {
	runes := []rune(strings.ToLower(strings.TrimSpace(name)))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
