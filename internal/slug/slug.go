// Package slug derives URL-safe identifiers from display titles.
package slug

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Placeholder is used when a title has no usable characters.
const Placeholder = "movie"

// MaxProbes bounds the candidate, candidate-2, ... search.
const MaxProbes = 1000

var ErrExhausted = errors.New("slug: no free candidate")

// Derive lowercases title, folds accents, collapses every run of
// non-alphanumeric characters into a single '-' and trims separators.
func Derive(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range norm.NFKD.String(title) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return Placeholder
	}
	return b.String()
}

// ForShow derives a show slug from its title and external id.
func ForShow(title string, externalID int) string {
	return Derive(fmt.Sprintf("%s-%d", title, externalID))
}

// ExistsFunc reports whether candidate is already taken by some other row.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Unique returns base if free, else the first free base-2, base-3, ...
func Unique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	for i := 1; i <= MaxProbes; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %q", ErrExhausted, base)
}
