package tenant

import (
	"strconv"
	"strings"
	"unicode"

	"barbershop-booking/internal/pkg/errs"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxSlugLength = 30
	fallbackSlug  = "barbearia"
)

var ErrInvalidSlug = errs.Validation("invalid domain slug")

// Slug is the tenant's public subdomain, unique across the platform.
type Slug string

func (s Slug) String() string { return string(s) }
func (s Slug) IsZero() bool   { return s == "" }

// ParseSlug accepts a slug as generated by BaseSlug and Candidate, without normalizing it.
func ParseSlug(s string) (Slug, error) {
	if s == "" || len(s) > MaxSlugLength || s[0] == '-' || s[len(s)-1] == '-' {
		return "", ErrInvalidSlug
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return "", ErrInvalidSlug
		}
	}
	return Slug(s), nil
}

// BaseSlug derives a lowercase, hyphenated, ASCII-only slug from a display name.
func BaseSlug(name string) Slug {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	if slug == "" {
		slug = fallbackSlug
	}
	return Slug(slug)
}

// Candidate returns the n-th collision alternative: base for n == 0, "base-n" otherwise,
// trimmed so the result never exceeds MaxSlugLength.
func (s Slug) Candidate(n int) Slug {
	if n <= 0 {
		return s
	}
	suffix := "-" + strconv.Itoa(n)
	base := string(s)
	if len(base)+len(suffix) > MaxSlugLength {
		base = strings.TrimRight(base[:MaxSlugLength-len(suffix)], "-")
	}
	return Slug(base + suffix)
}
