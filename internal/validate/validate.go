package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^[0-9+()\- ]{7,20}$`)
	reSlug  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

const (
	MaxNameLen    = 60
	MaxEmailLen   = 80
	MaxMessageLen = 1000
	maxSlugLen    = 120
)

// Name validates a person's name for lead forms.
func Name(s string) (string, bool) {
	s = strings.Join(strings.Fields(s), " ")
	n := utf8.RuneCountInString(s)
	if n < 2 || n > MaxNameLen {
		return "", false
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > MaxEmailLen {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Phone accepts Argentine style numbers: digits, spaces, "+", "-" and
// parentheses, with at least 7 digits.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !rePhone.MatchString(s) {
		return "", false
	}
	digits := 0
	for _, r := range s {
		if '0' <= r && r <= '9' {
			digits++
		}
	}
	return s, digits >= 7
}

func Message(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, utf8.RuneCountInString(s) <= MaxMessageLen
}

// Slug validates a vehicle slug taken from a path or form.
func Slug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= maxSlugLen && reSlug.MatchString(s)
}

// Slugs splits a comma separated slug list, dropping invalid entries and
// repeats, and keeps at most limit of them.
func Slugs(s string, limit int) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		slug, ok := Slug(part)
		if !ok || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
		if len(out) == limit {
			break
		}
	}
	return out
}
