package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/balkashynov/tdo/internal/models"
)

// Slugify derives a URL-safe identifier from a project name: lowercase,
// whitespace runs become one hyphen, characters outside [a-z0-9-] are
// dropped, repeated hyphens collapse and edge hyphens are trimmed.
// An empty result is an InvalidName error.
func Slugify(name string) (string, error) {
	var b strings.Builder
	lastHyphen := false
	inSpace := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
			inSpace = false
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "", models.ErrInvalidName(name)
	}
	return slug, nil
}

// UniqueSlug slugifies name and appends -2, -3, ... until taken reports false.
func UniqueSlug(name string, taken func(string) bool) (string, error) {
	base, err := Slugify(name)
	if err != nil {
		return "", err
	}
	if taken == nil || !taken(base) {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken(candidate) {
			return candidate, nil
		}
	}
}
