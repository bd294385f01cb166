package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonPathChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// JournalPath derives the URL path segment for a journal from its name, using
// fallback (usually the acronym) when the name has no usable characters.
func JournalPath(name, fallback string) (string, error) {
	path := toPath(name)
	if path == "" {
		path = toPath(fallback)
	}
	if path == "" {
		return "", ErrEmptySlug
	}
	return path, nil
}

func toPath(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	path := nonPathChars.ReplaceAllString(lower, "-")
	return strings.Trim(path, "-")
}

// TrimMessage trims s and reports whether anything but whitespace was
// left. Messages and note contents go through this before they are stored.
func TrimMessage(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
