package rut

import (
	"strings"
	"unicode"
)

// Clean strips periods, hyphens and whitespace from raw and upper-cases the
// result. Any other character is kept, so Clean does not guarantee the
// result parses.
func Clean(raw string) (string, error) {
	return normalize(raw)
}

func normalize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalidFormat("rut cannot be empty", raw)
	}

	cleaned := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.ToUpper(cleaned)

	if cleaned == "" {
		return "", invalidFormat("rut cannot be empty after cleaning", raw)
	}
	return cleaned, nil
}
