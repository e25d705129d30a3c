package rut

import (
	"regexp"
	"strconv"
)

var normalizedPattern = regexp.MustCompile(`^(\d{7,8})([0-9K])$`)

// ID is a structurally valid identifier. Parse does not verify the check
// character; use Valid or Validate for that.
type ID struct {
	// Body is the numeric value of Digits.
	Body int
	// Digits is the body exactly as supplied, 7 or 8 characters.
	Digits string
	// Check is the supplied check character, upper-cased.
	Check string
	// Normalized is Digits followed by Check.
	Normalized string
}

// Parse normalizes raw and splits it into body and check character.
//
// Errors: returns ErrInvalidFormat when raw is empty or does not consist of
// 7-8 digits followed by one of 0-9 or K once separators are removed.
func Parse(raw string) (ID, error) {
	cleaned, err := normalize(raw)
	if err != nil {
		return ID{}, err
	}

	m := normalizedPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return ID{}, invalidFormat("invalid rut format: must have 7-8 digits followed by a check character", raw)
	}

	body, err := strconv.Atoi(m[1])
	if err != nil {
		return ID{}, invalidFormat("invalid rut body", raw)
	}

	return ID{
		Body:       body,
		Digits:     m[1],
		Check:      m[2],
		Normalized: cleaned,
	}, nil
}

// Expected returns the check character the body should carry.
func (id ID) Expected() string {
	return checkCharacter(id.Digits)
}

// Valid reports whether the supplied check character matches the body.
func (id ID) Valid() bool {
	return id.Check == id.Expected()
}
