package rut

import (
	"math/rand/v2"
	"strconv"
)

// Bodies outside these bounds do not fit the 7-8 digit shape.
const (
	minBodyValue = 1_000_000
	maxBodyValue = 99_999_999
)

// GenerateRandom returns a random valid identifier in dotted canonical form
// with a body in [DefaultRandomMin, DefaultRandomMax].
//
// The output is meant for fixtures and test data. It is not drawn from a
// cryptographic source and need not belong to a real person.
func GenerateRandom() (string, error) {
	return GenerateRandomBetween(DefaultRandomMin, DefaultRandomMax)
}

// GenerateRandomBetween returns a random valid identifier whose body is drawn
// uniformly from [minBody, maxBody].
//
// Errors: returns ErrInvalidFormat when minBody is not positive, when
// minBody > maxBody, or when either bound falls outside the 7-8 digit shape.
func GenerateRandomBetween(minBody, maxBody int) (string, error) {
	switch {
	case minBody <= 0:
		return "", invalidFormat("random range minimum must be positive", strconv.Itoa(minBody))
	case minBody > maxBody:
		return "", invalidFormat("random range minimum exceeds maximum", strconv.Itoa(minBody))
	case minBody < minBodyValue:
		return "", invalidFormat("random range minimum is below seven digits", strconv.Itoa(minBody))
	case maxBody > maxBodyValue:
		return "", invalidFormat("random range maximum exceeds eight digits", strconv.Itoa(maxBody))
	}

	digits := strconv.Itoa(minBody + rand.IntN(maxBody-minBody+1))
	return groupThousands(digits) + "-" + checkCharacter(digits), nil
}
