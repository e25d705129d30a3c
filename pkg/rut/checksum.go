package rut

import "strconv"

var weights = [...]int{2, 3, 4, 5, 6, 7}

// CheckCharacter computes the modulo-11 check character for a body.
// The result is one of "0"-"9" or "K".
//
// Errors: returns ErrInvalidFormat when body is zero or negative.
func CheckCharacter(body int) (string, error) {
	if body <= 0 {
		return "", invalidFormat("rut body must be positive", strconv.Itoa(body))
	}
	return checkCharacter(strconv.Itoa(body)), nil
}

// checkCharacter expects a string of ASCII digits.
func checkCharacter(digits string) string {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		sum += d * weights[i%len(weights)]
	}

	switch v := 11 - sum%11; v {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(v)
	}
}
