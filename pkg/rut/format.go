package rut

import "strings"

// Format renders raw in canonical form with thousands separators,
// e.g. "12.345.678-5" or "1.234.567-K". The check character is not verified.
func Format(raw string) (string, error) {
	id, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// FormatCompact renders raw without thousands separators, e.g. "12345678-5".
func FormatCompact(raw string) (string, error) {
	id, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return id.Compact(), nil
}

// String returns the dotted canonical form.
func (id ID) String() string {
	return groupThousands(id.Digits) + "-" + id.Check
}

// Compact returns the canonical form without thousands separators.
func (id ID) Compact() string {
	return id.Digits + "-" + id.Check
}

// groupThousands inserts a period every three digits from the right. The
// leading group keeps its natural width; nothing is padded.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
