// Package strings provides string manipulation utilities.
package strings

import (
	"bufio"
	"io"
	"strings"
)

// TrimNonEmpty trims whitespace from each element and drops the ones left
// empty. Order and duplicates are preserved.
//
// Example:
//
//	TrimNonEmpty([]string{"  foo ", "", "foo", "  "})
//	// Returns: []string{"foo", "foo"}
func TrimNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ReadLines reads r line by line and returns the non-blank lines, trimmed.
// Lines starting with '#' are comments and skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return TrimNonEmpty(lines), nil
}
