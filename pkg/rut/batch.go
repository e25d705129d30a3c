package rut

import (
	"errors"
	"fmt"
)

// Outcome is the per-item result of ValidateBatch.
type Outcome struct {
	// Input is the value as supplied.
	Input string `json:"input"`
	// Formatted is the dotted canonical form, set only when Valid.
	Formatted string `json:"formatted,omitempty"`
	Valid     bool   `json:"valid"`
	// Error explains why the item is invalid.
	Error string `json:"error,omitempty"`
}

// ValidateBatch validates every input independently and returns one Outcome
// per input in the same order. A bad item never affects the others.
func ValidateBatch(inputs []string, opts ...Option) []Outcome {
	o := newOptions(opts)
	out := make([]Outcome, 0, len(inputs))
	for _, raw := range inputs {
		out = append(out, evaluate(raw, o))
	}
	return out
}

func evaluate(raw string, o options) Outcome {
	res := Outcome{Input: raw}

	id, err := Parse(raw)
	if err != nil {
		res.Error = describe(err)
		return res
	}

	if o.enforceRange && !o.policy.InRange(id.Body) {
		res.Error = fmt.Sprintf("body %d outside allowed range [%d, %d]",
			id.Body, o.policy.MinBody, o.policy.MaxBody)
		return res
	}

	if expected := id.Expected(); id.Check != expected {
		res.Error = fmt.Sprintf("invalid check character: expected '%s', got '%s'", expected, id.Check)
		return res
	}

	res.Valid = true
	res.Formatted = id.String()
	return res
}

func describe(err error) string {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return err.Error()
}
