package handler

import (
	"time"

	"rutcheck/internal/validation"
	"rutcheck/pkg/rut"
)

// ValidateResponse is the HTTP response for POST /rut/validate.
type ValidateResponse struct {
	RUT   string `json:"rut"`
	Valid bool   `json:"valid"`
}

// PartsResponse is the HTTP response for POST /rut/parse.
type PartsResponse struct {
	Body       int    `json:"body"`
	Digits     string `json:"digits"`
	Check      string `json:"check"`
	Normalized string `json:"normalized"`
	// Valid reports whether Check matches the body.
	Valid bool `json:"valid"`
}

// FromID converts a parsed identifier to an HTTP response.
func FromID(id rut.ID) *PartsResponse {
	return &PartsResponse{
		Body:       id.Body,
		Digits:     id.Digits,
		Check:      id.Check,
		Normalized: id.Normalized,
		Valid:      id.Valid(),
	}
}

// FormatResponse is the HTTP response for POST /rut/format.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// CleanResponse is the HTTP response for POST /rut/clean.
type CleanResponse struct {
	Cleaned string `json:"cleaned"`
}

// CheckDigitResponse is the HTTP response for GET /rut/check-digit/{body}.
type CheckDigitResponse struct {
	Body      int    `json:"body"`
	Check     string `json:"check"`
	Formatted string `json:"formatted,omitempty"`
}

// BatchResponse is the HTTP response for POST /rut/batch.
type BatchResponse struct {
	Results     []rut.Outcome `json:"results"`
	Total       int           `json:"total"`
	Valid       int           `json:"valid"`
	EvaluatedAt time.Time     `json:"evaluated_at"`
}

// FromOutcomes summarises batch results.
func FromOutcomes(results []rut.Outcome, at time.Time) *BatchResponse {
	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	return &BatchResponse{
		Results:     results,
		Total:       len(results),
		Valid:       valid,
		EvaluatedAt: at,
	}
}

// RandomResponse is the HTTP response for GET /rut/random.
type RandomResponse struct {
	RUT string `json:"rut"`
}

// ClassifyResponse is the HTTP response for POST /rut/classify.
type ClassifyResponse struct {
	// RUT is the canonical form, empty when the input did not parse.
	RUT            string `json:"rut"`
	Organizational bool   `json:"organizational"`
	Heuristic      bool   `json:"heuristic"`
}

// FromClassification converts a service verdict to an HTTP response.
func FromClassification(c validation.Classification) *ClassifyResponse {
	resp := &ClassifyResponse{
		Organizational: c.Organizational,
		Heuristic:      true,
	}
	if c.Parsed {
		resp.RUT = c.ID.String()
	}
	return resp
}
