package handler

import dErrors "rutcheck/pkg/domain-errors"

// IdentifierRequest is the body shared by the single-identifier endpoints.
type IdentifierRequest struct {
	RUT string `json:"rut"`
}

// Validate implements httputil.Validatable. The identifier itself is not
// inspected here: the service reports bad input in the endpoint's own terms.
func (r *IdentifierRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// ValidateRequest is the HTTP request body for POST /rut/validate.
type ValidateRequest struct {
	RUT          string `json:"rut"`
	EnforceRange bool   `json:"enforce_range"`
}

// Validate implements httputil.Validatable.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// FormatRequest is the HTTP request body for POST /rut/format.
type FormatRequest struct {
	RUT string `json:"rut"`
	// Separators defaults to true when omitted.
	Separators *bool `json:"separators,omitempty"`
}

// Validate implements httputil.Validatable.
func (r *FormatRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// WithSeparators resolves the optional separators flag.
func (r *FormatRequest) WithSeparators() bool {
	return r.Separators == nil || *r.Separators
}

// BatchRequest is the HTTP request body for POST /rut/batch.
type BatchRequest struct {
	RUTs         []string `json:"ruts"`
	EnforceRange bool     `json:"enforce_range"`
}

// Validate implements httputil.Validatable.
func (r *BatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.RUTs == nil {
		return dErrors.New(dErrors.CodeValidation, "ruts is required")
	}
	return nil
}
