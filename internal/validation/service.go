// Package validation applies the identifier engine on behalf of the HTTP
// and CLI surfaces, adding the configured policy, logging and metrics.
package validation

import (
	"context"
	"errors"
	"log/slog"

	"rutcheck/internal/validation/metrics"
	dErrors "rutcheck/pkg/domain-errors"
	"rutcheck/pkg/requestcontext"
	"rutcheck/pkg/rut"
)

// Classification is the organizational heuristic verdict for one input.
type Classification struct {
	// ID is the zero value when the input did not parse.
	ID             rut.ID
	Parsed         bool
	Organizational bool
}

// Service validates and formats identifiers under a fixed policy.
type Service struct {
	policy       rut.Policy
	maxBatchSize int
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithMaxBatchSize limits ValidateBatch; zero or negative means unlimited.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) { s.maxBatchSize = n }
}

// New constructs a Service. logger and metrics may be nil.
func New(policy rut.Policy, logger *slog.Logger, m *metrics.Metrics, opts ...Option) (*Service, error) {
	if policy.MinBody > policy.MaxBody {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "policy minimum exceeds maximum")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		policy:  policy,
		logger:  logger,
		metrics: m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Policy returns the bounds this service applies.
func (s *Service) Policy() rut.Policy {
	return s.policy
}

func (s *Service) options(enforceRange bool) []rut.Option {
	opts := []rut.Option{rut.WithPolicy(s.policy)}
	if enforceRange {
		opts = append(opts, rut.WithRange())
	}
	return opts
}

// Validate reports whether raw is a valid identifier.
func (s *Service) Validate(ctx context.Context, raw string, enforceRange bool) bool {
	valid := rut.Validate(raw, s.options(enforceRange)...)

	result := metrics.ResultInvalid
	if valid {
		result = metrics.ResultValid
	}
	s.metrics.IncrementOperation("validate", result)
	s.logger.DebugContext(ctx, "identifier validated",
		"request_id", requestcontext.RequestID(ctx),
		"valid", valid,
		"enforce_range", enforceRange,
	)
	return valid
}

// Parse splits raw into body and check character.
//
// Errors: CodeInvalidInput when raw is malformed.
func (s *Service) Parse(ctx context.Context, raw string) (rut.ID, error) {
	id, err := rut.Parse(raw)
	if err != nil {
		return rut.ID{}, s.fail(ctx, "parse", err)
	}
	s.metrics.IncrementOperation("parse", metrics.ResultOK)
	return id, nil
}

// Format renders raw canonically, with thousands separators when
// separators is true.
//
// Errors: CodeInvalidInput when raw is malformed.
func (s *Service) Format(ctx context.Context, raw string, separators bool) (string, error) {
	id, err := rut.Parse(raw)
	if err != nil {
		return "", s.fail(ctx, "format", err)
	}
	s.metrics.IncrementOperation("format", metrics.ResultOK)
	if separators {
		return id.String(), nil
	}
	return id.Compact(), nil
}

// Clean strips separators and whitespace from raw.
//
// Errors: CodeInvalidInput when nothing is left.
func (s *Service) Clean(ctx context.Context, raw string) (string, error) {
	cleaned, err := rut.Clean(raw)
	if err != nil {
		return "", s.fail(ctx, "clean", err)
	}
	s.metrics.IncrementOperation("clean", metrics.ResultOK)
	return cleaned, nil
}

// CheckCharacter computes the check character for body.
//
// Errors: CodeInvalidInput when body is not positive.
func (s *Service) CheckCharacter(ctx context.Context, body int) (string, error) {
	check, err := rut.CheckCharacter(body)
	if err != nil {
		return "", s.fail(ctx, "check_character", err)
	}
	s.metrics.IncrementOperation("check_character", metrics.ResultOK)
	return check, nil
}

// ValidateBatch validates every input independently, preserving order.
//
// Errors: CodeValidation when the batch exceeds the configured maximum.
func (s *Service) ValidateBatch(ctx context.Context, inputs []string, enforceRange bool) ([]rut.Outcome, error) {
	if s.maxBatchSize > 0 && len(inputs) > s.maxBatchSize {
		s.metrics.IncrementOperation("batch", metrics.ResultError)
		return nil, dErrors.New(dErrors.CodeValidation, "batch exceeds maximum size")
	}

	results := rut.ValidateBatch(inputs, s.options(enforceRange)...)

	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	s.metrics.IncrementOperation("batch", metrics.ResultOK)
	s.metrics.ObserveBatch(len(results), valid)
	s.logger.InfoContext(ctx, "batch validated",
		"request_id", requestcontext.RequestID(ctx),
		"size", len(results),
		"valid", valid,
		"enforce_range", enforceRange,
	)
	return results, nil
}

// Generate returns a random valid identifier with a body in [minBody, maxBody].
//
// Errors: CodeInvalidInput when the range is unusable.
func (s *Service) Generate(ctx context.Context, minBody, maxBody int) (string, error) {
	out, err := rut.GenerateRandomBetween(minBody, maxBody)
	if err != nil {
		return "", s.fail(ctx, "generate", err)
	}
	s.metrics.IncrementOperation("generate", metrics.ResultOK)
	return out, nil
}

// Classify applies the organizational heuristic. It never fails; Parsed
// reports whether raw was usable at all.
func (s *Service) Classify(ctx context.Context, raw string) Classification {
	id, err := rut.Parse(raw)
	if err != nil {
		s.metrics.IncrementClassification("unparseable")
		return Classification{}
	}

	c := Classification{
		ID:             id,
		Parsed:         true,
		Organizational: s.policy.Organizational(id.Body),
	}
	kind := "person"
	if c.Organizational {
		kind = "organization"
	}
	s.metrics.IncrementClassification(kind)
	s.logger.DebugContext(ctx, "identifier classified",
		"request_id", requestcontext.RequestID(ctx),
		"kind", kind,
	)
	return c
}

// fail translates core errors into domain errors. Raw input is left out of
// the log line; identifiers are personal data.
func (s *Service) fail(ctx context.Context, operation string, err error) error {
	s.metrics.IncrementOperation(operation, metrics.ResultError)

	var fe *rut.FormatError
	if errors.As(err, &fe) {
		s.logger.DebugContext(ctx, "identifier rejected",
			"request_id", requestcontext.RequestID(ctx),
			"operation", operation,
			"reason", fe.Message,
		)
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, fe.Message)
	}

	s.logger.ErrorContext(ctx, "identifier operation failed",
		"request_id", requestcontext.RequestID(ctx),
		"operation", operation,
		"error", err,
	)
	return dErrors.Wrap(err, dErrors.CodeInternal, "identifier operation failed")
}
