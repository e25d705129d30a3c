package rut

// Default heuristic constants. They reflect local convention rather than any
// published rule, so callers can override them through Policy.
const (
	DefaultMinBody               = 1_000_000
	DefaultMaxBody               = 99_999_999
	DefaultOrganizationThreshold = 50_000_000

	DefaultRandomMin = 10_000_000
	DefaultRandomMax = 25_000_000
)

// Policy carries the numeric bounds used by the optional range gate and the
// organizational heuristic.
type Policy struct {
	MinBody               int
	MaxBody               int
	OrganizationThreshold int
}

// DefaultPolicy returns the conventional bounds.
func DefaultPolicy() Policy {
	return Policy{
		MinBody:               DefaultMinBody,
		MaxBody:               DefaultMaxBody,
		OrganizationThreshold: DefaultOrganizationThreshold,
	}
}

// InRange reports whether body lies inside [MinBody, MaxBody].
func (p Policy) InRange(body int) bool {
	return body >= p.MinBody && body <= p.MaxBody
}

// Organizational reports whether body meets the organizational threshold.
func (p Policy) Organizational(body int) bool {
	return body >= p.OrganizationThreshold
}

// Option adjusts how Validate, ValidateBatch and IsLikelyOrganizational
// evaluate an identifier.
type Option func(*options)

type options struct {
	policy       Policy
	enforceRange bool
}

func newOptions(opts []Option) options {
	o := options{policy: DefaultPolicy()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithRange rejects bodies outside the policy's [MinBody, MaxBody].
func WithRange() Option {
	return func(o *options) { o.enforceRange = true }
}

// WithPolicy replaces the default bounds.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}
