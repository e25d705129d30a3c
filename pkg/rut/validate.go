package rut

// Validate reports whether raw is a well-formed identifier whose check
// character matches its body. With WithRange the body must also fall inside
// the policy bounds. Validate never fails; malformed input yields false.
func Validate(raw string, opts ...Option) bool {
	id, err := Parse(raw)
	if err != nil {
		return false
	}
	o := newOptions(opts)
	if o.enforceRange && !o.policy.InRange(id.Body) {
		return false
	}
	return id.Valid()
}
