package rut

// IsLikelyOrganizational reports whether raw parses to a body at or above the
// policy's organizational threshold (50,000,000 by default).
//
// This is a heuristic: companies are usually registered with high bodies, but
// nothing forbids the opposite. Unparseable input yields false. The check
// character is not verified.
func IsLikelyOrganizational(raw string, opts ...Option) bool {
	id, err := Parse(raw)
	if err != nil {
		return false
	}
	return newOptions(opts).policy.Organizational(id.Body)
}
