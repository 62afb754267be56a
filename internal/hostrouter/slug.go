package hostrouter

// Tenant slug grammar, applied to the leading label of an inbound Host
// header before any tenant lookup happens. The Host header is untrusted
// input; nothing that fails this grammar may reach a data query.
//
// A valid slug:
//   - is 3 to 63 characters long
//   - contains only lowercase ASCII letters, digits, and hyphens
//   - starts and ends with an alphanumeric character

const (
	slugMinLen = 3
	slugMaxLen = 63
)

// ValidSlug reports whether s satisfies the tenant slug grammar. It does not
// consult the reserved set; that is the Resolver's concern.
func ValidSlug(s string) bool {
	if len(s) < slugMinLen || len(s) > slugMaxLen {
		return false
	}
	if !isAlnum(s[0]) || !isAlnum(s[len(s)-1]) {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if !isAlnum(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
