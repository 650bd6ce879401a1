// Package phone canonicalizes Ecuadorian phone numbers into the digit-only,
// country-prefixed form used as the contact directory key ("593…").
package phone

import "strings"

// CountryPrefix is prepended to national numbers. Canonical numbers always
// start with it.
const CountryPrefix = "593"

// Normalize converts an arbitrary user-entered phone string into its
// canonical dialable form:
//
//	"0961079919"       → "593961079919"  (trunk 0 dropped)
//	"961079919"        → "593961079919"  (9 digits, prefix added)
//	"+593 96-107-9919" → "593961079919"  (already prefixed, symbols stripped)
//	"12345"            → "12345"         (unrecognized shape, passthrough)
//	""                 → ""              (invalid / unset)
//
// The function never fails and is idempotent: Normalize(Normalize(s)) ==
// Normalize(s) for every input, since every produced "593…" string is a
// fixed point of the prefix branch.
func Normalize(raw string) string {
	digits := stripNonDigits(raw)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, CountryPrefix) {
		return digits
	}
	if strings.HasPrefix(digits, "0") && len(digits) == 10 {
		return CountryPrefix + digits[1:]
	}
	if len(digits) == 9 {
		return CountryPrefix + digits
	}
	return digits
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
