package domain

import "strings"

// DefaultStudentDomain is used when a request omits the domain or sends
// one outside the known set.
const DefaultStudentDomain = "engineering"

// studentDomains is the set of study areas feedback can be tagged with.
// The tag travels with the record for downstream reporting; the
// classification pipeline itself ignores it.
var studentDomains = map[string]struct{}{
	"engineering": {},
	"commerce":    {},
	"science":     {},
	"arts":        {},
	"medical":     {},
	"law":         {},
	"management":  {},
	"other":       {},
}

// NormalizeStudentDomain lowercases and trims the given domain, falling
// back to DefaultStudentDomain for unknown values.
func NormalizeStudentDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	if _, ok := studentDomains[d]; ok {
		return d
	}
	return DefaultStudentDomain
}

// StudentDomains returns the known study areas in no particular order.
func StudentDomains() []string {
	out := make([]string, 0, len(studentDomains))
	for d := range studentDomains {
		out = append(out, d)
	}
	return out
}
