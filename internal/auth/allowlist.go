package auth

import "strings"

// Allowlist is the static set of admin emails allowed to mutate the
// collection. Matching is case-insensitive; an empty list admits nobody.
type Allowlist map[string]struct{}

func NewAllowlist(emails []string) Allowlist {
	list := Allowlist{}
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			list[e] = struct{}{}
		}
	}
	return list
}

func (a Allowlist) Contains(email string) bool {
	_, ok := a[strings.ToLower(email)]
	return ok
}
