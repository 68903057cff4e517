package domain

import (
	"sort"
	"strings"
)

// RouteClass is the authorization classification of a path.
type RouteClass string

const (
	RoutePublic     RouteClass = "public"
	RouteProtected  RouteClass = "protected"
	RouteRestricted RouteClass = "restricted" // protected plus a role requirement
)

// RouteRule maps a path prefix to its classification. Restricted rules carry
// the roles allowed past the gatekeeper.
type RouteRule struct {
	Prefix string
	Class  RouteClass
	Roles  []string
}

// RouteTable is the static route classification table. It is built once at
// startup and read-only afterwards; the gatekeeper depends on its correctness
// but does not enforce it.
type RouteTable struct {
	rules []RouteRule
}

// NewRouteTable builds a table from the given rules. Rules are ordered by
// descending prefix length so that lookup implements longest-prefix-wins:
// a restricted sub-path under a broader protected prefix resolves to the
// restricted rule.
func NewRouteTable(rules ...RouteRule) *RouteTable {
	ordered := make([]RouteRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Prefix) > len(ordered[j].Prefix)
	})
	return &RouteTable{rules: ordered}
}

// Classify returns the rule for the longest matching prefix. Paths that match
// no rule are public: the table enumerates the protected surface.
func (t *RouteTable) Classify(path string) RouteRule {
	for _, r := range t.rules {
		if prefixMatches(path, r.Prefix) {
			return r
		}
	}
	return RouteRule{Prefix: "", Class: RoutePublic}
}

// prefixMatches matches on path-segment boundaries: "/admin" matches "/admin"
// and "/admin/users" but not "/administrator".
func prefixMatches(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) || strings.HasSuffix(prefix, "/") {
		return true
	}
	return path[len(prefix)] == '/'
}
