package matcher

import (
	"strings"
	"unicode"

	"inventory-reconciler/feature/inventory/spaces"
)

// Lookuper resolves a scanned code to a record index.
type Lookuper interface {
	Lookup(code string) (int, bool)
}

// Matcher answers the questions the counting session asks on every token.
type Matcher struct {
	records Lookuper
	spaces  *spaces.Table
}

// New creates a matcher. A nil table behaves like an empty one.
func New(records Lookuper, table *spaces.Table) *Matcher {
	if table == nil {
		table = spaces.New()
	}
	return &Matcher{records: records, spaces: table}
}

// Lookup resolves a scanned code to the index of its record.
func (m *Matcher) Lookup(code string) (int, bool) {
	return m.records.Lookup(code)
}

// IsSpace reports whether the operator token names a known space.
func (m *Matcher) IsSpace(token string) bool {
	return m.spaces.IsKnownSpace(token)
}

// Equivalent reports whether two space names refer to the same place.
//
// Without a space table nothing is equivalent. Otherwise the check is loose:
// ignoring case, one name may contain the other, the alias of one may contain
// the other, or every word of one name (or of its alias) may appear among the
// words of the other.
func (m *Matcher) Equivalent(a, b string) bool {
	if m.spaces.Len() == 0 || a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}

	aliasA, _ := m.spaces.Alias(a)
	aliasB, _ := m.spaces.Alias(b)
	aliasA, aliasB = strings.ToLower(aliasA), strings.ToLower(aliasB)
	if aliasA != "" && strings.Contains(aliasA, lb) {
		return true
	}
	if aliasB != "" && strings.Contains(aliasB, la) {
		return true
	}

	wa, wb := words(la), words(lb)
	return subset(wb, wa) || subset(wa, wb) ||
		subset(words(aliasA), wb) || subset(words(aliasB), wa)
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// subset reports whether every word of sub appears in set. Empty sub is not a subset.
func subset(sub, set []string) bool {
	if len(sub) == 0 {
		return false
	}
	for _, w := range sub {
		found := false
		for _, s := range set {
			if s == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
