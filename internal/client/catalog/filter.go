// Package catalog computes the visible subset of a fetched item collection
// under the user's current filter criteria. Filtering is pure and
// order-preserving; it runs eagerly on every criteria change, so nothing
// here touches the network or any shared state.
package catalog

import "strings"

// Item is what the filter needs to know about an event or opportunity.
type Item interface {
	// SearchText returns the fields scanned by the free-text query.
	SearchText() []string
	// TypeName returns the item's enumerated category.
	TypeName() string
	// Tags returns the item's tag collection (tech stack or fields).
	Tags() []string
	// Virtual reports whether the item is held online.
	Virtual() bool
}

// Criteria is the ephemeral, per-view set of filter predicates. All active
// predicates combine with logical AND. The zero value matches everything.
type Criteria struct {
	// Query is matched case-insensitively as a substring of any
	// searchable field.
	Query string
	// Types passes items whose category is a member of the set.
	// Empty means all types. A single-select view passes at most one.
	Types []string
	// Fields passes items whose tag collection intersects the set.
	// Empty means all; an item with no tags never matches a non-empty set.
	Fields []string
	// Virtual is a tri-state: nil matches either format.
	Virtual *bool
}

// Filter returns the items matching c, preserving input order.
func Filter[T Item](items []T, c Criteria) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, c) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a single item passes every active predicate.
func Matches(item Item, c Criteria) bool {
	return matchesQuery(item, c.Query) &&
		matchesType(item, c.Types) &&
		matchesFields(item, c.Fields) &&
		matchesVirtual(item, c.Virtual)
}

func matchesQuery(item Item, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, text := range item.SearchText() {
		if strings.Contains(strings.ToLower(text), q) {
			return true
		}
	}
	return false
}

func matchesType(item Item, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if item.TypeName() == t {
			return true
		}
	}
	return false
}

func matchesFields(item Item, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	// At least one common element; subset is not required.
	for _, want := range fields {
		for _, tag := range item.Tags() {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func matchesVirtual(item Item, virtual *bool) bool {
	return virtual == nil || item.Virtual() == *virtual
}
