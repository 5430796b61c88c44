package filter

import "strings"

// All is the sentinel selector value meaning "no filtering".
const All = "all"

// Predicate reports whether an item passes one filter.
type Predicate[T any] func(item T) bool

// Compose combines predicates into their logical AND, short-circuiting on
// the first failure. Composition is associative and commutative: reordering
// the predicates never changes the result, only how early a miss is found.
func Compose[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range predicates {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the items accepted by the predicate, preserving order.
func Apply[T any](items []T, predicate Predicate[T]) []T {
	var out []T
	for _, item := range items {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search matches a case-insensitive substring against the fields extracted
// from the item. An empty query is the identity predicate.
func Search[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return identity[T]
	}
	return func(item T) bool {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
		return false
	}
}

// City matches the item's city exactly, case-insensitive. The "all"
// sentinel is the identity predicate.
func City[T any](selected string, cityOf func(T) string) Predicate[T] {
	return exact(selected, cityOf)
}

// Status matches the item's status exactly, case-insensitive. The "all"
// sentinel is the identity predicate.
func Status[T any](selected string, statusOf func(T) string) Predicate[T] {
	return exact(selected, statusOf)
}

// Service matches the item's service tag exactly, case-insensitive. The
// "all" sentinel is the identity predicate.
func Service[T any](selected string, serviceOf func(T) string) Predicate[T] {
	return exact(selected, serviceOf)
}

func exact[T any](selected string, valueOf func(T) string) Predicate[T] {
	if selected == "" || strings.EqualFold(selected, All) {
		return identity[T]
	}
	return func(item T) bool {
		return strings.EqualFold(valueOf(item), selected)
	}
}

func identity[T any](T) bool {
	return true
}
