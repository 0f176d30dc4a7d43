// Package services holds the view composers: the functions that join
// normalized entity rows into the denormalized view models consumed by the
// presentation layer. Composers are read-only and stateless per invocation;
// the only shared state is an optionally-passed UserDirectory, which lives for
// one page composition.
package services

// Groups is an order-preserving multi-map produced by GroupBy. Group keys
// iterate in first-occurrence order of the input.
type Groups[K comparable, V any] struct {
	keys   []K
	groups map[K][]V
}

// GroupBy partitions items by the key function. Every item lands in exactly
// one group, the input is never mutated, and the whole pass is O(n).
func GroupBy[K comparable, V any](items []V, key func(V) K) *Groups[K, V] {
	g := &Groups[K, V]{groups: make(map[K][]V, len(items))}
	for _, item := range items {
		k := key(item)
		if _, seen := g.groups[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], item)
	}
	return g
}

// Keys returns the group keys in first-occurrence order. The returned slice
// is owned by the Groups value; callers must not mutate it.
func (g *Groups[K, V]) Keys() []K {
	return g.keys
}

// Get returns the group for k, nil when k never occurred.
func (g *Groups[K, V]) Get(k K) []V {
	return g.groups[k]
}

// Len returns the number of distinct groups.
func (g *Groups[K, V]) Len() int {
	return len(g.keys)
}
