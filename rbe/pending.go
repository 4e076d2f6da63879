package rbe

import "github.com/rudof-project/rudof-sub005/rdf"

// PendingItem is one (predicate, object) arc already consumed by the
// matcher; the obligation-tracking driver (C7) reads these back out to
// know which arcs were assigned to which triple expression.
type PendingItem struct {
	Predicate rdf.Term
	Object    rdf.Term
}

// Pending is the persistent, append-only record of arcs consumed so far
// while deriving an expression (§3 "Pending"). Append never mutates the
// receiver, matching the caller-owned, copy-on-write discipline the
// matcher's cancellation guarantee depends on (§4.4: "no mutation of
// shared state beyond the caller-owned pending").
type Pending struct {
	items []PendingItem
}

// Append returns a new Pending with item added, leaving p unmodified.
func (p Pending) Append(item PendingItem) Pending {
	next := make([]PendingItem, len(p.items)+1)
	copy(next, p.items)
	next[len(p.items)] = item
	return Pending{items: next}
}

// Items returns the accumulated items in insertion order. The returned
// slice must not be mutated by the caller.
func (p Pending) Items() []PendingItem {
	return p.items
}

// Len returns the number of accumulated items.
func (p Pending) Len() int { return len(p.items) }
