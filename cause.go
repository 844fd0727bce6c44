// cause.go — immutable trail helpers for the snag core.
//
// Design:
//   • Internal representation: ordered []string, most-recent-first.
//   • Builders are non-mutating: they return NEW slices (no aliasing).
//
// Rationale:
//   • Slice append may re-use capacity; we always allocate a fresh backing
//     array when "mutating" so a published trail is never written through.
//   • Prepend costs one allocation and one copy — O(n) in trail length but
//     O(1) allocations, which is all the layering contract requires.
package snag

// causePrepend returns a NEW trail consisting of head followed by all of
// tail's entries in their existing order. The result never aliases tail.
func causePrepend(head string, tail []string) []string {
	out := make([]string, 1+len(tail))
	out[0] = head
	copy(out[1:], tail)
	return out
}

// causeCopy returns a defensive copy of trail; an empty trail yields nil so
// callers can rely on len() checks without distinguishing nil from empty.
func causeCopy(trail []string) []string {
	if len(trail) == 0 {
		return nil
	}
	out := make([]string, len(trail))
	copy(out, trail)
	return out
}
