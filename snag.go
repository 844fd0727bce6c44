// snag.go — the Snag value: an issue plus an ordered trail of prior issues.
//
// Design tenets:
//   - Interop-first: *Snag implements error; plays nicely with fmt and
//     errors.As without adopting any wrapping policy.
//   - Minimal surface: no codes, no fields, no stacks — only text layers.
//   - Non-mutating ergonomics: Layer returns a new value (copy-on-write).
//
// The trail is ordered MOST-RECENT-FIRST: cause[0] is the issue of the layer
// immediately below the current one, and the last entry is the root cause.
// Layering only ever PREPENDS; no stored string is mutated or removed, which
// makes shared Snag values safe across goroutines without synchronization.
package snag

import "strings"

// Snag is an immutable ad-hoc error value: the outermost issue plus the
// ordered trail of issues recorded before it.
//
// Two Snags with equal issue and trail are interchangeable; identity beyond
// value equality carries no meaning. The zero value is usable and renders as
// an empty issue with no trail, but New is the intended constructor.
type Snag struct {
	issue string
	cause []string // most-recent-first; append-only, never mutated once published
}

// Issue returns the outermost (most recently layered) issue description.
func (s *Snag) Issue() string { return s.issue }

// Cause returns a COPY of the cause trail in most-recent-first order.
// The returned slice is safe to mutate by callers without affecting the
// stored trail (copy-on-read). An empty trail yields nil.
func (s *Snag) Cause() []string { return causeCopy(s.cause) }

// Root returns the innermost, first-recorded issue: the last trail entry,
// or the issue itself when no layers have been added yet.
func (s *Snag) Root() string {
	if len(s.cause) == 0 {
		return s.issue
	}
	return s.cause[len(s.cause)-1]
}

// Depth returns the number of cause layers below the outermost issue.
func (s *Snag) Depth() int { return len(s.cause) }

// Layer returns a NEW Snag carrying issue on top: the receiver's issue moves
// to the front of the trail, followed by the receiver's existing entries in
// their stored order. The receiver is never modified.
//
// Layer on a nil receiver degenerates to New(issue).
func (s *Snag) Layer(issue string) *Snag {
	if s == nil {
		return New(issue)
	}
	return &Snag{issue: issue, cause: causePrepend(s.issue, s.cause)}
}

// Equal reports value equality: same issue and an element-wise equal trail.
func (s *Snag) Equal(o *Snag) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.issue != o.issue || len(s.cause) != len(o.cause) {
		return false
	}
	for i, c := range s.cause {
		if o.cause[i] != c {
			return false
		}
	}
	return true
}

// Error implements the error interface with the compact chain form,
// most-recent-first: "<issue> <- <c0> <- <c1>". Per Go convention the
// string carries no "error: " prefix; Line adds the canonical prefix for
// display purposes.
func (s *Snag) Error() string {
	if len(s.cause) == 0 {
		return s.issue
	}
	return s.issue + " <- " + strings.Join(s.cause, " <- ")
}

// Interface conformance guard (keep in the file that defines the type).
var _ error = (*Snag)(nil)
