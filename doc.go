// doc.go — package documentation for xgx-snag
//
// Package snag provides a tiny, boilerplate-free ad-hoc error value: an
// immutable issue string plus an ordered trail of prior issues ("causes")
// accumulated as a failure propagates up a call chain. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (*Snag implements error; errors.As works)
//   - Policy-free (no logging/HTTP/retry rules in core)
//
// # Layering Semantics
//
// snag separates the OUTERMOST issue from the trail of issues that preceded
// it. The API is intentionally small and explicit:
//
//   - New(issue):
//     Fresh root-cause Snag with an empty trail.
//   - Layer(issue):
//     New Snag whose trail gains the previous issue at the FRONT. The trail
//     is therefore ordered most-recent-first; the last entry is the root
//     cause. Layering never mutates the receiver.
//   - Context(err, issue):
//     Identity on nil (success untouched); layers a failure. The primary
//     call-site ergonomic: pipe any fallible call's error through Context
//     with a description of what you were trying to do.
//   - MapError(err, describe):
//     Bridge from foreign error values into the snag world: describe is
//     invoked at most once, only on failure, and its result becomes a fresh
//     root-cause Snag.
//
// Typical pattern:
//
//	if err := save(path); err != nil {
//	    return snag.Context(err, "could not persist settings")
//	}
//
// # Rendering
//
// Two pure, total rendering forms, byte-for-byte stable:
//
//	+-----------+---------------------------------------------------------+
//	| Form      | Shape                                                   |
//	+-----------+---------------------------------------------------------+
//	| Pretty()  | "error: <issue>\n" then, if the trail is non-empty,     |
//	|           | "\ncause:\n" and one "  <i>: <entry>\n" line per entry  |
//	| Line()    | "error: <issue> <- <c0> <- <c1>" (single line)          |
//	+-----------+---------------------------------------------------------+
//
// snag implements fmt.Formatter:
//   - %v, %s  → concise, single-line Error() (Line() without the prefix)
//   - %+v     → the multi-line Pretty() form
//   - %q      → quoted Error()
//
// # Immutability & Concurrency
//
// Every operation is a pure function over immutable values: Layer and the
// wrappers return NEW values and never touch existing ones, so shared Snag
// values are safe across goroutines without synchronization.
//
// # What snag Is Not
//
// There are no error codes, no typed variants to branch on, no stack
// capture, and no logging in core. If callers must make runtime decisions
// based on WHAT failed, use sentinel errors or a typed-error package; snag
// only accumulates and renders diagnostic text. Adapters for structured
// logging and terminal output live in the snagzero and snagcolor packages.
package snag
