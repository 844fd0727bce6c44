// wrap.go — stdlib-friendly wrappers that operate on arbitrary errors.
//
// Purpose
//   - Apply snag's layering to ANY error value at propagation boundaries.
//   - Preserve the success path untouched: nil in, nil out, always.
//   - Stay policy-free: no logging/HTTP/retry opinions here.
//
// Go has no built-in Result type; its result idiom is (T, error) with a nil
// error meaning success. Context and MapError are therefore polymorphic over
// that convention: the nil branch is the success variant and is returned
// unchanged, the non-nil branch is the failure variant and gets enriched.
package snag

// Context attaches a new outer issue to a failure and leaves success alone.
//   - nil → nil (identity; issue is discarded)
//   - *Snag → a new Snag layered with issue
//   - other error → bridged into a root-cause Snag first (carrying
//     err.Error()), then layered — equivalent to MapError followed by
//     Context, collapsed into the common call site
//
// Intended use at each meaningful boundary, exactly once:
//
//	cfg, err := load(path)
//	if err != nil {
//	    return nil, snag.Context(err, "could not read configuration")
//	}
func Context(err error, issue string) error {
	if err == nil {
		return nil
	}
	return From(err).Layer(issue)
}

// MapError bridges a foreign failure value into the snag world. On success
// (nil) it returns nil and never invokes describe. On failure it invokes
// describe exactly once and returns a fresh root-cause Snag carrying the
// description; the original error value is discarded. Subsequent Context
// calls add layers above it.
//
// A nil describe falls back to err.Error().
func MapError(err error, describe func(error) string) error {
	if err == nil {
		return nil
	}
	if describe == nil {
		return New(err.Error())
	}
	return New(describe(err))
}
