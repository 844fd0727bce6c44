// construct.go — constructors for the snag core.
//
// Scope (tiny core):
//   - Create fresh root-cause values (New, Err).
//   - Convert arbitrary errors into Snags without adding policy (From).
//
// Notes:
//   - No validation anywhere: any string, including the empty string, is
//     accepted as-is. The issue being non-empty is a convention, not a rule.
//   - Nothing here can fail and nothing has side effects.
package snag

// New creates a root-cause Snag: the given issue and an empty trail.
func New(issue string) *Snag {
	return &Snag{issue: issue}
}

// Err is the "fail immediately" convenience: it returns New(issue) typed as
// error, for call sites that produce a fresh failure in a return statement.
//
//	if !dirWritable(dir) {
//	    return snag.Err("directory not writable")
//	}
func Err(issue string) error {
	return New(issue)
}

// From converts any error into a *Snag without adding a layer.
//   - nil → nil (contrast Context, which is also nil-preserving but layers)
//   - *Snag → returned as-is
//   - other error → fresh root-cause Snag carrying err.Error()
func From(err error) *Snag {
	if err == nil {
		return nil
	}
	if s, ok := err.(*Snag); ok {
		return s
	}
	return New(err.Error())
}
