// zero.go — zerolog adapter for snag values.
//
// Core stays policy-free; this package owns the structured-logging opinion:
// a Snag logs as an object with its issue and, when present, the full cause
// trail as a string array in stored (most-recent-first) order.
package snagzero

import (
	"github.com/rs/zerolog"

	snag "github.com/xgx-io/xgx-snag"
)

// Object returns a zerolog object view of s: an "issue" string field plus,
// when the trail is non-empty, a "cause" array field in stored order.
// A nil s marshals to an empty object.
func Object(s *snag.Snag) zerolog.LogObjectMarshaler {
	return object{s: s}
}

type object struct {
	s *snag.Snag
}

func (o object) MarshalZerologObject(e *zerolog.Event) {
	if o.s == nil {
		return
	}
	e.Str("issue", o.s.Issue())
	if c := o.s.Cause(); len(c) > 0 {
		e.Strs("cause", c)
	}
}

// Log emits err at error level. Any error is first funneled through
// snag.From, so foreign errors get a structured view too; the event message
// is the compact chain. A nil err is a no-op.
func Log(logger zerolog.Logger, err error) {
	if err == nil {
		return
	}
	s := snag.From(err)
	logger.Error().Object("snag", Object(s)).Msg(s.Error())
}
