// render.go — pure rendering for the snag core.
//
// Behavior:
//
//   Pretty()  → multi-line, human-readable:
//                 error: <issue>
//
//                 cause:
//                   0: <most recent cause>
//                   1: <root cause>
//   Line()    → single line: "error: <issue> <- <c0> <- <c1>"
//   %v, %s    → concise Error() (the Line form without the prefix)
//   %+v       → verbose, the Pretty form
//   %q        → quoted Error()
//
// Both renderings are byte-for-byte stable: the empty trail drops the cause
// block entirely, cause indices start at 0 in stored (most-recent-first)
// order, every cause line ends in '\n', and Line carries no trailing newline.
// Rationale: downstream tooling greps these shapes; keep them frozen.
package snag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Pretty returns the multi-line rendering. With an empty trail the output is
// exactly "error: <issue>\n"; otherwise a blank line, a "cause:" header, and
// one indexed line per trail entry follow.
func (s *Snag) Pretty() string {
	var b strings.Builder
	b.WriteString("error: ")
	b.WriteString(s.issue)
	b.WriteByte('\n')
	if len(s.cause) == 0 {
		return b.String()
	}
	b.WriteString("\ncause:\n")
	for i, c := range s.cause {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return b.String()
}

// Line returns the single-line rendering: the "error: "-prefixed issue and
// the trail entries joined by " <- ", most-recent-first, no trailing newline.
func (s *Snag) Line() string {
	return "error: " + s.Error()
}

// Format implements fmt.Formatter.
//
//	%v, %s → concise Error()
//	%+v    → Pretty()
//	%q     → quoted Error()
func (s *Snag) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			// ignore write errors in formatting paths
			_, _ = io.WriteString(st, s.Pretty())
			return
		}
		_, _ = io.WriteString(st, s.Error())
	case 's':
		_, _ = io.WriteString(st, s.Error())
	case 'q':
		_, _ = fmt.Fprintf(st, "%q", s.Error())
	default:
		_, _ = io.WriteString(st, s.Error())
	}
}

var _ fmt.Formatter = (*Snag)(nil)
