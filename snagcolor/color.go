// color.go — terminal rendering adapter for snag values.
//
// Mirrors the core Pretty layout with the "error:" / "cause:" headers and
// the cause indices colorized. The fatih/color package already degrades to
// plain text on non-TTY destinations (and when color.NoColor is set), in
// which case the output is byte-identical to (*snag.Snag).Pretty().
package snagcolor

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	snag "github.com/xgx-io/xgx-snag"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	indexColor  = color.New(color.FgHiBlack)
)

// Sprint returns the colorized multi-line rendering of s.
func Sprint(s *snag.Snag) string {
	var b strings.Builder
	b.WriteString(headerColor.Sprint("error:"))
	b.WriteByte(' ')
	b.WriteString(s.Issue())
	b.WriteByte('\n')
	cause := s.Cause()
	if len(cause) == 0 {
		return b.String()
	}
	b.WriteByte('\n')
	b.WriteString(headerColor.Sprint("cause:"))
	b.WriteByte('\n')
	for i, c := range cause {
		b.WriteString("  ")
		b.WriteString(indexColor.Sprint(strconv.Itoa(i) + ":"))
		b.WriteByte(' ')
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return b.String()
}

// Fprint writes the colorized rendering of s to w.
func Fprint(w io.Writer, s *snag.Snag) error {
	_, err := io.WriteString(w, Sprint(s))
	return err
}
