package snagcolor_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snag "github.com/xgx-io/xgx-snag"
	"github.com/xgx-io/xgx-snag/snagcolor"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestSprint_DisabledColorsMatchPrettyExactly(t *testing.T) {
	withColor(t, false)

	tests := []*snag.Snag{
		snag.New("X"),
		snag.New("Directory not writable").
			Layer("Could not open file").
			Layer("Save failed"),
	}
	for _, s := range tests {
		assert.Equal(t, s.Pretty(), snagcolor.Sprint(s))
	}
}

func TestSprint_EnabledColorsKeepContent(t *testing.T) {
	withColor(t, true)

	s := snag.New("root").Layer("top")
	out := snagcolor.Sprint(s)

	assert.Contains(t, out, "\x1b[", "expected ANSI escapes when colors are on")
	for _, frag := range []string{"error:", " top\n", "cause:", "0:", " root\n"} {
		assert.Contains(t, out, frag)
	}
	// Exactly one blank line between header and cause block, as in Pretty.
	assert.Equal(t, strings.Count(s.Pretty(), "\n"), strings.Count(stripANSI(out), "\n"))
}

func TestFprint_WritesSprintOutput(t *testing.T) {
	withColor(t, false)

	s := snag.New("root").Layer("top")
	var buf bytes.Buffer
	require.NoError(t, snagcolor.Fprint(&buf, s))
	assert.Equal(t, snagcolor.Sprint(s), buf.String())
}

// stripANSI removes CSI escape sequences so structural assertions can run on
// the colorized output.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < '@' || s[i] > '~') {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
