package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projecthog/synergy/core"
)

func TestFormatContext_Empty(t *testing.T) {
	assert.Equal(t, "", FormatContext(nil))
	assert.Equal(t, "", FormatContext([]core.RetrievedRow{}))
}

func TestFormatContext_Headers(t *testing.T) {
	rows := []core.RetrievedRow{
		{
			Content: "deploy went out at noon",
			Attributes: core.Attributes{
				ChannelName: "releases",
				UserName:    "alice",
				TS:          "1700000000.000100",
			},
		},
		{
			Content:    "ship it",
			Attributes: core.Attributes{UserName: "bob"},
		},
		{
			Content: "orphaned row",
		},
	}

	got := FormatContext(rows)
	want := "#releases · alice · ts=1700000000.000100\ndeploy went out at noon" +
		"\n\n" +
		"bob\nship it" +
		"\n\n" +
		"result 3\norphaned row"
	assert.Equal(t, want, got)
}

func TestFormatContext_TruncatesLongContent(t *testing.T) {
	rows := []core.RetrievedRow{{
		Content:    strings.Repeat("x", MaxDisplayRunes+50),
		Attributes: core.Attributes{ChannelName: "general"},
	}}

	got := FormatContext(rows)
	assert.True(t, strings.HasSuffix(got, core.TruncationMark))
	// header line + truncated content + mark
	lines := strings.SplitN(got, "\n", 2)
	assert.Len(t, []rune(lines[1]), MaxDisplayRunes+len([]rune(core.TruncationMark)))
}
