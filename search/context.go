package search

import (
	"fmt"
	"strings"

	"github.com/projecthog/synergy/core"
)

// MaxDisplayRunes bounds how much of each retrieved row's content is
// quoted into the context block handed to the chat model.
const MaxDisplayRunes = 1000

// FormatContext renders retrieved rows into the plain-text context block
// for the chat model. Rows appear in retrieval order, each as a header
// line followed by its content, separated by blank lines. An empty result
// set formats to the empty string.
func FormatContext(rows []core.RetrievedRow) string {
	if len(rows) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(rows))
	for i, row := range rows {
		header := rowHeader(row, i)
		content := core.Truncate(row.Content, MaxDisplayRunes)
		blocks = append(blocks, header+"\n"+content)
	}
	return strings.Join(blocks, "\n\n")
}

// rowHeader builds the attribution line for one retrieved row: channel,
// author, and timestamp when known, falling back to a positional label so
// every block has a header the model can cite.
func rowHeader(row core.RetrievedRow, i int) string {
	parts := make([]string, 0, 3)
	if row.ChannelName != "" {
		parts = append(parts, "#"+row.ChannelName)
	}
	if row.UserName != "" {
		parts = append(parts, row.UserName)
	}
	if row.TS != "" {
		parts = append(parts, "ts="+row.TS)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("result %d", i+1)
	}
	return strings.Join(parts, " · ")
}
