package core

import "strings"

const (
	// MaxContentRunes bounds the content stored as a filterable attribute.
	// The vector store limits attribute values to 4096 bytes; messages can
	// be longer, so stored content keeps the leading text and is cut here.
	MaxContentRunes = 3800

	// TruncationMark is appended whenever content is cut.
	TruncationMark = "…"

	// SourceSlack identifies the originating platform in document ids and
	// row attributes.
	SourceSlack = "slack"
)

// Truncate cuts text to at most max runes, appending the truncation mark
// when anything was removed.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + TruncationMark
}

// MessagePermalink builds the archive URL for a message from its channel id
// and platform timestamp. The timestamp's decimal point is removed, per the
// platform's permalink format.
func MessagePermalink(channelID, ts string) string {
	return "https://slack.com/archives/" + channelID + "/p" + strings.ReplaceAll(ts, ".", "")
}

// BuildDocument derives an indexable Document from a source message.
// Returns nil when the trimmed message text is empty; callers treat nil as
// "nothing to index". The result is a pure function of its input: the same
// message always produces the same document, and the id depends only on
// (channel id, ts).
func BuildDocument(msg SourceMessage) *Document {
	raw := strings.TrimSpace(msg.Text)
	if raw == "" {
		return nil
	}

	var prefix string
	parts := make([]string, 0, 2)
	if msg.UserName != "" {
		parts = append(parts, "From "+msg.UserName)
	}
	if msg.ChannelName != "" {
		parts = append(parts, "in #"+msg.ChannelName)
	}
	if len(parts) > 0 {
		prefix = strings.Join(parts, " ") + ": "
	}

	return &Document{
		ID:            SourceSlack + ":" + msg.ChannelID + ":" + msg.TS,
		Content:       Truncate(raw, MaxContentRunes),
		EmbeddingText: prefix + raw,
		Attributes: Attributes{
			Source:      SourceSlack,
			ChannelID:   msg.ChannelID,
			ChannelName: msg.ChannelName,
			UserID:      msg.UserID,
			UserName:    msg.UserName,
			UserEmail:   msg.UserEmail,
			TeamID:      msg.TeamID,
			TS:          msg.TS,
			URL:         MessagePermalink(msg.ChannelID, msg.TS),
		},
	}
}
