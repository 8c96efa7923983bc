package core

import (
	"strings"
	"testing"
)

func TestBuildDocument_ID(t *testing.T) {
	tests := []struct {
		name string
		msg  SourceMessage
		want string
	}{
		{
			name: "plain message",
			msg:  SourceMessage{Text: "Hello world", ChannelID: "C1", TS: "100.001"},
			want: "slack:C1:100.001",
		},
		{
			name: "other fields do not affect the id",
			msg: SourceMessage{
				Text: "different text", UserID: "U9", UserName: "Nate",
				ChannelID: "C1", ChannelName: "general", TS: "100.001", TeamID: "T1",
			},
			want: "slack:C1:100.001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := BuildDocument(tt.msg)
			if doc == nil {
				t.Fatal("BuildDocument() returned nil for non-empty text")
			}
			if doc.ID != tt.want {
				t.Errorf("BuildDocument() id = %q, want %q", doc.ID, tt.want)
			}
			// Building twice from the same input must yield the same id.
			again := BuildDocument(tt.msg)
			if again.ID != doc.ID {
				t.Errorf("BuildDocument() id not deterministic: %q vs %q", doc.ID, again.ID)
			}
		})
	}
}

func TestBuildDocument_BlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		if doc := BuildDocument(SourceMessage{Text: text, ChannelID: "C1", TS: "1.0"}); doc != nil {
			t.Errorf("BuildDocument() = %+v for blank text %q, want nil", doc, text)
		}
	}
}

func TestBuildDocument_EmbeddingTextPrefix(t *testing.T) {
	tests := []struct {
		name string
		msg  SourceMessage
		want string
	}{
		{
			name: "author and channel",
			msg:  SourceMessage{Text: "deploy is done", UserName: "Nate", ChannelName: "ops", ChannelID: "C1", TS: "1.0"},
			want: "From Nate in #ops: deploy is done",
		},
		{
			name: "author only",
			msg:  SourceMessage{Text: "deploy is done", UserName: "Nate", ChannelID: "C1", TS: "1.0"},
			want: "From Nate: deploy is done",
		},
		{
			name: "channel only",
			msg:  SourceMessage{Text: "deploy is done", ChannelName: "ops", ChannelID: "C1", TS: "1.0"},
			want: "in #ops: deploy is done",
		},
		{
			name: "no metadata",
			msg:  SourceMessage{Text: "deploy is done", ChannelID: "C1", TS: "1.0"},
			want: "deploy is done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := BuildDocument(tt.msg)
			if doc.EmbeddingText != tt.want {
				t.Errorf("EmbeddingText = %q, want %q", doc.EmbeddingText, tt.want)
			}
		})
	}
}

func TestBuildDocument_ContentTruncation(t *testing.T) {
	long := strings.Repeat("a", MaxContentRunes+500)
	doc := BuildDocument(SourceMessage{Text: long, ChannelID: "C1", TS: "1.0"})

	want := strings.Repeat("a", MaxContentRunes) + TruncationMark
	if doc.Content != want {
		t.Errorf("Content length = %d, want truncated to %d runes plus marker", len([]rune(doc.Content)), MaxContentRunes)
	}
	// EmbeddingText keeps the full text; truncation only applies to stored content.
	if doc.EmbeddingText != long {
		t.Errorf("EmbeddingText was truncated; want full text")
	}
}

func TestBuildDocument_Permalink(t *testing.T) {
	doc := BuildDocument(SourceMessage{Text: "hi", ChannelID: "C042", TS: "1712345678.000200"})
	want := "https://slack.com/archives/C042/p1712345678000200"
	if doc.URL != want {
		t.Errorf("URL = %q, want %q", doc.URL, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{name: "short text unchanged", text: "hello", max: 10, want: "hello"},
		{name: "exact length unchanged", text: "hello", max: 5, want: "hello"},
		{name: "long text cut with marker", text: "hello world", max: 5, want: "hello" + TruncationMark},
		{name: "multibyte runes cut on rune boundary", text: "héllo wörld", max: 6, want: "héllo " + TruncationMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}
