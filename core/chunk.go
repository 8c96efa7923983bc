package core

// MaxChunkRunes bounds the length of a single chunk sent for embedding.
const MaxChunkRunes = 1800

// SplitChunks splits text into contiguous chunks of at most max runes each.
// Chunks partition the text left to right with no gaps or overlaps, so
// concatenating them reconstructs the input exactly; only the last chunk may
// be shorter than max. Empty text yields no chunks. max must be positive;
// non-positive values also yield no chunks.
func SplitChunks(text string, max int) []string {
	if text == "" || max <= 0 {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+max-1)/max)
	for start := 0; start < len(runes); start += max {
		end := min(start+max, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
