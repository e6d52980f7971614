// Package chunker normalises raw extracted text and splits it into
// overlapping, sentence-boundary-aware segments sized for embedding.
package chunker

import "strings"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// sentenceSearchWindow is how far past the proposed end a sentence
// terminator may extend a chunk.
const sentenceSearchWindow = 100

// wordSearchWindow is how far past the proposed end a space may extend
// a chunk when no sentence terminator is found.
const wordSearchWindow = 50

// Chunker splits cleaned text into overlapping segments, preferring to
// break at sentence terminators, then at word boundaries.
type Chunker struct {
	size    int
	overlap int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		size:    DefaultChunkSize,
		overlap: DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Progress requires overlap strictly smaller than chunk size
	if c.overlap >= c.size {
		c.overlap = c.size / 4
	}

	return c
}

// Clean collapses runs of whitespace, newlines and tabs into single
// spaces and trims both ends. Idempotent.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Chunk splits text into overlapping segments of roughly the configured
// size. The window end is extended to the nearest sentence terminator
// within sentenceSearchWindow characters, or failing that to the
// nearest space within wordSearchWindow, to avoid cutting mid-sentence
// or mid-word. Every character of the input is covered by at least one
// chunk and consecutive chunks overlap by approximately the configured
// overlap.
func (c *Chunker) Chunk(text string) []string {
	if text == "" {
		return nil
	}
	if len(text) <= c.size {
		return []string{strings.TrimSpace(text)}
	}

	estimated := (len(text) / (c.size - c.overlap)) + 1
	chunks := make([]string, 0, estimated)

	start := 0
	for start < len(text) {
		end := start + c.size
		if end >= len(text) {
			chunks = append(chunks, strings.TrimSpace(text[start:]))
			break
		}

		if i := indexAfter(text, end, sentenceSearchWindow, isSentenceEnd); i >= 0 {
			// Include the terminator itself
			end = i + 1
		} else if i := indexAfter(text, end, wordSearchWindow, isSpace); i >= 0 {
			end = i
		}
		if end > len(text) {
			end = len(text)
		}

		chunks = append(chunks, strings.TrimSpace(text[start:end]))

		if end >= len(text) {
			break
		}
		start = end - c.overlap
	}

	return chunks
}

// indexAfter returns the absolute index of the first byte at or after
// pos (within window bytes) satisfying match, or -1.
func indexAfter(text string, pos, window int, match func(byte) bool) int {
	limit := pos + window
	if limit > len(text) {
		limit = len(text)
	}
	for i := pos; i < limit; i++ {
		if match(text[i]) {
			return i
		}
	}
	return -1
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '?' || b == '!'
}

func isSpace(b byte) bool {
	return b == ' '
}
